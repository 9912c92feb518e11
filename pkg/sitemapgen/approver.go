package sitemapgen

import "context"

// Approver confirms destructive file operations, specifically replacing an
// output file that does not carry the generated-code header.
//
// Implementations:
//   - ForcedApprover: Shows a countdown and approves (--force)
//   - InteractiveApprover: Asks the user to type the file name
type Approver interface {
	// RequestApproval asks whether path may be overwritten.
	// Returns false without error when the user declines.
	RequestApproval(ctx context.Context, path string) (bool, error)
}
