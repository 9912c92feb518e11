package sitemapgen

import "context"

// SourceScanner discovers sitemap entries in a Go source tree.
// Implementations must be safe for concurrent use by multiple goroutines.
type SourceScanner interface {
	// Scan walks root and returns the entries of every qualifying type
	// declaration, in deterministic discovery order.
	Scan(ctx context.Context, root string) (ScanResult, error)
}
