package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// ForcedApprover implements the Approver interface for --force runs. It warns
// that a hand-written file is about to be replaced, counts down, and approves.
type ForcedApprover struct {
	verbose   bool
	countdown time.Duration
	output    io.Writer
	sleepFn   func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) sitemapgen.Approver {
	return &ForcedApprover{
		verbose:   verbose,
		countdown: sitemapgen.DefaultForceCountdown,
		output:    os.Stderr,
		sleepFn:   time.Sleep,
	}
}

// RequestApproval displays a countdown and automatically approves after it.
func (a *ForcedApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	fmt.Fprintln(a.output)
	fmt.Fprintf(a.output, "DANGER: %s was not generated by sitemapgen.\n", path)
	fmt.Fprintln(a.output, "Its current content will be replaced by generated code (--force).")
	fmt.Fprintln(a.output)

	seconds := int(a.countdown.Seconds())
	if a.countdown == 0 {
		seconds = int(sitemapgen.DefaultForceCountdown.Seconds())
	}
	for i := seconds; i > 0; i-- {
		if err := ctx.Err(); err != nil {
			fmt.Fprintln(a.output)
			return false, err
		}
		fmt.Fprintf(a.output, "\rOverwriting in: %d seconds... (Press Ctrl+C to cancel)", i)
		a.sleepFn(time.Second)
	}
	if err := ctx.Err(); err != nil {
		fmt.Fprintln(a.output)
		return false, err
	}

	fmt.Fprintf(a.output, "\r✓ Proceeding with overwrite of %s                         \n", path)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ sitemapgen.Approver = (*ForcedApprover)(nil)
