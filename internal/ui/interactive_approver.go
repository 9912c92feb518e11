package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. The user confirms by typing the file name.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover on stdin/stderr.
func NewInteractiveApprover(verbose bool) sitemapgen.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts the user to type the base name of path to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	name := filepath.Base(path)

	fmt.Fprintf(a.output, "\n⚠️  WARNING: %s exists and was not generated by sitemapgen.\n", path)
	fmt.Fprintln(a.output, "Generating will permanently replace its content.")
	fmt.Fprintf(a.output, "\nTo confirm, type the file name '%s' and press Enter: ", name)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == name {
			fmt.Fprintln(a.output, "✓ Confirmed. Overwriting...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match '%s'. Operation cancelled.\n", input, name)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ sitemapgen.Approver = (*InteractiveApprover)(nil)
