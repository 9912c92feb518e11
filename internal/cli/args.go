package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OptionalSourceDir accepts at most one <dir> argument. Without one the
// current directory is scanned, which is what go generate expects.
func OptionalSourceDir(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./web`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// sourceDir returns the directory argument, or "." when none was given.
func sourceDir(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "."
	}
	return args[0]
}
