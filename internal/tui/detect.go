package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for sitemapgen.
type Mode int

const (
	// ModeNonInteractive is used for go generate, CI pipelines and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// nonInteractiveEnv lists variables whose presence disables prompts, the
// table styling and the router selector.
var nonInteractiveEnv = []string{"CI", "NO_COLOR"}

// DetectMode reports ModeInteractive only when both stdin and stdout are
// terminals and nothing in the environment opts out:
// SITEMAPGEN_NON_INTERACTIVE=1, CI or NO_COLOR.
//
// go generate runs the tool with the terminal of the caller, so a developer
// running it by hand can still be asked before a hand-written file is replaced.
func DetectMode() Mode {
	return detectMode(os.Getenv, term.IsTerminal(int(os.Stdin.Fd())), term.IsTerminal(int(os.Stdout.Fd())))
}

func detectMode(getenv func(string) string, stdinTTY, stdoutTTY bool) Mode {
	if getenv("SITEMAPGEN_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	for _, name := range nonInteractiveEnv {
		if getenv(name) != "" {
			return ModeNonInteractive
		}
	}
	if !stdinTTY || !stdoutTTY {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
