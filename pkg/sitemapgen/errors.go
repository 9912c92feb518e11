package sitemapgen

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := generator.Generate(ctx, cfg)
//	if errors.Is(err, sitemapgen.ErrOutputStale) {
//	    // run go generate again
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSourceFiles indicates the source root contains no Go files to scan.
	ErrNoSourceFiles = errors.New("no Go source files found")

	// ErrUnsupportedRouter indicates an unknown router flavour was requested.
	ErrUnsupportedRouter = errors.New("unsupported router")

	// ErrOutputStale indicates the generated file differs from what would be
	// generated now. Only returned in check mode.
	ErrOutputStale = errors.New("generated output is stale")

	// ErrOverwriteDenied indicates the user refused to replace a file that was
	// not produced by sitemapgen.
	ErrOverwriteDenied = errors.New("overwrite denied")
)

// usageErrorPatterns are fragments of the errors cobra and pflag return for
// command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnsupportedRouter):
		return ExitConfigError
	case errors.Is(err, ErrOverwriteDenied):
		return ExitOverwriteDenied
	case errors.Is(err, ErrOutputStale):
		return ExitOutputStale
	}

	errStr := err.Error()
	for _, p := range usageErrorPatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
