package sitemapgen

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Generation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration
	ExitOverwriteDenied = 12 // User denied overwriting a hand-written file
	ExitOutputStale     = 15 // --check found the generated file out of date
)

const (
	// DefaultOutputFile is the generated file name, relative to the source root.
	DefaultOutputFile = "sitemap_gen.go"

	// GeneratedHeader marks files owned by sitemapgen. Files without it are never
	// overwritten silently.
	GeneratedHeader = "// Code generated by sitemapgen. DO NOT EDIT."

	// DefaultRouteAnnotation is the qualified name of the route annotation.
	DefaultRouteAnnotation = "router.Route"

	// DefaultSitemapAnnotation is the qualified name of the sitemap annotation.
	DefaultSitemapAnnotation = "sitemap.SitemapUrl"

	// ShortSitemapAnnotation is the unqualified spelling accepted for the
	// sitemap annotation.
	ShortSitemapAnnotation = "SitemapUrl"

	// DefaultForceCountdown is how long the forced approver waits before
	// overwriting a hand-written file.
	DefaultForceCountdown = 3 * time.Second

	// RuntimeImportPath is imported by generated code for the net/http router.
	RuntimeImportPath = "github.com/vvka-141/sitemapgen/pkg/sitemap"

	// GinRuntimeImportPath is imported by generated code for the gin router.
	GinRuntimeImportPath = "github.com/vvka-141/sitemapgen/pkg/sitemap/ginsitemap"

	// EnvBaseURL supplies the base URL for render and serve previews.
	EnvBaseURL = "SITEMAPGEN_BASE_URL"
)
