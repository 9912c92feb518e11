package sitemapgen

import "context"

// Generator is the main interface for producing the sitemap source file.
// Implementations scan the source tree, render the Go file and write it.
type Generator interface {
	// Generate runs one scan-render-write cycle for config.
	// In check mode it returns ErrOutputStale instead of writing.
	Generate(ctx context.Context, config GenerateConfig) (GenerateResult, error)

	// Scan runs only the scan phase for config.
	Scan(ctx context.Context, config GenerateConfig) (ScanResult, error)
}

// GenerateResult summarises a Generate call.
type GenerateResult struct {
	// OutputPath is the resolved path of the generated file.
	OutputPath string

	// Package is the package clause written to the file.
	Package string

	// Outcome is "created", "updated" or "unchanged".
	Outcome string

	Scan ScanResult
}
