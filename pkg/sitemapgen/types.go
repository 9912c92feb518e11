package sitemapgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

// Router selects the HTTP router the generated MapSitemap targets.
type Router string

const (
	RouterHTTP Router = "http"
	RouterGin  Router = "gin"
)

// Routers lists the supported router flavours.
func Routers() []Router {
	return []Router{RouterHTTP, RouterGin}
}

// ParseRouter validates a router name. The empty string selects RouterHTTP.
func ParseRouter(name string) (Router, error) {
	switch Router(strings.ToLower(strings.TrimSpace(name))) {
	case "", RouterHTTP:
		return RouterHTTP, nil
	case RouterGin:
		return RouterGin, nil
	}
	return "", fmt.Errorf("%w %q (supported: %s, %s)", ErrUnsupportedRouter, name, RouterHTTP, RouterGin)
}

// AnnotationNames configures how annotations are recognised in doc comments.
type AnnotationNames struct {
	// Route is the qualified route annotation name. It is matched exactly;
	// the bare type name is not accepted.
	Route string

	// Sitemap is the qualified sitemap annotation name.
	Sitemap string

	// SitemapAliases are additional exact spellings of the sitemap annotation,
	// by default the unqualified "SitemapUrl".
	SitemapAliases []string
}

// DefaultAnnotationNames returns the stock annotation names.
func DefaultAnnotationNames() AnnotationNames {
	return AnnotationNames{
		Route:          DefaultRouteAnnotation,
		Sitemap:        DefaultSitemapAnnotation,
		SitemapAliases: []string{ShortSitemapAnnotation},
	}
}

// GenerateConfig contains all parameters needed for one generate run.
type GenerateConfig struct {
	// SourcePath is the root of the tree to scan.
	SourcePath string

	// OutputPath is the generated file. Relative paths resolve against SourcePath.
	OutputPath string

	// PackageName overrides the package clause of the generated file.
	// Empty means: detect from the output directory.
	PackageName string

	Router    Router
	EscapeXML bool

	// Exclude holds glob patterns (slash-separated, relative to SourcePath)
	// of files to skip.
	Exclude []string

	Annotations AnnotationNames

	// Check compares instead of writing and fails with ErrOutputStale on drift.
	Check bool

	// Force approves overwriting a file without the generated header.
	Force bool

	// ReportOmitted logs every declaration that was dropped and why.
	ReportOmitted bool

	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.SourcePath == "" {
		errs = append(errs, fmt.Errorf("SourcePath is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	} else if !strings.HasSuffix(c.OutputPath, ".go") {
		errs = append(errs, fmt.Errorf("OutputPath %q must be a .go file: %w", c.OutputPath, ErrInvalidConfig))
	}

	if _, err := ParseRouter(string(c.Router)); err != nil {
		errs = append(errs, err)
	}

	if c.Annotations.Route == "" || c.Annotations.Sitemap == "" {
		errs = append(errs, fmt.Errorf("route and sitemap annotation names are required: %w", ErrInvalidConfig))
	}

	if c.Check && c.Force {
		errs = append(errs, fmt.Errorf("check mode never writes, force has no effect: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Declaration identifies a scanned type declaration.
type Declaration struct {
	// Dir is the slash-separated package directory relative to the scan root
	// ("." for the root itself).
	Dir string

	// TypeName is the declared type's identifier.
	TypeName string

	// File is the slash-separated source file path relative to the scan root.
	File string

	Line int
}

// QualifiedName returns Dir.TypeName, or TypeName for the root package.
func (d Declaration) QualifiedName() string {
	if d.Dir == "" || d.Dir == "." {
		return d.TypeName
	}
	return d.Dir + "." + d.TypeName
}

// Position formats the declaration's source location as file:line.
func (d Declaration) Position() string {
	return fmt.Sprintf("%s:%d", d.File, d.Line)
}

// OmissionReason classifies why an annotated declaration produced no entry.
type OmissionReason string

const (
	// OmissionPartial: only one of the two required annotations is present.
	OmissionPartial OmissionReason = "partial"

	// OmissionMalformed: an annotation has the wrong arity or argument kind.
	OmissionMalformed OmissionReason = "malformed"

	// OmissionDuplicate: an annotation kind appears more than once.
	OmissionDuplicate OmissionReason = "duplicate"
)

// Omission records a declaration that carried annotations but was dropped.
// Omissions are diagnostics only; they never fail a run.
type Omission struct {
	Declaration
	Reason OmissionReason
	Detail string
}

// ScannedEntry is a sitemap entry together with the declaration it came from.
type ScannedEntry struct {
	Declaration
	Entry sitemap.Entry
}

// ScanResult contains the results of scanning a source tree.
type ScanResult struct {
	// Entries are in discovery order: file path order, then source order.
	Entries   []ScannedEntry
	Omissions []Omission

	FilesScanned int
}

// SitemapEntries returns the bare entries in discovery order.
func (r ScanResult) SitemapEntries() []sitemap.Entry {
	entries := make([]sitemap.Entry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = e.Entry
	}
	return entries
}
