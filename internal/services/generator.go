package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/sitemapgen/internal/emit"
	"github.com/vvka-141/sitemapgen/internal/files/filesystem"
	"github.com/vvka-141/sitemapgen/internal/scan"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// GenerationService implements the Generator interface.
// Safe for concurrent use when its collaborators are.
type GenerationService struct {
	fsProvider filesystem.FileSystemProvider
	approver   sitemapgen.Approver
	logger     sitemapgen.Logger
}

// NewGenerationService creates a GenerationService.
//
// Panics on a nil filesystem or logger: these are wiring mistakes that should
// fail at startup. A nil approver is allowed and denies every overwrite of a
// hand-written file, which is the right default for non-interactive runs.
func NewGenerationService(fsProvider filesystem.FileSystemProvider, approver sitemapgen.Approver, logger sitemapgen.Logger) *GenerationService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &GenerationService{
		fsProvider: fsProvider,
		approver:   approver,
		logger:     logger,
	}
}

// Scan validates config and scans its source tree. Omissions are logged as
// warnings when config.ReportOmitted is set.
func (s *GenerationService) Scan(ctx context.Context, config sitemapgen.GenerateConfig) (sitemapgen.ScanResult, error) {
	if err := config.Validate(); err != nil {
		return sitemapgen.ScanResult{}, err
	}

	relOut, err := outputRelativeToSource(config)
	if err != nil {
		return sitemapgen.ScanResult{}, err
	}

	scanner, err := scan.NewScannerWithFS(s.fsProvider, scan.Options{
		Annotations: config.Annotations,
		Exclude:     config.Exclude,
		OutputFile:  relOut,
		Logger:      s.logger,
	})
	if err != nil {
		return sitemapgen.ScanResult{}, err
	}

	result, err := scanner.Scan(ctx, config.SourcePath)
	if err != nil {
		return sitemapgen.ScanResult{}, fmt.Errorf("scan failed: %w", err)
	}

	if config.ReportOmitted {
		for _, o := range result.Omissions {
			s.logger.Warn("%s: %s omitted (%s): %s", o.Position(), o.QualifiedName(), o.Reason, o.Detail)
		}
	}
	return result, nil
}

// Generate scans, renders and writes the sitemap file.
func (s *GenerationService) Generate(ctx context.Context, config sitemapgen.GenerateConfig) (sitemapgen.GenerateResult, error) {
	result, err := s.Scan(ctx, config)
	if err != nil {
		return sitemapgen.GenerateResult{}, err
	}

	outPath := OutputPath(config)

	pkg := config.PackageName
	if pkg == "" {
		pkg, err = emit.DetectPackage(s.fsProvider, filepath.Dir(outPath), filepath.Base(outPath))
		if err != nil {
			return sitemapgen.GenerateResult{}, fmt.Errorf("failed to detect package name: %w", err)
		}
		s.logger.Verbose("Using package %s for %s", pkg, outPath)
	}

	src, err := emit.Source(emit.Params{
		Package:   pkg,
		Router:    config.Router,
		EscapeXML: config.EscapeXML,
		Entries:   result.Entries,
	})
	if err != nil {
		return sitemapgen.GenerateResult{}, err
	}

	outcome, err := emit.NewWriter(s.fsProvider, s.approver, s.logger).Write(ctx, outPath, src, config.Check)
	if err != nil {
		return sitemapgen.GenerateResult{}, err
	}

	return sitemapgen.GenerateResult{
		OutputPath: outPath,
		Package:    pkg,
		Outcome:    outcome.String(),
		Scan:       result,
	}, nil
}

// OutputPath resolves config.OutputPath against config.SourcePath.
func OutputPath(config sitemapgen.GenerateConfig) string {
	if filepath.IsAbs(config.OutputPath) {
		return filepath.Clean(config.OutputPath)
	}
	return filepath.Join(config.SourcePath, config.OutputPath)
}

// outputRelativeToSource returns the output file as a slash-separated path
// relative to the source root, as the scanner's skip rule expects.
func outputRelativeToSource(config sitemapgen.GenerateConfig) (string, error) {
	src, err := filepath.Abs(config.SourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve source path: %w", err)
	}
	out, err := filepath.Abs(OutputPath(config))
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	rel, err := filepath.Rel(src, out)
	if err != nil {
		return "", fmt.Errorf("failed to relate output to source: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

var _ sitemapgen.Generator = (*GenerationService)(nil)
