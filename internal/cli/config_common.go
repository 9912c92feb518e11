package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapgen/internal/config"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// defaultPreviewBaseURL is used by render and serve when no base URL is
// configured anywhere.
const defaultPreviewBaseURL = "http://localhost:8080"

// sourceFlags holds the flags shared by every command that scans a tree.
// Each command registers the subset it supports; a flag the command does not
// have is never "changed" and so never overrides sitemapgen.yaml.
type sourceFlags struct {
	output        string
	pkg           string
	router        string
	exclude       []string
	escapeXML     bool
	reportOmitted bool
	check         bool
	force         bool
	baseURL       string
}

func addScanFlags(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", sitemapgen.DefaultOutputFile,
		"Generated file, relative to <dir> (skipped while scanning)")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil,
		"Glob of files to skip, relative to <dir> (can be specified multiple times)\n"+
			"Example: --exclude 'legacy/**'")
	cmd.Flags().BoolVar(&f.reportOmitted, "report-omitted", false,
		"Log every annotated declaration that produced no entry, with the reason")
}

func addBaseURLFlag(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVar(&f.baseURL, "base-url", "",
		"Base URL prefixed to every route\n"+
			"Precedence: --base-url > $"+sitemapgen.EnvBaseURL+" > base_url in sitemapgen.yaml > "+defaultPreviewBaseURL)
	cmd.Flags().BoolVar(&f.escapeXML, "escape-xml", false,
		"XML-escape locations (overrides escape_xml in sitemapgen.yaml)")
}

// loadProjectConfig loads .env files and sitemapgen.yaml.
// Returns nil config if sitemapgen.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()
	if sourcePath != "." {
		_ = godotenv.Load(filepath.Join(sourcePath, ".env"))
	}

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// buildGenerateConfig layers defaults, sitemapgen.yaml and explicitly set flags.
// It also returns the project config (nil when absent) for base URL lookup.
func buildGenerateConfig(cmd *cobra.Command, sourcePath string, f *sourceFlags, verbose bool) (sitemapgen.GenerateConfig, *config.ProjectConfig, error) {
	cfg := sitemapgen.GenerateConfig{
		SourcePath:  sourcePath,
		OutputPath:  sitemapgen.DefaultOutputFile,
		Router:      sitemapgen.RouterHTTP,
		Annotations: sitemapgen.DefaultAnnotationNames(),
		Verbose:     verbose,
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		return cfg, nil, fmt.Errorf("cannot access source directory: %w", err)
	}
	if !info.IsDir() {
		return cfg, nil, fmt.Errorf("%s is not a directory: %w", sourcePath, sitemapgen.ErrInvalidConfig)
	}

	projectCfg, err := loadProjectConfig(sourcePath)
	if err != nil {
		return cfg, nil, err
	}
	if projectCfg != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %s\n", filepath.Join(sourcePath, config.ConfigFileName))
		}
		if err := projectCfg.Apply(&cfg); err != nil {
			return cfg, nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		cfg.OutputPath = f.output
	}
	if changed("package") {
		cfg.PackageName = f.pkg
	}
	if changed("router") {
		r, err := sitemapgen.ParseRouter(f.router)
		if err != nil {
			return cfg, nil, err
		}
		cfg.Router = r
	}
	if changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, f.exclude...)
	}
	if changed("escape-xml") {
		cfg.EscapeXML = f.escapeXML
	}
	cfg.ReportOmitted = f.reportOmitted
	cfg.Check = f.check
	cfg.Force = f.force

	return cfg, projectCfg, cfg.Validate()
}

// resolveBaseURL applies flag > environment > sitemapgen.yaml > default.
func resolveBaseURL(flagValue string, projectCfg *config.ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(sitemapgen.EnvBaseURL); env != "" {
		return env
	}
	if projectCfg != nil && projectCfg.BaseURL != "" {
		return projectCfg.BaseURL
	}
	return defaultPreviewBaseURL
}
