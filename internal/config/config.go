package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type AnnotationsConfig struct {
	Route          string   `yaml:"route,omitempty"`
	Sitemap        string   `yaml:"sitemap,omitempty"`
	SitemapAliases []string `yaml:"sitemap_aliases,omitempty"`
}

type ProjectConfig struct {
	Output      string            `yaml:"output,omitempty"`
	Package     string            `yaml:"package,omitempty"`
	Router      string            `yaml:"router,omitempty"`
	EscapeXML   bool              `yaml:"escape_xml,omitempty"`
	BaseURL     string            `yaml:"base_url,omitempty"`
	Exclude     []string          `yaml:"exclude,omitempty"`
	Annotations AnnotationsConfig `yaml:"annotations,omitempty"`
}

const ConfigFileName = "sitemapgen.yaml"

// Load reads sitemapgen.yaml from sourcePath. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, sitemapgen.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Save writes cfg to sourcePath/sitemapgen.yaml, replacing any existing file.
func Save(sourcePath string, cfg *ProjectConfig) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(filepath.Join(sourcePath, ConfigFileName), buf.Bytes(), 0o644)
}

// Apply copies the values set in cfg onto gen. Empty fields leave gen as is,
// so flag defaults survive and flags applied afterwards win.
func (cfg *ProjectConfig) Apply(gen *sitemapgen.GenerateConfig) error {
	if cfg.Output != "" {
		gen.OutputPath = cfg.Output
	}
	if cfg.Package != "" {
		gen.PackageName = cfg.Package
	}
	if cfg.Router != "" {
		r, err := sitemapgen.ParseRouter(cfg.Router)
		if err != nil {
			return fmt.Errorf("%s: %w", ConfigFileName, err)
		}
		gen.Router = r
	}
	if cfg.EscapeXML {
		gen.EscapeXML = true
	}
	if len(cfg.Exclude) > 0 {
		gen.Exclude = append([]string(nil), cfg.Exclude...)
	}

	a := cfg.Annotations
	if a.Route != "" {
		gen.Annotations.Route = a.Route
	}
	if a.Sitemap != "" {
		gen.Annotations.Sitemap = a.Sitemap
	}
	if a.SitemapAliases != nil {
		gen.Annotations.SitemapAliases = append([]string(nil), a.SitemapAliases...)
	}
	return nil
}
