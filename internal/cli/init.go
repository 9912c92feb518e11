package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapgen/internal/config"
	"github.com/vvka-141/sitemapgen/internal/tui"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a sitemapgen.yaml",
	Long: `Init writes a sitemapgen.yaml into <dir> (default: current directory) with the
router flavour and output file, and prints the go:generate line to add.

In an interactive terminal the router is chosen from a list unless --router
is given.

Examples:
  sitemapgen init
  sitemapgen init ./web --router gin --base-url https://example.com`,
	Args:              OptionalSourceDir,
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

var initFlags struct {
	router  string
	output  string
	baseURL string
	force   bool
}

func init() {
	rootCmd.AddCommand(initCmd)
	registerInitFlags(initCmd)
}

func registerInitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&initFlags.router, "router", "r", string(sitemapgen.RouterHTTP),
		"Router the generated MapSitemap targets: http|gin")
	cmd.Flags().StringVarP(&initFlags.output, "output", "o", sitemapgen.DefaultOutputFile,
		"Generated file, relative to <dir>")
	cmd.Flags().StringVar(&initFlags.baseURL, "base-url", "",
		"Base URL used by render and serve previews")
	cmd.Flags().BoolVar(&initFlags.force, "force", false,
		"Replace an existing sitemapgen.yaml without asking")

	_ = cmd.RegisterFlagCompletionFunc("router", completeRouters)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := sourceDir(args)
	interactive := tui.IsInteractive()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	_, err := config.Load(dir)
	switch {
	case err == nil && !initFlags.force:
		if !interactive {
			return fmt.Errorf("%s already exists in %s (use --force to replace it): %w",
				config.ConfigFileName, dir, sitemapgen.ErrOverwriteDenied)
		}
		if !tui.Confirm(os.Stdin, cmd.ErrOrStderr(), fmt.Sprintf("Replace existing %s?", config.ConfigFileName)) {
			return fmt.Errorf("%s left unchanged: %w", config.ConfigFileName, sitemapgen.ErrOverwriteDenied)
		}
	case err != nil && !errors.Is(err, config.ErrConfigNotFound) && !initFlags.force:
		return fmt.Errorf("existing %s is unreadable (use --force to replace it): %w", config.ConfigFileName, err)
	}

	router, err := sitemapgen.ParseRouter(initFlags.router)
	if err != nil {
		return err
	}
	if interactive && !cmd.Flags().Changed("router") {
		if router, err = tui.SelectRouter(router); err != nil {
			return err
		}
	}

	cfg := newInitConfig(router, initFlags.output, initFlags.baseURL)
	if err := config.Save(dir, cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.ConfigFileName, err)
	}

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "\n%s Created %s (router: %s)\n", tui.SymbolCheck, filepath.Join(dir, config.ConfigFileName), router)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  Add to a Go file in this directory:")
	fmt.Fprintln(out, "    //go:generate sitemapgen generate .")
	fmt.Fprintln(out, "  Annotate page types:")
	fmt.Fprintln(out, `    // @router.Route("/about")`)
	fmt.Fprintln(out, "    // @SitemapUrl(sitemap.Monthly, 0.5)")
	fmt.Fprintln(out, "  Then run: go generate ./...")
	return nil
}

// newInitConfig builds the config init writes. Defaults are left out so the
// file only records choices.
func newInitConfig(router sitemapgen.Router, output, baseURL string) *config.ProjectConfig {
	cfg := &config.ProjectConfig{
		Router:  string(router),
		BaseURL: baseURL,
	}
	if output != "" && output != sitemapgen.DefaultOutputFile {
		cfg.Output = output
	}
	return cfg
}
