package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [dir]",
	Short: "Print the sitemap.xml the generated handler would serve",
	Long: `Render scans <dir> and writes the sitemap document to stdout, byte for byte
what MapSitemap serves for the given base URL.

Examples:
  sitemapgen render ./web --base-url https://example.com
  SITEMAPGEN_BASE_URL=https://staging.example.com sitemapgen render > sitemap.xml`,
	Args:              OptionalSourceDir,
	ValidArgsFunction: completeDirectories,
	RunE:              runRender,
}

var renderFlags sourceFlags

func init() {
	rootCmd.AddCommand(renderCmd)
	registerRenderFlags(renderCmd)
}

func registerRenderFlags(cmd *cobra.Command) {
	addScanFlags(cmd, &renderFlags)
	addBaseURLFlag(cmd, &renderFlags)
}

func runRender(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, projectCfg, err := buildGenerateConfig(cmd, sourceDir(args), &renderFlags, verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := scanSource(ctx, cfg)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(previewDocument(result, resolveBaseURL(renderFlags.baseURL, projectCfg), cfg.EscapeXML))
	return err
}
