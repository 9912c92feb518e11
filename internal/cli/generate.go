package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapgen/internal/files/filesystem"
	"github.com/vvka-141/sitemapgen/internal/logging"
	"github.com/vvka-141/sitemapgen/internal/services"
	"github.com/vvka-141/sitemapgen/internal/tui"
	"github.com/vvka-141/sitemapgen/internal/ui"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Generate the sitemap source file",
	Long: `Generate scans <dir> (default: current directory) for annotated page types and
writes a Go file defining MapSitemap, which serves /sitemap.xml.

Only types carrying both annotations produce an entry:
  // @router.Route("/about")
  // @SitemapUrl(sitemap.Monthly, 0.3)

Unchanged output is not rewritten, so go generate stays quiet. A file without
the generated-code header is never replaced without confirmation.

Settings are read from <dir>/sitemapgen.yaml; flags override them.

Examples:
  # From a go:generate directive
  //go:generate sitemapgen generate .

  # Gin router, custom output file
  sitemapgen generate ./web --router gin -o sitemap.go

  # CI: fail when the committed file is out of date
  sitemapgen generate --check`,
	Args:              OptionalSourceDir,
	ValidArgsFunction: completeDirectories,
	RunE:              runGenerate,
}

var generateFlags sourceFlags

func init() {
	rootCmd.AddCommand(generateCmd)
	registerGenerateFlags(generateCmd)
}

func registerGenerateFlags(cmd *cobra.Command) {
	addScanFlags(cmd, &generateFlags)
	cmd.Flags().StringVarP(&generateFlags.pkg, "package", "p", "",
		"Package clause of the generated file (default: detected from the output directory)")
	cmd.Flags().StringVarP(&generateFlags.router, "router", "r", string(sitemapgen.RouterHTTP),
		"Router the generated MapSitemap targets: http|gin")
	cmd.Flags().BoolVar(&generateFlags.escapeXML, "escape-xml", false,
		"XML-escape locations in the served document")
	cmd.Flags().BoolVar(&generateFlags.check, "check", false,
		"Do not write; exit with code 15 if the output file is stale")
	cmd.Flags().BoolVar(&generateFlags.force, "force", false,
		"Overwrite an output file that was not generated by sitemapgen\n"+
			"Shows a countdown instead of asking for confirmation")

	_ = cmd.RegisterFlagCompletionFunc("router", completeRouters)
}

// approverFor picks the approver for overwriting hand-written files.
// Non-interactive runs without --force get none, which denies.
func approverFor(force, verbose bool) sitemapgen.Approver {
	if force {
		return ui.NewForcedApprover(verbose)
	}
	if tui.IsInteractive() {
		return ui.NewInteractiveApprover(verbose)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, _, err := buildGenerateConfig(cmd, sourceDir(args), &generateFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	generator := services.NewGenerationService(
		filesystem.NewOSFileSystem(),
		approverFor(cfg.Force, verbose),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := generator.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	logger.Info("%s %s: %s (%d entries, package %s)",
		tui.SymbolCheck, result.OutputPath, result.Outcome, len(result.Scan.Entries), result.Package)
	if n := len(result.Scan.Omissions); n > 0 && !cfg.ReportOmitted {
		logger.Verbose("%d annotated declarations omitted; rerun with --report-omitted for details", n)
	}
	return nil
}
