package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapgen/internal/files/filesystem"
	"github.com/vvka-141/sitemapgen/internal/logging"
	"github.com/vvka-141/sitemapgen/internal/scan"
	"github.com/vvka-141/sitemapgen/internal/services"
	"github.com/vvka-141/sitemapgen/internal/tui"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List the sitemap entries found in a source tree",
	Long: `Scan runs discovery only and prints every entry that generate would emit,
plus the annotated declarations that were dropped and why.

Output formats:
  (default)  Table for humans
  --json     One JSON document with stable declaration IDs, for tooling

Examples:
  sitemapgen scan ./web
  sitemapgen scan --json | jq '.entries[].route'`,
	Args:              OptionalSourceDir,
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

var (
	scanFlags sourceFlags
	scanJSON  bool
)

func init() {
	rootCmd.AddCommand(scanCmd)
	registerScanFlags(scanCmd)
}

func registerScanFlags(cmd *cobra.Command) {
	addScanFlags(cmd, &scanFlags)
	cmd.Flags().BoolVar(&scanJSON, "json", false, "Output results as JSON")
}

// scanReport is the --json document.
type scanReport struct {
	FilesScanned int               `json:"files_scanned"`
	Entries      []scanReportEntry `json:"entries"`
	Omissions    []scanReportOmit  `json:"omissions"`
}

type scanReportEntry struct {
	ID          string  `json:"id"`
	Declaration string  `json:"declaration"`
	File        string  `json:"file"`
	Line        int     `json:"line"`
	Route       string  `json:"route"`
	ChangeFreq  string  `json:"changefreq"`
	Priority    float64 `json:"priority"`
}

type scanReportOmit struct {
	ID          string `json:"id"`
	Declaration string `json:"declaration"`
	File        string `json:"file"`
	Line        int    `json:"line"`
	Reason      string `json:"reason"`
	Detail      string `json:"detail"`
}

func newScanReport(result sitemapgen.ScanResult) scanReport {
	report := scanReport{
		FilesScanned: result.FilesScanned,
		Entries:      make([]scanReportEntry, 0, len(result.Entries)),
		Omissions:    make([]scanReportOmit, 0, len(result.Omissions)),
	}
	for _, e := range result.Entries {
		report.Entries = append(report.Entries, scanReportEntry{
			ID:          scan.DeclarationID(e.Declaration).String(),
			Declaration: e.QualifiedName(),
			File:        e.File,
			Line:        e.Line,
			Route:       e.Entry.Template,
			ChangeFreq:  e.Entry.ChangeFreq.String(),
			Priority:    e.Entry.Priority,
		})
	}
	for _, o := range result.Omissions {
		report.Omissions = append(report.Omissions, scanReportOmit{
			ID:          scan.DeclarationID(o.Declaration).String(),
			Declaration: o.QualifiedName(),
			File:        o.File,
			Line:        o.Line,
			Reason:      string(o.Reason),
			Detail:      o.Detail,
		})
	}
	return report
}

func writeScanJSON(w io.Writer, result sitemapgen.ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newScanReport(result))
}

// scanSource runs the scan phase for a command's resolved config.
func scanSource(ctx context.Context, cfg sitemapgen.GenerateConfig) (sitemapgen.ScanResult, error) {
	generator := services.NewGenerationService(
		filesystem.NewOSFileSystem(),
		nil,
		logging.NewConsoleLogger(cfg.Verbose),
	)
	return generator.Scan(ctx, cfg)
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, _, err := buildGenerateConfig(cmd, sourceDir(args), &scanFlags, verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := scanSource(ctx, cfg)
	if err != nil {
		return err
	}

	if scanJSON {
		return writeScanJSON(cmd.OutOrStdout(), result)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), tui.ScanTable(result))
	return err
}

// previewDocument renders the XML the generated handler would serve.
func previewDocument(result sitemapgen.ScanResult, baseURL string, escapeXML bool) []byte {
	return sitemap.Document(baseURL, result.SitemapEntries(), sitemap.Options{EscapeXML: escapeXML})
}
