package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapgen/internal/logging"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemap/ginsitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve /sitemap.xml from a scan, for local preview",
	Long: `Serve scans <dir> once and serves the resulting sitemap at /sitemap.xml
through the same runtime handler the generated code uses. Restart it to pick
up source changes.

Examples:
  sitemapgen serve ./web
  sitemapgen serve --addr :9090 --router gin --base-url https://example.com`,
	Args:              OptionalSourceDir,
	ValidArgsFunction: completeDirectories,
	RunE:              runServe,
}

var (
	serveFlags sourceFlags
	serveAddr  string
)

const serveShutdownTimeout = 5 * time.Second

func init() {
	rootCmd.AddCommand(serveCmd)
	registerServeFlags(serveCmd)
}

func registerServeFlags(cmd *cobra.Command) {
	addScanFlags(cmd, &serveFlags)
	addBaseURLFlag(cmd, &serveFlags)
	cmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVarP(&serveFlags.router, "router", "r", string(sitemapgen.RouterHTTP),
		"Router to serve through: http|gin")

	_ = cmd.RegisterFlagCompletionFunc("router", completeRouters)
}

// newPreviewHandler mounts the sitemap on the router flavour the generated
// code would use.
func newPreviewHandler(router sitemapgen.Router, baseURL string, entries []sitemap.Entry, opts sitemap.Options) http.Handler {
	if router == sitemapgen.RouterGin {
		engine := gin.New()
		engine.Use(gin.Recovery())
		ginsitemap.Register(engine, baseURL, entries, opts)
		return engine
	}

	mux := http.NewServeMux()
	sitemap.Register(mux, baseURL, entries, opts)
	return mux
}

func runServe(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, projectCfg, err := buildGenerateConfig(cmd, sourceDir(args), &serveFlags, verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := scanSource(ctx, cfg)
	if err != nil {
		return err
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := logging.NewConsoleLogger(verbose)
	baseURL := resolveBaseURL(serveFlags.baseURL, projectCfg)
	server := &http.Server{
		Addr:              serveAddr,
		Handler:           newPreviewHandler(cfg.Router, baseURL, result.SitemapEntries(), sitemap.Options{EscapeXML: cfg.EscapeXML}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	logger.Info("Serving %d entries at http://%s/%s (base URL %s, router %s)",
		len(result.Entries), displayAddr(serveAddr), sitemap.Path, baseURL, cfg.Router)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("preview server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// displayAddr turns ":8080" into "localhost:8080" for the startup message.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
