package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sitemapgen",
	Short: "Build-time sitemap.xml generator for Go web apps",
	Long: `sitemapgen scans Go source for page types annotated with a route and a
sitemap directive, then generates a Go file that serves /sitemap.xml.

  // @router.Route("/products")
  // @SitemapUrl(sitemap.Weekly, 0.8)
  type ProductsPage struct{}

Run it from go generate:

  //go:generate sitemapgen generate .

Exit Codes:
  0  - Success
  1  - General error (unreadable source, syntax error)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - User denied overwriting a hand-written file
  15 - Generated file is stale (--check)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
