package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// completeRouters provides shell completion for --router values.
func completeRouters(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, r := range sitemapgen.Routers() {
		if strings.HasPrefix(string(r), toComplete) {
			matches = append(matches, string(r))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for the [dir] argument.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
