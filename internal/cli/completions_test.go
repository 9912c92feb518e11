package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteRouters(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns all routers for empty input", func(t *testing.T) {
		completions, directive := completeRouters(cmd, nil, "")
		assert.Equal(t, []string{"http", "gin"}, completions)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})

	t.Run("filters by prefix", func(t *testing.T) {
		completions, _ := completeRouters(cmd, nil, "g")
		assert.Equal(t, []string{"gin"}, completions)
	})

	t.Run("returns empty for non-matching prefix", func(t *testing.T) {
		completions, _ := completeRouters(cmd, nil, "chi")
		assert.Empty(t, completions)
	})
}

func TestCompleteDirectories(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns FilterDirs directive for first arg", func(t *testing.T) {
		_, directive := completeDirectories(cmd, nil, "")
		assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)
	})

	t.Run("returns NoFileComp when args already provided", func(t *testing.T) {
		_, directive := completeDirectories(cmd, []string{"./web"}, "")
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	})
}
