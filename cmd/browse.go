package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mohitmishra786/low-level-dev-skills/internal/tui/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Open the interactive catalog browser: category tabs, fuzzy filtering,
and bundle cards. Press c on any tab or bundle to copy its install
command to the clipboard.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cat, resolver, err := newResolver()
	if err != nil {
		return err
	}
	return browse.Run(cat, resolver)
}
