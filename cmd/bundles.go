package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohitmishra786/low-level-dev-skills/internal/plan"
	"github.com/mohitmishra786/low-level-dev-skills/internal/ui"
)

var bundlesJSON bool

var bundlesCmd = &cobra.Command{
	Use:   "bundles",
	Short: "List the curated bundles and their install commands",
	RunE:  runBundles,
}

func init() {
	rootCmd.AddCommand(bundlesCmd)
	bundlesCmd.Flags().BoolVar(&bundlesJSON, "json", false, "Output as JSON")
}

func runBundles(cmd *cobra.Command, args []string) error {
	cat, resolver, err := newResolver()
	if err != nil {
		return err
	}

	if bundlesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cat.Bundles())
	}

	styles := ui.DefaultStyles()
	for i, b := range cat.Bundles() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s %s\n", styles.Title.Render(b.Label), styles.Subtitle.Render("#"+b.Tag))
		fmt.Printf("  %s\n", styles.Muted.Render(b.Description))
		fmt.Printf("  %s\n", styles.Subtitle.Render(strings.Join(b.Skills, " ")))

		p, err := resolver.Resolve(plan.SelectBundle(b.Tag))
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", styles.Command.Render(p.Command))
	}

	return nil
}
