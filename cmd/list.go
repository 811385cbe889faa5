package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
	"github.com/mohitmishra786/low-level-dev-skills/internal/ui"
)

var listCategory string
var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills in the catalog",
	Long: `List the skills in the catalog, grouped by category.

Examples:
  llds list                        # all skills
  llds list --category debuggers   # one category
  llds list --json                 # machine-readable output`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only show skills in this category")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.RegisterFlagCompletionFunc("category", CategoryFlagCompletion)
}

func runList(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()

	var skills []catalog.Skill
	if listCategory != "" {
		skills = cat.ByCategory(listCategory)
		if len(skills) == 0 {
			return fmt.Errorf("no skills in category %q (try 'llds list' to see categories)", listCategory)
		}
	} else {
		skills = cat.Skills()
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(skills)
	}

	styles := ui.DefaultStyles()
	descWidth := terminalWidth() - 26

	lastCategory := ""
	for _, s := range skills {
		if s.Category != lastCategory {
			if lastCategory != "" {
				fmt.Println()
			}
			fmt.Println(styles.Category.Render(s.Category))
			lastCategory = s.Category
		}
		fmt.Printf("  %s  %s\n",
			styles.Bold.Render(ui.PadDisplay(s.Name, 20)),
			styles.Muted.Render(ui.TruncateDisplay(s.Description, descWidth, "…")))
	}

	return nil
}

// terminalWidth returns the stdout width, or 80 when not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
