package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mohitmishra786/low-level-dev-skills/internal/plan"
	"github.com/mohitmishra786/low-level-dev-skills/internal/ui"
)

var pickCopy bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick skills and print their install command",
	Long: `Walk through the catalog category by category, pick skills with an
interactive multi-select, and print the resulting install command.`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().BoolVar(&pickCopy, "copy", false, "Also copy the command to the clipboard")
}

func runPick(cmd *cobra.Command, args []string) error {
	cat, resolver, err := newResolver()
	if err != nil {
		return err
	}

	names, err := ui.PickSkills(cat)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "nothing picked")
		return nil
	}

	p, err := resolver.Resolve(plan.SelectNames(names...))
	if err != nil {
		return err
	}

	styles := ui.DefaultStyles()
	fmt.Println(styles.Command.Render(p.Command))

	if pickCopy {
		if err := clipboard.WriteAll(p.Command); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, styles.FormatResult(true, fmt.Sprintf("copied (%d skills)", len(p.Skills))))
	}

	return nil
}
