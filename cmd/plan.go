package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mohitmishra786/low-level-dev-skills/internal/plan"
	"github.com/mohitmishra786/low-level-dev-skills/internal/ui"
)

var planAll bool
var planCategory string
var planBundle string
var planCopy bool
var planJSON bool

var planCmd = &cobra.Command{
	Use:   "plan [skill|glob ...]",
	Short: "Resolve a selection into its install command",
	Long: `Resolve a selection of skills into a deduplicated install plan and
print the command that installs it.

Select skills one of four ways: --all, --category, --bundle, or by
naming skills (globs are matched against the catalog). Unknown names
are dropped with a warning; an unknown bundle is an error.

Examples:
  llds plan --all
  llds plan --category debuggers
  llds plan --bundle rust
  llds plan gdb lldb core-dumps
  llds plan 'rust-*' --copy`,
	RunE:              runPlan,
	ValidArgsFunction: SkillArgCompletion,
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&planAll, "all", false, "Select every skill in the catalog")
	planCmd.Flags().StringVarP(&planCategory, "category", "c", "", "Select every skill in a category")
	planCmd.Flags().StringVarP(&planBundle, "bundle", "b", "", "Select the members of a bundle")
	planCmd.Flags().BoolVar(&planCopy, "copy", false, "Also copy the command to the clipboard")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Output the plan as JSON")
	planCmd.RegisterFlagCompletionFunc("category", CategoryFlagCompletion)
	planCmd.RegisterFlagCompletionFunc("bundle", BundleFlagCompletion)
}

// planSelection validates that exactly one selection mode was used and
// maps it onto a resolver request.
func planSelection(args []string) (plan.Selection, error) {
	modes := 0
	if planAll {
		modes++
	}
	if planCategory != "" {
		modes++
	}
	if planBundle != "" {
		modes++
	}
	if len(args) > 0 {
		modes++
	}
	if modes == 0 {
		return plan.Selection{}, fmt.Errorf("nothing selected: use --all, --category, --bundle, or name skills")
	}
	if modes > 1 {
		return plan.Selection{}, fmt.Errorf("pick one of --all, --category, --bundle, or positional skill names")
	}

	switch {
	case planAll:
		return plan.SelectAll(), nil
	case planCategory != "":
		return plan.SelectCategory(planCategory), nil
	case planBundle != "":
		return plan.SelectBundle(planBundle), nil
	default:
		return plan.SelectNames(args...), nil
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	sel, err := planSelection(args)
	if err != nil {
		return err
	}

	_, resolver, err := newResolver()
	if err != nil {
		return err
	}

	p, err := resolver.Resolve(sel)
	if err != nil {
		return err
	}

	styles := ui.DefaultStyles()
	for _, name := range p.Unknown {
		fmt.Fprintln(os.Stderr, styles.Error.Render("warning: ")+fmt.Sprintf("unknown skill %q dropped from plan", name))
	}

	if planJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	if p.Command == "" {
		return fmt.Errorf("selection matched no skills")
	}

	fmt.Println(styles.Command.Render(p.Command))

	if planCopy {
		if err := clipboard.WriteAll(p.Command); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, styles.FormatResult(true, fmt.Sprintf("copied (%d skills)", len(p.Skills))))
	}

	return nil
}
