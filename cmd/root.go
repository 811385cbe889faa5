package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
	"github.com/mohitmishra786/low-level-dev-skills/internal/config"
	"github.com/mohitmishra786/low-level-dev-skills/internal/exitcode"
	"github.com/mohitmishra786/low-level-dev-skills/internal/plan"
)

var rootCmd = &cobra.Command{
	Use:   "llds",
	Short: "Browse the low-level-dev-skills catalog and plan installs",
	Long: `llds browses the low-level-dev-skills catalog and turns a selection
into the npx command that installs it.

Examples:
  llds list                        # the full catalog
  llds list --category debuggers   # one category
  llds bundles                     # curated bundles and their commands
  llds plan gdb lldb               # command for explicit skills
  llds plan 'rust-*'               # glob against the catalog
  llds plan --bundle rust --copy   # bundle command, copied to clipboard
  llds pick                        # interactive multi-select
  llds browse                      # interactive browser`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(exitcode.ExitError); ok {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitcode.Error)
	}
}

// newResolver builds the resolver shared by every command: the embedded
// catalog plus whatever source/installer the config overrides.
func newResolver() (*catalog.Catalog, *plan.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cat := catalog.Default()
	return cat, plan.NewResolver(cat, cfg.ResolverOptions()...), nil
}
