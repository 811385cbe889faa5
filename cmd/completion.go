package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
)

// CategoryFlagCompletion completes --category values from the catalog.
func CategoryFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, c := range catalog.Default().Categories() {
		if strings.HasPrefix(c, toComplete) {
			completions = append(completions, c)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// BundleFlagCompletion completes --bundle values from the catalog.
func BundleFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, b := range catalog.Default().Bundles() {
		if strings.HasPrefix(b.Tag, toComplete) {
			completions = append(completions, b.Tag+"\t"+b.Label)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// SkillArgCompletion completes positional skill names, skipping ones
// already on the command line.
func SkillArgCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	used := make(map[string]bool, len(args))
	for _, a := range args {
		used[a] = true
	}

	var completions []string
	for _, s := range catalog.Default().Skills() {
		if used[s.Name] {
			continue
		}
		if strings.HasPrefix(s.Name, toComplete) {
			completions = append(completions, s.Name+"\t"+s.Description)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
