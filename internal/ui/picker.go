package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
	"github.com/mohitmishra786/low-level-dev-skills/internal/exitcode"
)

var (
	pickNameStyle = lipgloss.NewStyle().Bold(true).Foreground(Green)
	pickDescStyle = lipgloss.NewStyle().Foreground(Grey)
)

// formatSkillOption renders one picker row: name plus muted description.
func formatSkillOption(s catalog.Skill) string {
	return pickNameStyle.Render(s.Name) + pickDescStyle.Render("  "+TruncateDisplay(s.Description, 60, "…"))
}

// PickSkills presents a multi-select over the catalog, one group per
// category, and returns the chosen skill names in catalog order.
// A cancelled form returns exitcode.Cancel.
func PickSkills(cat *catalog.Catalog) ([]string, error) {
	categories := cat.Categories()
	picked := make([][]string, len(categories))

	groups := make([]*huh.Group, 0, len(categories))
	for i, category := range categories {
		skills := cat.ByCategory(category)
		options := make([]huh.Option[string], 0, len(skills))
		for _, s := range skills {
			options = append(options, huh.NewOption(formatSkillOption(s), s.Name))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(category).
				Options(options...).
				Value(&picked[i]),
		))
	}

	form := huh.NewForm(groups...)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, exitcode.Cancel()
		}
		return nil, err
	}

	var selected []string
	for _, names := range picked {
		selected = append(selected, names...)
	}
	return orderByCatalog(cat, selected), nil
}

// orderByCatalog sorts picked names into catalog declaration order so the
// rendered command is stable no matter the picking order.
func orderByCatalog(cat *catalog.Catalog, names []string) []string {
	picked := make(map[string]bool, len(names))
	for _, n := range names {
		picked[n] = true
	}
	var out []string
	for _, s := range cat.Skills() {
		if picked[s.Name] {
			out = append(out, s.Name)
		}
	}
	return out
}
