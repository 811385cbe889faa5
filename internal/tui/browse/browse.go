// Package browse implements the interactive catalog browser: category
// tabs, a fuzzy-filterable skill list, and bundle cards whose install
// commands can be copied to the clipboard.
package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/sahilm/fuzzy"

	"github.com/mohitmishra786/low-level-dev-skills/internal/catalog"
	"github.com/mohitmishra786/low-level-dev-skills/internal/plan"
	"github.com/mohitmishra786/low-level-dev-skills/internal/ui"
)

// statusTTL is how long a transient "copied!" notice stays visible.
// Purely cosmetic; nothing depends on the timer firing.
const statusTTL = 2 * time.Second

const bundlesTab = "bundles"

// clearStatusMsg clears the transient status line.
type clearStatusMsg struct{}

// copyFunc writes a string to the system clipboard. Injectable so tests
// can observe copies without touching the real clipboard.
type copyFunc func(string) error

// Model is the Bubble Tea model for the browser.
type Model struct {
	cat      *catalog.Catalog
	resolver *plan.Resolver

	// tabs is "all", one entry per category, then "bundles".
	tabs   []string
	active int
	cursor int

	filter    textinput.Model
	filtering bool

	width, height int

	status    string
	statusErr bool

	copyText copyFunc
	quitting bool
}

// New creates a browser over the given catalog and resolver.
func New(cat *catalog.Catalog, resolver *plan.Resolver) Model {
	ti := textinput.New()
	ti.Placeholder = "filter skills"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	tabs := append([]string{"all"}, cat.Categories()...)
	tabs = append(tabs, bundlesTab)

	return Model{
		cat:      cat,
		resolver: resolver,
		tabs:     tabs,
		filter:   ti,
		copyText: clipboard.WriteAll,
		width:    80,
		height:   24,
	}
}

// Run starts the browser in the alternate screen.
func Run(cat *catalog.Catalog, resolver *plan.Resolver) error {
	_, err := tea.NewProgram(New(cat, resolver), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter input is focused it consumes everything except
	// enter and esc.
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.cursor = 0
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab", "right", "l":
		m.active = (m.active + 1) % len(m.tabs)
		m.cursor = 0
		return m, nil

	case "shift+tab", "left", "h":
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		m.cursor = 0
		return m, nil

	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "/":
		if m.tabs[m.active] != bundlesTab {
			m.filtering = true
			m.filter.Focus()
		}
		return m, nil

	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
		}
		return m, nil

	case "c", "enter":
		return m.copyCurrent()
	}

	return m, nil
}

// listLen is the length of the navigable list under the active tab.
func (m Model) listLen() int {
	if m.tabs[m.active] == bundlesTab {
		return len(m.cat.Bundles())
	}
	return len(m.visibleSkills())
}

// currentSelection maps the browser state to a resolver request.
func (m Model) currentSelection() plan.Selection {
	tab := m.tabs[m.active]
	if tab == bundlesTab {
		bundles := m.cat.Bundles()
		if len(bundles) == 0 {
			return plan.SelectNames()
		}
		return plan.SelectBundle(bundles[m.cursor].Tag)
	}

	// A live filter narrows the copy to exactly what is shown.
	if m.filter.Value() != "" {
		visible := m.visibleSkills()
		names := make([]string, len(visible))
		for i, s := range visible {
			names[i] = s.Name
		}
		return plan.SelectNames(names...)
	}

	if tab == "all" {
		return plan.SelectAll()
	}
	return plan.SelectCategory(tab)
}

func (m Model) copyCurrent() (tea.Model, tea.Cmd) {
	p, err := m.resolver.Resolve(m.currentSelection())
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	if p.Command == "" {
		return m.setStatus("nothing to copy", true)
	}
	if err := m.copyText(p.Command); err != nil {
		return m.setStatus(fmt.Sprintf("copy failed: %v", err), true)
	}
	return m.setStatus(fmt.Sprintf("copied! (%d skills)", len(p.Skills)), false)
}

func (m Model) setStatus(status string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusErr = isErr
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// skillSource adapts a skill slice to fuzzy.Source.
type skillSource []catalog.Skill

func (s skillSource) String(i int) string { return s[i].Name }
func (s skillSource) Len() int            { return len(s) }

// visibleSkills returns the skills under the active tab, narrowed by the
// fuzzy filter when one is set.
func (m Model) visibleSkills() []catalog.Skill {
	var skills []catalog.Skill
	switch tab := m.tabs[m.active]; tab {
	case bundlesTab:
		return nil
	case "all":
		skills = m.cat.Skills()
	default:
		skills = m.cat.ByCategory(tab)
	}

	query := m.filter.Value()
	if query == "" {
		return skills
	}

	matches := fuzzy.FindFrom(query, skillSource(skills))
	filtered := make([]catalog.Skill, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, skills[match.Index])
	}
	return filtered
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("low-level-dev-skills"))
	b.WriteString(hintStyle.Render(fmt.Sprintf("  %d skills, %d bundles", m.cat.Len(), len(m.cat.Bundles()))))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.tabs[m.active] == bundlesTab {
		b.WriteString(m.renderBundles())
	} else {
		b.WriteString(m.renderSkills())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.active {
			parts[i] = activeTabStyle.Render(tab)
		} else {
			parts[i] = tabStyle.Render(tab)
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderSkills() string {
	skills := m.visibleSkills()

	var b strings.Builder
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(skills) == 0 {
		b.WriteString(hintStyle.Render("no skills match"))
		b.WriteString("\n")
		return b.String()
	}

	nameWidth := 0
	for _, s := range skills {
		if len(s.Name) > nameWidth {
			nameWidth = len(s.Name)
		}
	}

	descWidth := m.width - nameWidth - 6
	for i, s := range skills {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(skillNameStyle.Render(ui.PadDisplay(s.Name, nameWidth)))
		b.WriteString("  ")
		b.WriteString(skillDescStyle.Render(ui.TruncateDisplay(s.Description, descWidth, "…")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderBundles() string {
	bundles := m.cat.Bundles()
	if len(bundles) == 0 {
		return hintStyle.Render("no bundles defined") + "\n"
	}

	wrapWidth := m.width - 4
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	var b strings.Builder
	for i, bundle := range bundles {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(bundleLabelStyle.Render(bundle.Label))
		b.WriteString(bundleTagStyle.Render("  #" + bundle.Tag))
		b.WriteString("\n")

		for _, line := range strings.Split(wordwrap.String(bundle.Description, wrapWidth), "\n") {
			b.WriteString("    " + skillDescStyle.Render(line) + "\n")
		}
		b.WriteString("    " + hintStyle.Render(strings.Join(bundle.Skills, " ")) + "\n")

		if i == m.cursor {
			p, err := m.resolver.Resolve(plan.SelectBundle(bundle.Tag))
			if err == nil {
				b.WriteString("    " + commandStyle.Render(p.Command) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	if m.status != "" {
		if m.statusErr {
			return statusErrStyle.Render(m.status)
		}
		return statusOKStyle.Render(m.status)
	}
	return hintStyle.Render("←/→ tabs • ↑/↓ move • / filter • c copy install command • q quit")
}
