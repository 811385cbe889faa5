package browse

import "github.com/charmbracelet/lipgloss"

// Styles and colors for the browser, centralised like the rest of the UI.
var (
	colorGreen  = lipgloss.Color("10")
	colorRed    = lipgloss.Color("9")
	colorGrey   = lipgloss.Color("8")
	colorBlue   = lipgloss.Color("4")
	colorWhite  = lipgloss.Color("15")
	colorYellow = lipgloss.Color("11")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorGrey).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorBlue).
			Padding(0, 1)

	skillNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	skillDescStyle = lipgloss.NewStyle().
			Foreground(colorGrey)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	bundleLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	bundleTagStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	statusOKStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	statusErrStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorGrey)
)
