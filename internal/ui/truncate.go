package ui

import "github.com/mattn/go-runewidth"

// TruncateDisplay shortens a string to maxWidth terminal cells, appending
// suffix when truncation occurs. Widths are measured in display cells so
// double-width runes do not overflow fixed columns.
func TruncateDisplay(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth >= maxWidth {
		// No room for content at all; fall back to clipped dots.
		return runewidth.Truncate(suffix, maxWidth, "")
	}

	return runewidth.Truncate(s, maxWidth-suffixWidth, "") + suffix
}

// PadDisplay pads a string with spaces to exactly width terminal cells,
// truncating first if it is too long.
func PadDisplay(s string, width int) string {
	s = TruncateDisplay(s, width, "…")
	return s + spaces(width-runewidth.StringWidth(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
