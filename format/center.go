package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Center left-pads each line of text so it appears centered within width
// columns. Lines at least as wide as width are returned unchanged.
func Center(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		w := runewidth.StringWidth(l)
		if w >= width || l == "" {
			continue
		}
		lines[i] = strings.Repeat(" ", (width-w)/2) + l
	}
	return strings.Join(lines, "\n")
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft left-pads s with spaces to the given display width.
func PadLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// Truncate truncates s with an … suffix if it exceeds maxLen runes.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
