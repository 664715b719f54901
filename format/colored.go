package format

import (
	"strings"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// Colored wraps text in the color's escape prefix and the reset suffix.
func Colored(text string, c color.Color) string {
	return c.ANSI() + text + color.Reset
}

// Fade colors each character of text by mapping its position onto the given
// gradient: character i takes color i*len(colors)/len(text). A single reset
// closes the sequence. Empty colors returns the text unchanged.
func Fade(text string, colors []color.Color) string {
	if len(colors) == 0 || text == "" {
		return text
	}

	chars := []rune(text)
	var b strings.Builder
	last := -1
	for i, ch := range chars {
		idx := i * len(colors) / len(chars)
		if idx != last {
			b.WriteString(colors[idx].ANSI())
			last = idx
		}
		b.WriteRune(ch)
	}
	b.WriteString(color.Reset)
	return b.String()
}
