// Package format produces ready-to-print strings: boxes, tables, banners,
// centered and colored text. Everything here is a pure transform with no
// timing or terminal state; widths are display widths, not byte or rune
// counts.
package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// stringWidth is the display width used throughout this package.
func stringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box surrounds text with a border of box-drawing characters, one padding
// space on each side. Multi-line input is padded to the widest line.
// Unknown line types fall back to LineDouble.
func Box(text string, line LineType) string {
	if line >= LineType(len(boxChars)) {
		line = LineDouble
	}
	chars := boxChars[line]

	lines := strings.Split(text, "\n")
	maxW := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > maxW {
			maxW = w
		}
	}

	var b strings.Builder
	b.WriteRune(chars[boxTL])
	b.WriteString(strings.Repeat(string(chars[boxH]), maxW+2))
	b.WriteRune(chars[boxTR])
	b.WriteByte('\n')

	for _, l := range lines {
		b.WriteRune(chars[boxV])
		b.WriteByte(' ')
		b.WriteString(l)
		b.WriteString(strings.Repeat(" ", maxW-runewidth.StringWidth(l)))
		b.WriteByte(' ')
		b.WriteRune(chars[boxV])
		b.WriteByte('\n')
	}

	b.WriteRune(chars[boxBL])
	b.WriteString(strings.Repeat(string(chars[boxH]), maxW+2))
	b.WriteRune(chars[boxBR])
	return b.String()
}
