package format

import (
	"strings"
)

// Position places banner text relative to its ASCII art.
type Position uint8

const (
	PositionTop Position = iota
	PositionMiddle
	PositionBottom
)

// Banner combines a block of ASCII art with text placed beside it.
type Banner struct {
	Art      string   // ASCII art block
	Text     string   // text shown alongside the art
	Padding  int      // columns between art and text
	Position Position // vertical placement of the text
}

// Render lays the text beside the art at the configured position and
// padding. Art lines are padded to the art's widest line so the text column
// stays aligned.
func (b Banner) Render() string {
	artLines := strings.Split(b.Art, "\n")
	textLines := strings.Split(b.Text, "\n")
	if b.Text == "" {
		textLines = nil
	}

	artW := 0
	for _, l := range artLines {
		if w := stringWidth(l); w > artW {
			artW = w
		}
	}

	start := 0
	switch b.Position {
	case PositionMiddle:
		start = (len(artLines) - len(textLines)) / 2
	case PositionBottom:
		start = len(artLines) - len(textLines)
	}
	if start < 0 {
		start = 0
	}

	pad := strings.Repeat(" ", b.Padding)

	var out strings.Builder
	for i, artLine := range artLines {
		out.WriteString(PadRight(artLine, artW))
		if i >= start && i-start < len(textLines) {
			out.WriteString(pad)
			out.WriteString(textLines[i-start])
		}
		if i < len(artLines)-1 {
			out.WriteByte('\n')
		}
	}
	return strings.TrimRight(out.String(), " \n")
}

// NewBanner renders a banner in one call.
func NewBanner(art, text string, padding int, pos Position) string {
	return Banner{Art: art, Text: text, Padding: padding, Position: pos}.Render()
}
