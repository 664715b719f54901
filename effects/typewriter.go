package effects

import (
	"context"

	"github.com/rivo/uniseg"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// Typewriter reveals text one grapheme cluster at a time, left to right,
// flushing after each cluster and pausing Delay between them. Newlines pass
// through and advance output to the next line.
//
// A nil c means uncolored output with no escape sequences at all. With a
// color, the escape prefix is set once before the first cluster and reset
// once after the last; for a single color this is observably equivalent to
// wrapping every revealed prefix.
//
// The cursor ends immediately after the last character.
func (r *Renderer) Typewriter(ctx context.Context, text string, s Settings, c *color.Color) error {
	if text == "" {
		return nil
	}

	if c != nil {
		r.term.WriteString(c.ANSI())
	}

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		r.term.WriteString(g.Str())
		if err := r.term.Flush(); err != nil {
			return err
		}
		if err := r.wait(ctx, s.Delay); err != nil {
			r.resetColor(c)
			return err
		}
	}

	r.resetColor(c)
	return r.term.Flush()
}

// resetColor emits the reset suffix when a color prefix was set.
func (r *Renderer) resetColor(c *color.Color) {
	if c != nil {
		r.term.WriteString(color.Reset)
		r.term.Flush()
	}
}
