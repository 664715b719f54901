package effects

import (
	"context"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// SlideIn renders text sliding from the right edge toward the left margin:
// the left padding shrinks from Settings.Width (or the terminal width minus
// the text's display width when Width <= 0) down to zero, one frame per
// column, redrawing in place. The final frame shows the text left-aligned
// followed by a newline.
//
// Empty text is a no-op.
func (r *Renderer) SlideIn(ctx context.Context, text string, s Settings, c *color.Color) error {
	if text == "" {
		return nil
	}

	pad := s.Width
	if pad <= 0 {
		pad = r.width() - runewidth.StringWidth(text)
	}
	if pad < 0 {
		pad = 0
	}

	return r.term.WithHiddenCursor(func() error {
		for p := pad; p >= 0; p-- {
			r.term.CarriageReturn()
			r.term.ClearLine()
			r.term.WriteString(strings.Repeat(" ", p))
			if c != nil {
				r.term.WriteString(c.ANSI())
			}
			r.term.WriteString(text)
			if c != nil {
				r.term.WriteString(color.Reset)
			}

			if err := r.term.Flush(); err != nil {
				return err
			}
			if err := r.wait(ctx, s.Delay); err != nil {
				return err
			}
		}

		r.term.WriteString("\n")
		return r.term.Flush()
	})
}
