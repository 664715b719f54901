package effects

import (
	"context"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// Wiggle re-renders text with each character oscillating between two rows,
// one frame per character phase over Iterations passes. Redraw is in place
// via cursor-up and carriage return. The effect ends with the plain text on
// a single line followed by a newline.
//
// Empty text is a no-op.
func (r *Renderer) Wiggle(ctx context.Context, text string, s Settings, c *color.Color) error {
	chars := []rune(text)
	if len(chars) == 0 {
		return nil
	}

	frames := s.Iterations * len(chars)

	return r.term.WithHiddenCursor(func() error {
		for f := 0; f < frames; f++ {
			top := make([]rune, len(chars))
			bottom := make([]rune, len(chars))
			for i, ch := range chars {
				// Alternating per-character phase, advancing one column per frame
				if (i+f)%2 == 0 {
					top[i] = ch
					bottom[i] = ' '
				} else {
					top[i] = ' '
					bottom[i] = ch
				}
			}

			r.term.CarriageReturn()
			r.term.ClearLine()
			if c != nil {
				r.term.WriteString(c.ANSI())
			}
			r.term.WriteString(string(top))
			r.term.WriteString("\n")
			r.term.ClearLine()
			r.term.WriteString(string(bottom))
			if c != nil {
				r.term.WriteString(color.Reset)
			}
			r.term.CursorUp(1)
			r.term.CarriageReturn()

			if err := r.term.Flush(); err != nil {
				return err
			}
			if err := r.wait(ctx, s.Delay); err != nil {
				return err
			}
		}

		// Settle: plain text on the top row, second row cleared
		r.term.CarriageReturn()
		r.term.ClearLine()
		if c != nil {
			r.term.WriteString(c.ANSI())
		}
		r.term.WriteString(text)
		if c != nil {
			r.term.WriteString(color.Reset)
		}
		r.term.WriteString("\n")
		r.term.ClearLine()
		return r.term.Flush()
	})
}
