package effects

import (
	"context"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// RainbowText writes text with each character colored by its position in the
// seven-color rainbow cycle. With Iterations > 0 the coloring is animated:
// Iterations full passes of the cycle, each frame shifting the colors one
// step and redrawing in place. Iterations == 0 writes a single frame.
// A trailing newline is emitted once.
//
// Empty text is a no-op.
func (r *Renderer) RainbowText(ctx context.Context, text string, s Settings) error {
	chars := []rune(text)
	if len(chars) == 0 {
		return nil
	}

	cycle := color.Rainbow
	frames := s.Iterations * len(cycle)
	if frames < 1 {
		frames = 1
	}

	return r.term.WithHiddenCursor(func() error {
		for f := 0; f < frames; f++ {
			r.term.CarriageReturn()
			for i, ch := range chars {
				r.term.WriteString(cycle[(f+i)%len(cycle)].ANSI())
				r.term.WriteRune(ch)
			}
			r.term.WriteString(color.Reset)

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
