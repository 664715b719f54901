package effects

import (
	"context"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// Candidate alphabet for undecoded positions
var matrixGlyphs = []rune("!@#$%^&*()_+-=[]{}|;:,.<>?")

// MatrixDecode simulates each character decoding from random glyphs to its
// true value. Every position gets a random settle frame bounded by
// Iterations x len(text); before it settles the position shows a random
// glyph from the candidate alphabet, redrawn in place each frame. The final
// frame is exactly the input text, followed by a newline.
//
// The input is treated as a single line. Empty text is a no-op.
func (r *Renderer) MatrixDecode(ctx context.Context, text string, s Settings, c *color.Color) error {
	chars := []rune(text)
	if len(chars) == 0 {
		return nil
	}

	frames := s.Iterations * len(chars)
	if frames < 1 {
		frames = 1
	}

	// Randomized per-character settle schedule; max possible settle frame is
	// frames-1, so the last frame always shows the true text.
	settle := make([]int, len(chars))
	for i := range settle {
		settle[i] = r.rng.Intn(frames)
	}

	return r.term.WithHiddenCursor(func() error {
		for f := 0; f < frames; f++ {
			r.term.CarriageReturn()
			if c != nil {
				r.term.WriteString(c.ANSI())
			}
			for i, ch := range chars {
				if f >= settle[i] {
					r.term.WriteRune(ch)
				} else {
					r.term.WriteRune(matrixGlyphs[r.rng.Intn(len(matrixGlyphs))])
				}
			}
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
