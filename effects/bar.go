package effects

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// Loading bar glyphs
const (
	barFull  = '█'
	barEmpty = '░'
)

// LoadingBar redraws a fixed-width bar in place for each step from 1 to
// total. At step k the filled portion is floor(Width*k/total) glyphs; the
// final step shows the bar fully filled with a "total/total" label and emits
// exactly one trailing newline.
//
// A zero total is a no-op. total < 0 or Width <= 0 is rejected.
func (r *Renderer) LoadingBar(ctx context.Context, total int, s Settings, c color.Color) error {
	if total == 0 {
		return nil
	}
	if total < 0 {
		return errors.Wrap(ErrInvalidArgument, "negative total")
	}
	if s.Width <= 0 {
		return errors.Wrap(ErrInvalidArgument, "non-positive bar width")
	}

	return r.term.WithHiddenCursor(func() error {
		for step := 1; step <= total; step++ {
			fill := s.Width * step / total

			r.term.CarriageReturn()
			r.term.WriteString(c.ANSI())
			r.term.WriteRune('[')
			for i := 0; i < s.Width; i++ {
				if i < fill {
					r.term.WriteRune(barFull)
				} else {
					r.term.WriteRune(barEmpty)
				}
			}
			r.term.WriteRune(']')
			r.term.WriteString(" " + strconv.Itoa(step) + "/" + strconv.Itoa(total))
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
