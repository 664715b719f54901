package effects

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// SpinnerStyle selects one of the predefined spinner glyph cycles. The set
// is closed; values outside it are rejected at the call boundary.
type SpinnerStyle uint8

const (
	SpinnerLine    SpinnerStyle = iota // | / - \
	SpinnerBraille                     // braille dot frames
	SpinnerArrows                      // rotating arrow frames
)

var spinnerCycles = [...][]rune{
	SpinnerLine:    {'|', '/', '-', '\\'},
	SpinnerBraille: {'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'},
	SpinnerArrows:  {'←', '↖', '↑', '↗', '→', '↘', '↓', '↙'},
}

// Frames returns the glyph cycle for the style.
func (st SpinnerStyle) Frames() ([]rune, error) {
	if int(st) >= len(spinnerCycles) {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown spinner style %d", st)
	}
	return spinnerCycles[st], nil
}

// ProgressSpinner redraws a single line in place for each of total frames,
// cycling the style's glyphs modulo the cycle length next to a k/total
// counter. A zero total is a no-op after style validation; total < 0 is
// rejected.
func (r *Renderer) ProgressSpinner(ctx context.Context, total int, s Settings, c color.Color, style SpinnerStyle) error {
	frames, err := style.Frames()
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}
	if total < 0 {
		return errors.Wrap(ErrInvalidArgument, "negative total")
	}

	return r.term.WithHiddenCursor(func() error {
		for i := 0; i < total; i++ {
			r.term.CarriageReturn()
			r.term.WriteString(c.ANSI())
			r.term.WriteRune(frames[i%len(frames)])
			r.term.WriteString(" " + strconv.Itoa(i+1) + "/" + strconv.Itoa(total))
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
