package effects

import (
	"context"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/rusty-libraries/rusty-termcolor/terminal"
)

// ErrInvalidArgument reports a parameter an effect cannot work with:
// a non-positive width where a bar divides by it, a negative total, or an
// unknown spinner style. The rejection policy is applied consistently across
// all effects; degenerate-but-safe inputs (empty text, zero total) are
// no-ops instead.
var ErrInvalidArgument = errors.New("invalid argument")

// Renderer drives effect animations against a single output stream.
//
// Its collaborators are injectable: the random source for decode/color
// randomness (seed it for deterministic tests), the frame clock, and the
// terminal width query. A Renderer is not safe for concurrent use; the
// design assumes single-writer access to the stream.
type Renderer struct {
	term  *terminal.Writer
	rng   *rand.Rand
	sleep func(time.Duration)
	width func() int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRand injects the random source used by MatrixDecode.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// WithSleep injects the frame clock. Tests pass a no-op to run animations
// without wall-clock time.
func WithSleep(sleep func(time.Duration)) Option {
	return func(r *Renderer) { r.sleep = sleep }
}

// WithWidth injects the terminal width query used by SlideIn.
func WithWidth(width func() int) Option {
	return func(r *Renderer) { r.width = width }
}

// New returns a Renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	term := terminal.New(out)
	r := &Renderer{
		term:  term,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep: time.Sleep,
		width: term.Width,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Stdout returns a Renderer writing to standard output.
func Stdout(opts ...Option) *Renderer {
	return New(os.Stdout, opts...)
}

// wait checks for cancellation, then blocks for the frame delay.
func (r *Renderer) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		r.sleep(d)
	}
	return nil
}
