package effects

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

var testColor = color.Green

// Shared test fixtures: deterministic renderer over an in-memory stream with
// a no-op frame clock and a seeded random source.

func newTestRenderer(out io.Writer) *Renderer {
	return New(out,
		WithSleep(func(time.Duration) {}),
		WithRand(rand.New(rand.NewSource(1))),
		WithWidth(func() int { return 80 }),
	)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// stripANSI removes CSI escape sequences, leaving printable output
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// frames splits in-place-redraw output into per-frame chunks
func frames(out string) []string {
	parts := strings.Split(out, "\r")
	var res []string
	for _, p := range parts {
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// recorder captures each Write call separately so tests can observe flush
// boundaries.
type recorder struct {
	chunks []string
}

func (r *recorder) Write(p []byte) (int, error) {
	r.chunks = append(r.chunks, string(p))
	return len(p), nil
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Delay != 50*time.Millisecond {
		t.Errorf("Expected 50ms delay, got %v", s.Delay)
	}
	if s.Iterations != 3 {
		t.Errorf("Expected 3 iterations, got %d", s.Iterations)
	}
	if s.Width != 40 {
		t.Errorf("Expected width 40, got %d", s.Width)
	}
}

// TestRendererNoOpProducesNoOutput documents that effects write nothing when the
// animation body never runs.
func TestRendererNoOpProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf)

	if err := r.LoadingBar(context.Background(), 0, DefaultSettings(), testColor); err != nil {
		t.Fatalf("Zero total should be a no-op, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("No-op wrote %q", buf.String())
	}
}
