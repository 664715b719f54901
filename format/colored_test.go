package format

import (
	"strings"
	"testing"

	"github.com/rusty-libraries/rusty-termcolor/color"
)

// TestColored verifies the prefix/reset wrapping
func TestColored(t *testing.T) {
	got := Colored("hi", color.Red)
	if got != color.Red.ANSI()+"hi"+color.Reset {
		t.Errorf("Unexpected wrapping %q", got)
	}
}

// TestFadeMapping verifies character positions map onto the gradient and a
// single reset closes the sequence
func TestFadeMapping(t *testing.T) {
	colors := []color.Color{color.Red, color.Blue}
	got := Fade("abcd", colors)

	if !strings.HasPrefix(got, color.Red.ANSI()+"ab") {
		t.Errorf("First half should use the first color: %q", got)
	}
	if !strings.Contains(got, color.Blue.ANSI()+"cd") {
		t.Errorf("Second half should use the second color: %q", got)
	}
	if !strings.HasSuffix(got, color.Reset) {
		t.Errorf("Missing trailing reset: %q", got)
	}
	if strings.Count(got, color.Reset) != 1 {
		t.Errorf("Expected a single reset: %q", got)
	}
}

// TestFadeDegenerateInputs verifies pass-through cases
func TestFadeDegenerateInputs(t *testing.T) {
	if got := Fade("text", nil); got != "text" {
		t.Errorf("Empty gradient should pass text through, got %q", got)
	}
	if got := Fade("", []color.Color{color.Red}); got != "" {
		t.Errorf("Empty text should stay empty, got %q", got)
	}
}
