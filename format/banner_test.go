package format

import (
	"strings"
	"testing"
)

const testArt = "/\\\n||\n\\/"

// TestBannerPositions verifies vertical placement of the text column
func TestBannerPositions(t *testing.T) {
	tests := []struct {
		name     string
		position Position
		wantLine int // line index carrying the text
	}{
		{name: "Top", position: PositionTop, wantLine: 0},
		{name: "Middle", position: PositionMiddle, wantLine: 1},
		{name: "Bottom", position: PositionBottom, wantLine: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBanner(testArt, "hello", 2, tt.position)
			lines := strings.Split(got, "\n")
			for i, l := range lines {
				has := strings.Contains(l, "hello")
				if i == tt.wantLine && !has {
					t.Errorf("Expected text on line %d:\n%s", tt.wantLine, got)
				}
				if i != tt.wantLine && has {
					t.Errorf("Text leaked onto line %d:\n%s", i, got)
				}
			}
		})
	}
}

// TestBannerPadding verifies the configured gap between art and text
func TestBannerPadding(t *testing.T) {
	got := NewBanner("##", "x", 3, PositionTop)
	if got != "##   x" {
		t.Errorf("Expected %q, got %q", "##   x", got)
	}
}

// TestBannerMultiLineText verifies text lines track consecutive art lines
func TestBannerMultiLineText(t *testing.T) {
	got := NewBanner(testArt, "a\nb", 1, PositionBottom)
	lines := strings.Split(got, "\n")
	if !strings.Contains(lines[1], "a") || !strings.Contains(lines[2], "b") {
		t.Errorf("Bottom-positioned two-line text misplaced:\n%s", got)
	}
}

// TestBannerArtOnly verifies empty text leaves the art intact
func TestBannerArtOnly(t *testing.T) {
	got := NewBanner("ab\ncd", "", 4, PositionMiddle)
	if got != "ab\ncd" {
		t.Errorf("Expected bare art, got %q", got)
	}
}
