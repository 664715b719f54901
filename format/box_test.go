package format

import (
	"strings"
	"testing"
)

// TestBoxSingleLine verifies the exact double-line box around one line
func TestBoxSingleLine(t *testing.T) {
	got := Box("hi", LineDouble)
	expected := "╔════╗\n║ hi ║\n╚════╝"
	if got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}
}

// TestBoxMultiLinePadding verifies shorter lines pad to the widest line
func TestBoxMultiLinePadding(t *testing.T) {
	got := Box("abc\nx", LineSingle)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	if lines[1] != "│ abc │" {
		t.Errorf("Unexpected first content line %q", lines[1])
	}
	if lines[2] != "│ x   │" {
		t.Errorf("Expected padded content line, got %q", lines[2])
	}
	for _, l := range lines {
		if stringWidth(l) != stringWidth(lines[0]) {
			t.Errorf("Ragged box edge: %q vs %q", l, lines[0])
		}
	}
}

// TestBoxLineTypes verifies every style uses its own corner set
func TestBoxLineTypes(t *testing.T) {
	tests := []struct {
		name    string
		line    LineType
		corners string
	}{
		{name: "Single", line: LineSingle, corners: "┌┐└┘"},
		{name: "Double", line: LineDouble, corners: "╔╗╚╝"},
		{name: "Rounded", line: LineRounded, corners: "╭╮╰╯"},
		{name: "Heavy", line: LineHeavy, corners: "┏┓┗┛"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Box("x", tt.line)
			for _, c := range tt.corners {
				if !strings.ContainsRune(got, c) {
					t.Errorf("Missing corner %q in:\n%s", c, got)
				}
			}
		})
	}
}

// TestBoxUnknownLineType verifies the documented fallback to double lines
func TestBoxUnknownLineType(t *testing.T) {
	if got := Box("x", LineType(200)); got != Box("x", LineDouble) {
		t.Errorf("Unknown line type should fall back to double, got:\n%s", got)
	}
}

// TestBoxWideRunes verifies display-width padding for full-width characters
func TestBoxWideRunes(t *testing.T) {
	got := Box("日本\nab", LineSingle)
	lines := strings.Split(got, "\n")
	if stringWidth(lines[1]) != stringWidth(lines[2]) {
		t.Errorf("Wide runes broke alignment:\n%s", got)
	}
}
