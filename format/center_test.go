package format

import "testing"

// TestCenter verifies left-padding centers text within the width
func TestCenter(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{name: "Even padding", text: "ab", width: 6, expected: "  ab"},
		{name: "Odd padding rounds down", text: "abc", width: 6, expected: " abc"},
		{name: "Exact width unchanged", text: "abcdef", width: 6, expected: "abcdef"},
		{name: "Wider than width unchanged", text: "abcdefgh", width: 6, expected: "abcdefgh"},
		{name: "Empty line untouched", text: "", width: 10, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Center(tt.text, tt.width); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// TestCenterMultiLine verifies each line centers independently
func TestCenterMultiLine(t *testing.T) {
	got := Center("ab\nabcd", 8)
	expected := "   ab\n  abcd"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

// TestPadding verifies the pad helpers use display width
func TestPadding(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight: got %q", got)
	}
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("PadLeft: got %q", got)
	}
	if got := PadRight("日", 4); got != "日  " {
		t.Errorf("PadRight wide rune: got %q", got)
	}
}

// TestTruncate verifies ellipsis truncation
func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxLen   int
		expected string
	}{
		{name: "Fits", s: "abc", maxLen: 5, expected: "abc"},
		{name: "Truncated", s: "abcdef", maxLen: 4, expected: "abc…"},
		{name: "One column", s: "abcdef", maxLen: 1, expected: "…"},
		{name: "Zero", s: "abcdef", maxLen: 0, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.maxLen); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
