// Package color provides 24-bit terminal colors, gradients, and xterm-256
// palette quantization.
//
// Colors are plain immutable values; only value equality matters. Channel
// values are uint8, so out-of-range construction saturates at the Go
// conversion boundary before a Color ever exists.
package color

import "strconv"

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// New returns the color with the given channel values.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Equal returns true if colors match.
func (c Color) Equal(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// RGB returns the three channel values.
func (c Color) RGB() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// Reset clears all SGR attributes.
const Reset = "\x1b[0m"

// ANSI returns the 24-bit foreground escape prefix for this color.
// Distinct colors produce distinct sequences.
func (c Color) ANSI() string {
	buf := make([]byte, 0, 19)
	buf = append(buf, "\x1b[38;2;"...)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	buf = append(buf, 'm')
	return string(buf)
}

// String implements fmt.Stringer, returning the ANSI prefix so a Color can
// be interpolated directly into terminal output.
func (c Color) String() string {
	return c.ANSI()
}
