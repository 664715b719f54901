package color

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fade returns a gradient of exactly steps colors from start to end,
// interpolated linearly in RGB space.
//
// steps <= 0 returns nil. steps == 1 returns only the start color.
// For steps >= 2 the first element is exactly start and the last exactly end.
func Fade(start, end Color, steps int) []Color {
	if steps <= 0 {
		return nil
	}
	out := make([]Color, steps)
	out[0] = start
	if steps == 1 {
		return out
	}

	a := toColorful(start)
	b := toColorful(end)
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		out[i] = fromColorful(a.BlendRgb(b, t))
	}
	out[steps-1] = end
	return out
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
