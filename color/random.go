package color

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RandomPleasing returns a random saturated, bright color sampled in HSV
// space (hue uniform, saturation and value in [0.7, 1.0)).
//
// The random source is injected so callers can seed it for reproducible
// output.
func RandomPleasing(rng *rand.Rand) Color {
	h := rng.Float64() * 360.0
	s := 0.7 + rng.Float64()*0.3
	v := 0.7 + rng.Float64()*0.3
	return fromColorful(colorful.Hsv(h, s, v))
}
