package effects

import "time"

// Settings configures a single effect invocation. Each call receives its own
// value; effects never mutate it.
type Settings struct {
	Delay      time.Duration // pause between frames, 0 is legal (fastest frame rate)
	Iterations int           // repeat count for cyclic effects
	Width      int           // bar length for bar-style effects
}

// DefaultSettings returns the documented defaults: 50ms delay, 3 iterations,
// width 40.
func DefaultSettings() Settings {
	return Settings{
		Delay:      50 * time.Millisecond,
		Iterations: 3,
		Width:      40,
	}
}
