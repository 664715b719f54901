// Package effects implements timed, frame-by-frame terminal text animations:
// typewriter, loading bar, spinner, wiggle, matrix decode, rainbow, slide-in.
//
// Every effect is synchronous and blocking: the calling goroutine is occupied
// for the full animation duration. Animated output is driven by in-place
// redraws (carriage return / clear line) rather than scrolling. Effects that
// redraw in place hide the cursor for the duration and restore it on every
// exit path.
//
// Cancellation is cooperative: each effect checks its context once per frame
// before the delay and returns ctx.Err() after restoring cursor state.
package effects
