// Package terminal provides direct ANSI terminal control for one-directional
// presentation output.
//
// Features:
//   - Cursor visibility, positioning, and line/screen clearing
//   - Window title via OSC 0
//   - Terminal width query with a fixed fallback
//   - Color capability detection from the environment
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: xterm-compatible terminals.
package terminal
