package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi          = []byte("\x1b[")
	csiReset     = []byte("\x1b[0m")
	csiClear     = []byte("\x1b[2J\x1b[H")
	csiClearLine = []byte("\x1b[2K")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// OSC window title: \x1b]0;<title>\x07
	oscTitle    = []byte("\x1b]0;")
	oscTitleEnd = []byte("\x07")
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorColumn writes cursor-to-column sequence (1-indexed CHA)
func writeCursorColumn(w *bufio.Writer, col int) {
	w.Write(csi)
	writeInt(w, col)
	w.WriteByte('G')
}

// writeCursorUp writes cursor up N rows
func writeCursorUp(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write([]byte("\x1b[A"))
		return
	}
	w.Write(csi)
	writeInt(w, n)
	w.WriteByte('A')
}
