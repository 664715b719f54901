package terminal

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// DefaultWidth is assumed when the terminal width cannot be determined.
const DefaultWidth = 80

// Writer drives a single output stream with buffered ANSI sequences.
//
// All mutating operations append to an internal buffer; a write failure on
// the underlying stream is sticky and surfaces on Flush. The design assumes
// single-writer access to the stream.
type Writer struct {
	w    *bufio.Writer
	file *os.File // non-nil when the underlying stream is a real terminal file
}

// New returns a Writer over w. When w is an *os.File (e.g. os.Stdout) the
// Writer can query the real terminal width.
func New(w io.Writer) *Writer {
	t := &Writer{w: bufio.NewWriterSize(w, 4096)}
	if f, ok := w.(*os.File); ok {
		t.file = f
	}
	return t
}

// Stdout returns a Writer over standard output.
func Stdout() *Writer {
	return New(os.Stdout)
}

// WriteString appends literal text to the output buffer.
func (t *Writer) WriteString(s string) {
	t.w.WriteString(s)
}

// WriteRune appends a single rune to the output buffer.
func (t *Writer) WriteRune(r rune) {
	t.w.WriteRune(r)
}

// Flush writes buffered output to the stream. Any prior write failure is
// reported here and aborts the caller's remaining frames.
func (t *Writer) Flush() error {
	if err := t.w.Flush(); err != nil {
		return errors.Wrap(err, "terminal write")
	}
	return nil
}

// HideCursor makes the cursor invisible. Callers pair it with ShowCursor;
// WithHiddenCursor enforces the pairing on every exit path.
func (t *Writer) HideCursor() {
	t.w.Write(csiCursorHide)
}

// ShowCursor restores cursor visibility.
func (t *Writer) ShowCursor() {
	t.w.Write(csiCursorShow)
}

// ClearScreen clears the screen and homes the cursor.
func (t *Writer) ClearScreen() {
	t.w.Write(csiClear)
}

// ClearLine erases the current line without moving the cursor.
func (t *Writer) ClearLine() {
	t.w.Write(csiClearLine)
}

// CarriageReturn moves the cursor to the start of the current line.
func (t *Writer) CarriageReturn() {
	t.w.WriteByte('\r')
}

// CursorUp moves the cursor up n rows.
func (t *Writer) CursorUp(n int) {
	writeCursorUp(t.w, n)
}

// MoveToColumn moves the cursor to the 1-indexed column.
func (t *Writer) MoveToColumn(col int) {
	if col < 1 {
		col = 1
	}
	writeCursorColumn(t.w, col)
}

// Reset clears all SGR attributes.
func (t *Writer) Reset() {
	t.w.Write(csiReset)
}

// SetTitle sets the terminal window title via OSC 0.
func (t *Writer) SetTitle(title string) {
	t.w.Write(oscTitle)
	t.w.WriteString(title)
	t.w.Write(oscTitleEnd)
}

// Width reports the terminal width in columns, or DefaultWidth when the
// stream is not a terminal or the size cannot be determined.
func (t *Writer) Width() int {
	if t.file == nil {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(t.file.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// WithHiddenCursor runs fn with the cursor hidden and guarantees the cursor
// is shown again on every exit path, including fn errors. The show sequence
// is flushed best-effort so a mid-animation write failure does not leave the
// user's terminal without a cursor.
func (t *Writer) WithHiddenCursor(fn func() error) error {
	t.HideCursor()
	defer func() {
		t.ShowCursor()
		t.Flush()
	}()
	return fn()
}
