package desk

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSITerminal implements Terminal with ANSI escape sequences written to
// out. Raw mode and size queries need in and out to be *os.File.
type ANSITerminal struct {
	out       io.Writer
	in        io.Reader
	caps      Capabilities
	lastStyle Style
	esc       *escBuilder
	saved     *term.State
}

// NewANSITerminal creates a terminal with detected capabilities.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	return NewANSITerminalWithCaps(out, in, DetectCapabilities())
}

// NewANSITerminalWithCaps creates a terminal with explicit capabilities.
func NewANSITerminalWithCaps(out io.Writer, in io.Reader, caps Capabilities) *ANSITerminal {
	return &ANSITerminal{
		out:  out,
		in:   in,
		caps: caps,
		esc:  newEscBuilder(4096),
	}
}

func fdOf(v any) (int, bool) {
	f, ok := v.(*os.File)
	if !ok {
		return -1, false
	}
	return int(f.Fd()), true
}

// Size returns the terminal dimensions, or 80x24 when unknown.
func (t *ANSITerminal) Size() (width, height int) {
	fd, ok := fdOf(t.out)
	if !ok {
		return 80, 24
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush writes changes, moving the cursor only when cells are not
// contiguous and emitting a style only when it differs from the last one.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	t.esc.Reset()
	nextX, lastY := -1, -1
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != nextX {
			t.esc.MoveTo(ch.X, ch.Y)
		}
		if !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style, t.caps)
			t.lastStyle = ch.Cell.Style
		}
		r := ch.Cell.Rune
		if r <= 0 {
			r = ' '
		}
		t.esc.WriteRune(r)
		nextX = ch.X + max(int(ch.Cell.Width), 1)
		lastY = ch.Y
	}
	t.out.Write(t.esc.Bytes())
}

func (t *ANSITerminal) write(build func(e *escBuilder)) {
	t.esc.Reset()
	build(t.esc)
	t.out.Write(t.esc.Bytes())
}

// Clear resets the style and clears the screen.
func (t *ANSITerminal) Clear() {
	t.write(func(e *escBuilder) {
		e.ResetStyle()
		e.ClearScreen()
		e.MoveTo(0, 0)
	})
	t.lastStyle = NewStyle()
}

// SetCursor moves the cursor to (x, y).
func (t *ANSITerminal) SetCursor(x, y int) {
	t.write(func(e *escBuilder) { e.MoveTo(x, y) })
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() { t.write((*escBuilder).HideCursor) }

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() { t.write((*escBuilder).ShowCursor) }

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() { t.write((*escBuilder).EnterAltScreen) }

// ExitAltScreen switches back to the main screen buffer and resets the style.
func (t *ANSITerminal) ExitAltScreen() {
	t.write(func(e *escBuilder) {
		e.ResetStyle()
		e.ExitAltScreen()
	})
}

// EnterRawMode saves the input terminal's mode and switches it to raw.
func (t *ANSITerminal) EnterRawMode() error {
	fd, ok := fdOf(t.in)
	if !ok || !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.saved = state
	return nil
}

// ExitRawMode restores the mode saved by EnterRawMode. It is a no-op if
// raw mode was never entered.
func (t *ANSITerminal) ExitRawMode() error {
	if t.saved == nil {
		return nil
	}
	fd, _ := fdOf(t.in)
	err := term.Restore(fd, t.saved)
	t.saved = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities { return t.caps }
