package desk

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder accumulates terminal escape sequences into a reusable byte slice.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() { e.buf = e.buf[:0] }

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte { return e.buf }

func (e *escBuilder) csi(params string, final byte) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, params...)
	e.buf = append(e.buf, final)
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo positions the cursor. x and y are 0-indexed; the sequence is
// "ESC [ row ; col H" with 1-indexed values.
func (e *escBuilder) MoveTo(x, y int) {
	e.buf = append(e.buf, '\x1b', '[')
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

func (e *escBuilder) ClearScreen()    { e.csi("2", 'J') }
func (e *escBuilder) HideCursor()     { e.csi("?25", 'l') }
func (e *escBuilder) ShowCursor()     { e.csi("?25", 'h') }
func (e *escBuilder) EnterAltScreen() { e.csi("?1049", 'h') }
func (e *escBuilder) ExitAltScreen()  { e.csi("?1049", 'l') }
func (e *escBuilder) ResetStyle()     { e.csi("0", 'm') }

var sgrAttrs = []struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
	{AttrStrikethrough, '9'},
}

// SetStyle emits a single SGR sequence that resets and then applies s,
// degrading colors the terminal cannot show.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	e.buf = append(e.buf, '\x1b', '[', '0')
	for _, a := range sgrAttrs {
		if s.HasAttr(a.attr) {
			e.buf = append(e.buf, ';', a.code)
		}
	}
	e.appendColor(s.Fg, true, caps)
	e.appendColor(s.Bg, false, caps)
	e.buf = append(e.buf, 'm')
}

// appendColor writes ";30".."97" style codes for the 16 base colors,
// ";38;5;n" for the 256 palette and ";38;2;r;g;b" for true color
// (48 instead of 38 for backgrounds). RGB falls back to the 256 palette.
func (e *escBuilder) appendColor(c Color, fg bool, caps Capabilities) {
	if c.IsDefault() || caps.Colors == ColorNone {
		return
	}

	base := 48
	if fg {
		base = 38
	}

	if c.Type() == ColorRGB && caps.Colors < ColorTrue {
		c = c.ToANSI()
	}

	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8:
			e.buf = append(e.buf, ';')
			e.writeInt(base - 8 + idx)
		case idx < 16:
			e.buf = append(e.buf, ';')
			e.writeInt(base + 52 + idx - 8)
		case caps.Colors >= Color256:
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ";5;"...)
			e.writeInt(idx)
		}
	case ColorRGB:
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ";2;"...)
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// WriteRune appends a UTF-8 encoded rune.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// WriteString appends s verbatim.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
