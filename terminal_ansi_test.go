package desk

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestANSI() (*ANSITerminal, *bytes.Buffer) {
	var out bytes.Buffer
	return NewANSITerminalWithCaps(&out, strings.NewReader(""), Capabilities{Colors: ColorTrue}), &out
}

func TestANSITerminal_Flush(t *testing.T) {
	term, out := newTestANSI()
	term.Flush([]CellChange{
		{X: 0, Y: 0, Cell: NewCell('a', NewStyle())},
		{X: 1, Y: 0, Cell: NewCell('b', NewStyle())},
		{X: 3, Y: 0, Cell: NewCell('c', NewStyle().Bold())},
		{X: 0, Y: 1, Cell: NewCell('世', NewStyle())},
		{X: 1, Y: 1, Cell: Cell{Width: 0}},
	})

	want := "\x1b[1;1Hab" +
		"\x1b[1;4H\x1b[0;1mc" +
		"\x1b[2;1H\x1b[0m世"
	if got := out.String(); got != want {
		t.Errorf("Flush wrote %q, want %q", got, want)
	}
}

func TestANSITerminal_FlushKeepsStyleAcrossCalls(t *testing.T) {
	term, out := newTestANSI()
	bold := NewStyle().Bold()
	term.Flush([]CellChange{{X: 0, Y: 0, Cell: NewCell('a', bold)}})
	out.Reset()

	term.Flush([]CellChange{{X: 5, Y: 2, Cell: NewCell('b', bold)}})
	if got, want := out.String(), "\x1b[3;6Hb"; got != want {
		t.Errorf("second Flush wrote %q, want %q", got, want)
	}

	term.Clear()
	out.Reset()
	term.Flush([]CellChange{{X: 0, Y: 0, Cell: NewCell('c', NewStyle())}})
	if got, want := out.String(), "\x1b[1;1Hc"; got != want {
		t.Errorf("Flush after Clear wrote %q, want %q", got, want)
	}
}

func TestANSITerminal_FlushEmpty(t *testing.T) {
	term, out := newTestANSI()
	term.Flush(nil)
	if out.Len() != 0 {
		t.Errorf("empty Flush wrote %q", out.String())
	}
}

func TestANSITerminal_Sequences(t *testing.T) {
	type tc struct {
		call func(*ANSITerminal)
		want string
	}

	tests := map[string]tc{
		"clear":       {call: (*ANSITerminal).Clear, want: "\x1b[0m\x1b[2J\x1b[1;1H"},
		"hide cursor": {call: (*ANSITerminal).HideCursor, want: "\x1b[?25l"},
		"show cursor": {call: (*ANSITerminal).ShowCursor, want: "\x1b[?25h"},
		"alt screen":  {call: (*ANSITerminal).EnterAltScreen, want: "\x1b[?1049h"},
		"main screen": {call: (*ANSITerminal).ExitAltScreen, want: "\x1b[0m\x1b[?1049l"},
		"cursor":      {call: func(t *ANSITerminal) { t.SetCursor(2, 3) }, want: "\x1b[4;3H"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term, out := newTestANSI()
			tt.call(term)
			if got := out.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestANSITerminal_NotATerminal(t *testing.T) {
	term, _ := newTestANSI()

	if err := term.EnterRawMode(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("EnterRawMode() = %v, want ErrNotTerminal", err)
	}
	if err := term.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode() without raw mode = %v, want nil", err)
	}
	if w, h := term.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %dx%d, want 80x24", w, h)
	}
	if got := term.Caps().Colors; got != ColorTrue {
		t.Errorf("Caps().Colors = %v, want ColorTrue", got)
	}
}
