package desk

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal is a Terminal and EventReader backed by a tcell.Screen.
// It works wherever tcell does, including platforms without the unix
// stdin reader. The screen is initialized on creation and finalized by
// ExitRawMode or Close, whichever runs first.
type TcellTerminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	done    chan struct{}
	fini    sync.Once
	cursorX int
	cursorY int
}

var (
	_ Terminal    = (*TcellTerminal)(nil)
	_ EventReader = (*TcellTerminal)(nil)
)

// NewTcellBackend creates a tcell screen on the process's terminal.
func NewTcellBackend() (*TcellTerminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create tcell screen: %w", err)
	}
	return NewTcellTerminal(s)
}

// NewTcellTerminal initializes s and starts reading its events.
func NewTcellTerminal(s tcell.Screen) (*TcellTerminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init tcell screen: %w", err)
	}
	t := &TcellTerminal{
		screen: s,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *TcellTerminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Screen returns the underlying tcell screen.
func (t *TcellTerminal) Screen() tcell.Screen { return t.screen }

// Size returns the screen size.
func (t *TcellTerminal) Size() (width, height int) { return t.screen.Size() }

// Flush writes changes to the screen and shows them.
func (t *TcellTerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}
		r := ch.Cell.Rune
		if r <= 0 {
			r = ' '
		}
		t.screen.SetContent(ch.X, ch.Y, r, nil, tcellStyle(ch.Cell.Style))
	}
	t.screen.Show()
}

// Clear clears the screen.
func (t *TcellTerminal) Clear() {
	t.screen.Clear()
	t.screen.Show()
}

// SetCursor moves the cursor and shows it.
func (t *TcellTerminal) SetCursor(x, y int) {
	t.cursorX, t.cursorY = x, y
	t.screen.ShowCursor(x, y)
}

// HideCursor hides the cursor.
func (t *TcellTerminal) HideCursor() { t.screen.HideCursor() }

// ShowCursor shows the cursor at its last position.
func (t *TcellTerminal) ShowCursor() { t.screen.ShowCursor(t.cursorX, t.cursorY) }

// EnterRawMode is a no-op; tcell owns the terminal mode from Init.
func (t *TcellTerminal) EnterRawMode() error { return nil }

// ExitRawMode finalizes the screen, restoring the terminal.
func (t *TcellTerminal) ExitRawMode() error {
	t.finalize()
	return nil
}

// EnterAltScreen is a no-op; tcell always uses the alternate screen.
func (t *TcellTerminal) EnterAltScreen() {}

// ExitAltScreen is a no-op; Fini leaves the alternate screen.
func (t *TcellTerminal) ExitAltScreen() {}

// Caps maps the screen's color count to a ColorDepth.
func (t *TcellTerminal) Caps() Capabilities {
	var depth ColorDepth
	switch n := t.screen.Colors(); {
	case n >= 1<<24:
		depth = ColorTrue
	case n >= 256:
		depth = Color256
	case n >= 8:
		depth = Color16
	default:
		depth = ColorNone
	}
	return Capabilities{Colors: depth, AltScreen: true}
}

// PollEvent returns the next key or resize event. Other tcell events are
// skipped.
func (t *TcellTerminal) PollEvent(timeout time.Duration) (Event, bool, error) {
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		var (
			ev   tcell.Event
			open bool
		)
		if timeout == 0 {
			select {
			case ev, open = <-t.events:
			default:
				return nil, false, nil
			}
		} else {
			select {
			case ev, open = <-t.events:
			case <-deadline:
				return nil, false, nil
			}
		}
		if !open {
			return nil, false, nil
		}
		if out, ok := fromTcellEvent(ev); ok {
			return out, true, nil
		}
	}
}

// Close finalizes the screen and stops the event pump.
func (t *TcellTerminal) Close() error {
	t.finalize()
	return nil
}

func (t *TcellTerminal) finalize() {
	t.fini.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

func fromTcellEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return fromTcellKey(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent{Width: w, Height: h}, true
	}
	return nil, false
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyCtrlSpace:  KeyCtrlSpace,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func fromTcellKey(e *tcell.EventKey) KeyEvent {
	mod := fromTcellMod(e.Modifiers())
	if e.Key() == tcell.KeyRune {
		return KeyEvent{Key: KeyRune, Rune: e.Rune(), Mod: mod}
	}
	if k, ok := tcellKeys[e.Key()]; ok {
		return KeyEvent{Key: k, Mod: mod}
	}
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		letter := 'a' + rune(e.Key()-tcell.KeyCtrlA)
		return KeyEvent{Key: ctrlKey(letter), Mod: mod | ModCtrl}
	}
	return KeyEvent{Key: KeyUnknown, Mod: mod}
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	return mod
}

func tcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func tcellStyle(s Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg)).
		Bold(s.HasAttr(AttrBold)).
		Dim(s.HasAttr(AttrDim)).
		Italic(s.HasAttr(AttrItalic)).
		Underline(s.HasAttr(AttrUnderline)).
		Blink(s.HasAttr(AttrBlink)).
		Reverse(s.HasAttr(AttrReverse)).
		StrikeThrough(s.HasAttr(AttrStrikethrough))
}
