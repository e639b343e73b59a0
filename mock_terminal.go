package desk

import (
	"sync"
	"time"
)

// MockTerminal is an in-memory Terminal for tests. Flushed cells land in a
// Buffer so screens can be compared as text.
type MockTerminal struct {
	screen       *Buffer
	cursorX      int
	cursorY      int
	cursorHidden bool
	inRawMode    bool
	inAltScreen  bool
	caps         Capabilities
	rawErr       error

	flushes int
	calls   []string
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{
		screen: NewBuffer(width, height),
		caps:   Capabilities{Colors: ColorTrue, AltScreen: true},
	}
}

func (m *MockTerminal) record(call string) { m.calls = append(m.calls, call) }

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.screen.Width(), m.screen.Height()
}

// Flush applies changes to the mock screen.
func (m *MockTerminal) Flush(changes []CellChange) {
	m.flushes++
	for _, ch := range changes {
		m.screen.SetCell(ch.X, ch.Y, ch.Cell)
	}
}

// Clear blanks the mock screen and homes the cursor.
func (m *MockTerminal) Clear() {
	m.record("clear")
	m.screen.Clear()
	m.cursorX, m.cursorY = 0, 0
}

// SetCursor moves the cursor.
func (m *MockTerminal) SetCursor(x, y int) { m.cursorX, m.cursorY = x, y }

// HideCursor hides the cursor.
func (m *MockTerminal) HideCursor() {
	m.record("hide-cursor")
	m.cursorHidden = true
}

// ShowCursor shows the cursor.
func (m *MockTerminal) ShowCursor() {
	m.record("show-cursor")
	m.cursorHidden = false
}

// EnterRawMode simulates raw mode, failing with the error set by FailRawMode.
func (m *MockTerminal) EnterRawMode() error {
	m.record("raw")
	if m.rawErr != nil {
		return m.rawErr
	}
	m.inRawMode = true
	return nil
}

// ExitRawMode simulates restoring the terminal mode.
func (m *MockTerminal) ExitRawMode() error {
	m.record("restore")
	m.inRawMode = false
	return nil
}

// EnterAltScreen simulates switching to the alternate screen.
func (m *MockTerminal) EnterAltScreen() {
	m.record("alt-screen")
	m.inAltScreen = true
}

// ExitAltScreen simulates switching back to the main screen.
func (m *MockTerminal) ExitAltScreen() {
	m.record("main-screen")
	m.inAltScreen = false
}

// Caps returns the mock's capabilities.
func (m *MockTerminal) Caps() Capabilities { return m.caps }

// FailRawMode makes EnterRawMode return err.
func (m *MockTerminal) FailRawMode(err error) { m.rawErr = err }

// Resize changes the mock screen size, discarding its content.
func (m *MockTerminal) Resize(width, height int) { m.screen.Resize(width, height) }

// CellAt returns the cell on the mock screen at (x, y).
func (m *MockTerminal) CellAt(x, y int) Cell { return m.screen.Cell(x, y) }

// String renders the mock screen as text.
func (m *MockTerminal) String() string { return m.screen.String() }

// StringTrimmed renders the mock screen with trailing spaces removed.
func (m *MockTerminal) StringTrimmed() string { return m.screen.StringTrimmed() }

// Cursor returns the cursor position.
func (m *MockTerminal) Cursor() (x, y int) { return m.cursorX, m.cursorY }

// IsCursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool { return m.cursorHidden }

// IsInRawMode reports whether raw mode is active.
func (m *MockTerminal) IsInRawMode() bool { return m.inRawMode }

// IsInAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) IsInAltScreen() bool { return m.inAltScreen }

// Flushes returns how many times Flush was called.
func (m *MockTerminal) Flushes() int { return m.flushes }

// Calls returns the recorded mode-changing calls in order.
func (m *MockTerminal) Calls() []string { return append([]string(nil), m.calls...) }

// MockEventReader replays a fixed list of events.
type MockEventReader struct {
	mu     sync.Mutex
	events []Event
	index  int
	closed bool
	// OnDrain is called once each time PollEvent finds no events left.
	OnDrain func()
}

var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a reader that returns events in order.
func NewMockEventReader(events ...Event) *MockEventReader {
	return &MockEventReader{events: events}
}

// PollEvent returns the next queued event without waiting.
func (r *MockEventReader) PollEvent(time.Duration) (Event, bool, error) {
	r.mu.Lock()
	if r.index >= len(r.events) {
		drain := r.OnDrain
		r.mu.Unlock()
		if drain != nil {
			drain()
		}
		return nil, false, nil
	}
	ev := r.events[r.index]
	r.index++
	r.mu.Unlock()
	return ev, true, nil
}

// AddEvents queues more events.
func (r *MockEventReader) AddEvents(events ...Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
}

// Remaining returns the number of queued events not yet returned.
func (r *MockEventReader) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events) - r.index
}

// Closed reports whether Close was called.
func (r *MockEventReader) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Close marks the reader closed.
func (r *MockEventReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
