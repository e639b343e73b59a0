package desk

import (
	"errors"
	"time"
)

// ErrNotTerminal is returned when the process is not attached to a terminal.
var ErrNotTerminal = errors.New("desk: not a terminal")

// Terminal is the output side of the platform boundary.
// Implementations: ANSITerminal, TcellTerminal, MockTerminal.
type Terminal interface {
	// Size returns the terminal dimensions in cells.
	Size() (width, height int)

	// Flush writes cell changes, expected in row-major order.
	Flush(changes []CellChange)

	// Clear clears the whole screen.
	Clear()

	// SetCursor moves the cursor (0-indexed).
	SetCursor(x, y int)

	HideCursor()
	ShowCursor()

	// EnterRawMode saves the current terminal mode and switches to raw
	// input. ExitRawMode restores the saved mode.
	EnterRawMode() error
	ExitRawMode() error

	EnterAltScreen()
	ExitAltScreen()

	// Caps returns the terminal's capabilities.
	Caps() Capabilities
}

// EventReader is the input side of the platform boundary.
type EventReader interface {
	// PollEvent returns the next event, waiting at most timeout. A zero
	// timeout never blocks. ok is false when nothing was available.
	PollEvent(timeout time.Duration) (ev Event, ok bool, err error)

	// Close releases resources.
	Close() error
}
