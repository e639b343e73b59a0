package desk

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-desk/internal/debug"
)

// setup puts the terminal into raw mode and prepares the screen. Steps that
// succeeded are recorded so teardown undoes exactly those.
func (a *App) setup() error {
	if err := a.terminal.EnterRawMode(); err != nil {
		return fmt.Errorf("setup terminal: %w", err)
	}
	a.rawMode = true

	if a.altScreen {
		a.terminal.EnterAltScreen()
		a.inAltScreen = true
	}
	a.terminal.HideCursor()
	a.cursorHidden = true
	a.terminal.Clear()

	a.buffer.Invalidate()
	a.Invalidate()
	return nil
}

// teardown restores the terminal and releases the reader.
func (a *App) teardown() error {
	var errs []error
	if a.cursorHidden {
		a.terminal.ShowCursor()
		a.cursorHidden = false
	}
	if a.inAltScreen {
		a.terminal.ExitAltScreen()
		a.inAltScreen = false
	}
	if a.rawMode {
		if err := a.terminal.ExitRawMode(); err != nil {
			errs = append(errs, err)
		}
		a.rawMode = false
	}
	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}
	debug.Log("app: terminal restored")
	return errors.Join(errs...)
}

// Close releases the event reader. Run calls it on exit; call it directly
// only for an App that never ran.
func (a *App) Close() error {
	if a.readerClosed {
		return nil
	}
	a.readerClosed = true
	if err := a.reader.Close(); err != nil {
		return fmt.Errorf("close reader: %w", err)
	}
	return nil
}
