package desk

import (
	"fmt"

	"github.com/grindlemire/go-desk/internal/debug"
)

// Run sets up the terminal and loops until Stop is called or an unhandled
// quit key arrives. Each iteration reads at most one event without
// blocking, dispatches it, repaints once if anything changed and then
// sleeps for one frame. The terminal is restored on every exit path,
// including errors and panics. An App runs once; a second Run returns
// ErrAppFinished.
func (a *App) Run() (err error) {
	if !a.state.CompareAndSwap(int32(StateStopped), int32(StateRunning)) {
		return ErrAppFinished
	}
	debug.Log("app: running")

	defer func() {
		if terr := a.teardown(); terr != nil && err == nil {
			err = terr
		}
		a.state.Store(int32(StateFinished))
		debug.Log("app: finished err=%v", err)
	}()

	if err := a.setup(); err != nil {
		return err
	}

	for !a.quit.Load() {
		if _, err := a.Step(); err != nil {
			return err
		}
		if a.quit.Load() {
			break
		}
		a.sleep(a.frameDuration)
	}
	return nil
}

// Step runs one loop iteration without sleeping: one non-blocking read,
// one dispatch and at most one repaint. It reports whether a repaint
// happened.
func (a *App) Step() (bool, error) {
	ev, ok, err := a.reader.PollEvent(0)
	if err != nil {
		return false, fmt.Errorf("read event: %w", err)
	}
	if ok {
		a.handle(ev)
	}
	return a.repaint(), nil
}

func (a *App) handle(ev Event) {
	switch e := ev.(type) {
	case ResizeEvent:
		a.resize(e.Width, e.Height)
	case KeyEvent:
		if a.desktop.Dispatch(e) {
			return
		}
		for _, p := range a.quitKeys {
			if p.Matches(e) {
				debug.Log("app: quit key %s", e)
				a.Stop()
				return
			}
		}
		debug.Log("app: unhandled key %s", e)
	default:
		a.desktop.Dispatch(ev)
	}
}

func (a *App) resize(width, height int) {
	if width == a.buffer.Width() && height == a.buffer.Height() {
		return
	}
	debug.Log("app: resize %dx%d", width, height)
	a.buffer.Resize(width, height)
	a.desktop.Resize(width, height)
	a.Invalidate()
}

// repaint redraws the whole desktop into the back buffer and flushes only
// the cells that changed since the last frame.
func (a *App) repaint() bool {
	if !a.dirty.Swap(false) {
		return false
	}
	a.buffer.Clear()
	a.desktop.Render(a.buffer)
	a.terminal.Flush(a.buffer.Diff())
	a.buffer.Swap()
	return true
}
