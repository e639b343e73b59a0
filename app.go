package desk

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
)

// ErrAppFinished is returned by Run on an App that has already run.
var ErrAppFinished = errors.New("desk: app already finished")

// AppState is the lifecycle state of an App.
type AppState int32

const (
	// StateStopped is the state of a new App that has not run yet.
	StateStopped AppState = iota
	// StateRunning is the state while Run is executing.
	StateRunning
	// StateFinished is the state after Run returned. An App cannot restart.
	StateFinished
)

func (s AppState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("AppState(%d)", int32(s))
}

const defaultFrameDuration = time.Second / 60

// App owns the terminal, the event reader and the desktop, and drives the
// read, dispatch, repaint, sleep loop.
type App struct {
	terminal Terminal
	reader   EventReader
	buffer   *Buffer
	desktop  *Desktop

	state atomic.Int32
	quit  atomic.Bool
	dirty atomic.Bool

	frameDuration time.Duration
	altScreen     bool
	quitKeys      []KeyPattern
	sleep         func(time.Duration)
	desktopOpts   []DesktopOption
	config        *Config
	styles        *StyleSheet

	rawMode      bool
	inAltScreen  bool
	cursorHidden bool
	readerClosed bool
}

// NewApp creates an App on the process's terminal. It fails with
// ErrNotTerminal when stdin or stdout is not a terminal.
func NewApp(opts ...AppOption) (*App, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) || !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, ErrNotTerminal
	}
	reader, err := NewEventReader(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("create event reader: %w", err)
	}
	app, err := NewAppWithBackend(NewANSITerminal(os.Stdout, os.Stdin), reader, opts...)
	if err != nil {
		reader.Close()
		return nil, err
	}
	return app, nil
}

// NewAppWithBackend creates an App on an explicit terminal and reader.
// Nothing is written to the terminal until Run.
func NewAppWithBackend(term Terminal, reader EventReader, opts ...AppOption) (*App, error) {
	if term == nil || reader == nil {
		return nil, errors.New("desk: nil terminal or reader")
	}
	a := &App{
		terminal:      term,
		reader:        reader,
		frameDuration: defaultFrameDuration,
		altScreen:     true,
		quitKeys:      []KeyPattern{{Key: KeyCtrlQ}},
		sleep:         time.Sleep,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	w, h := term.Size()
	a.buffer = NewBuffer(w, h)
	a.desktop = NewDesktop(NewRect(0, 0, w, h), a.desktopOpts...)
	a.desktop.SetHost(a)
	a.dirty.Store(true)
	return a, nil
}

// Desktop returns the app's root desktop.
func (a *App) Desktop() *Desktop { return a.desktop }

// State returns the app's lifecycle state.
func (a *App) State() AppState { return AppState(a.state.Load()) }

// Config returns the configuration applied with WithConfig, or nil.
func (a *App) Config() *Config { return a.config }

// StyleSheet returns the style sheet applied with WithStyleSheet, or nil.
func (a *App) StyleSheet() *StyleSheet { return a.styles }

// Invalidate requests a repaint on the next frame. It is safe to call from
// any goroutine, and calls made during one frame coalesce.
func (a *App) Invalidate() { a.dirty.Store(true) }

// Stop asks Run to return. The loop notices at the top of its next
// iteration. Safe to call from any goroutine, including event handlers.
func (a *App) Stop() { a.quit.Store(true) }

// NewWindow creates a window whose geometry and border come from the style
// sheet classes, falling back to the configured default border. Without a
// style sheet the window covers the desktop.
func (a *App) NewWindow(title string, classes ...string) *Window {
	rules := NewRules()
	if a.styles != nil {
		rules = a.styles.Rules(classes...)
	}
	var opts []WindowOption
	if a.config != nil {
		opts = append(opts, WithClosable(a.config.Window.Closable))
		if !rules.Has("border") {
			if b, ok := BorderByName(a.config.Window.Border); ok {
				opts = append(opts, WithBorder(b))
			}
		}
	}
	return NewStyledWindow(title, rules, opts...)
}
