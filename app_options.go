package desk

import (
	"errors"
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate. Default is 60 fps. Valid range
// is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithFrameDuration sets the sleep between loop iterations directly.
func WithFrameDuration(d time.Duration) AppOption {
	return func(a *App) error {
		if d < 0 {
			return fmt.Errorf("frame duration must not be negative")
		}
		a.frameDuration = d
		return nil
	}
}

// WithAltScreen controls whether Run switches to the alternate screen.
// Enabled by default.
func WithAltScreen(enabled bool) AppOption {
	return func(a *App) error {
		a.altScreen = enabled
		return nil
	}
}

// WithQuitKeys replaces the keys that stop the app when nothing else
// handles them. Default is Ctrl+Q. No keys disables the shortcut.
func WithQuitKeys(keys ...KeyPattern) AppOption {
	return func(a *App) error {
		a.quitKeys = keys
		return nil
	}
}

// WithSleep replaces the function used to wait between frames.
func WithSleep(fn func(time.Duration)) AppOption {
	return func(a *App) error {
		if fn == nil {
			return errors.New("sleep function must not be nil")
		}
		a.sleep = fn
		return nil
	}
}

// WithDesktopOptions passes options to the app's desktop.
func WithDesktopOptions(opts ...DesktopOption) AppOption {
	return func(a *App) error {
		a.desktopOpts = append(a.desktopOpts, opts...)
		return nil
	}
}

// WithConfig applies a validated Config: frame rate, alternate screen, quit
// keys, desktop background, cascade step and window shortcuts.
func WithConfig(cfg *Config) AppOption {
	return func(a *App) error {
		if cfg == nil {
			return errors.New("config must not be nil")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := WithFrameRate(cfg.FrameRate)(a); err != nil {
			return err
		}
		a.altScreen = cfg.AltScreen

		quit, err := cfg.QuitPatterns()
		if err != nil {
			return err
		}
		a.quitKeys = quit

		opts, err := cfg.desktopOptions()
		if err != nil {
			return err
		}
		a.desktopOpts = append(a.desktopOpts, opts...)
		a.config = cfg
		return nil
	}
}

// WithStyleSheet makes the sheet's classes available to App.NewWindow.
func WithStyleSheet(s *StyleSheet) AppOption {
	return func(a *App) error {
		if s == nil {
			return errors.New("style sheet must not be nil")
		}
		a.styles = s
		return nil
	}
}
