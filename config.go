package desk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable application configuration.
//
//	frame_rate: 30
//	alt_screen: true
//	quit_keys: [ctrl+q]
//	desktop:
//	  background: blue
//	  cascade_step: {x: 2, y: 1}
//	window:
//	  border: rounded
//	  closable: true
//	keys:
//	  next_window: f6
//	  prev_window: shift+f6
//	  close_window: ctrl+w
type Config struct {
	FrameRate int           `yaml:"frame_rate"`
	AltScreen bool          `yaml:"alt_screen"`
	QuitKeys  []string      `yaml:"quit_keys"`
	Desktop   DesktopConfig `yaml:"desktop"`
	Window    WindowConfig  `yaml:"window"`
	Keys      KeysConfig    `yaml:"keys"`
}

// DesktopConfig configures the root desktop.
type DesktopConfig struct {
	Background  string     `yaml:"background"`
	CascadeStep StepConfig `yaml:"cascade_step"`
}

// StepConfig is a cell offset.
type StepConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// WindowConfig holds defaults for windows created through App.NewWindow.
type WindowConfig struct {
	Border   string `yaml:"border"`
	Closable bool   `yaml:"closable"`
}

// KeysConfig names the desktop shortcuts. An empty name disables the
// shortcut.
type KeysConfig struct {
	NextWindow  string `yaml:"next_window"`
	PrevWindow  string `yaml:"prev_window"`
	CloseWindow string `yaml:"close_window"`
}

// DefaultConfigPath returns ~/.config/desk/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "desk", "config.yaml"), nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		FrameRate: 60,
		AltScreen: true,
		QuitKeys:  []string{"ctrl+q"},
		Desktop: DesktopConfig{
			Background:  "default",
			CascadeStep: StepConfig{X: 2, Y: 1},
		},
		Window: WindowConfig{
			Border:   "single",
			Closable: true,
		},
		Keys: KeysConfig{
			NextWindow:  "f6",
			PrevWindow:  "shift+f6",
			CloseWindow: "ctrl+w",
		},
	}
}

// LoadConfig reads path over the defaults and validates the result. A
// missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML from r over the defaults and validates it.
// Unknown fields are rejected.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges, names and key bindings.
func (c *Config) Validate() error {
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("frame_rate must be between 1 and 240, got %d", c.FrameRate)
	}
	if _, err := c.QuitPatterns(); err != nil {
		return err
	}
	if _, err := ParseColor(c.Desktop.Background); err != nil {
		return fmt.Errorf("desktop.background: %w", err)
	}
	if c.Desktop.CascadeStep.X < 0 || c.Desktop.CascadeStep.Y < 0 {
		return fmt.Errorf("desktop.cascade_step must not be negative")
	}
	if _, ok := BorderByName(c.Window.Border); !ok {
		return fmt.Errorf("window.border: unknown border %q", c.Window.Border)
	}
	for field, name := range map[string]string{
		"keys.next_window":  c.Keys.NextWindow,
		"keys.prev_window":  c.Keys.PrevWindow,
		"keys.close_window": c.Keys.CloseWindow,
	} {
		if name == "" {
			continue
		}
		if _, err := ParseKeyName(name); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}
	return nil
}

// QuitPatterns parses QuitKeys.
func (c *Config) QuitPatterns() ([]KeyPattern, error) {
	patterns := make([]KeyPattern, 0, len(c.QuitKeys))
	for _, name := range c.QuitKeys {
		p, err := ParseKeyName(name)
		if err != nil {
			return nil, fmt.Errorf("quit_keys: %w", err)
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// desktopOptions turns the desktop and keys sections into DesktopOptions.
// The configured shortcuts replace the built-in ones.
func (c *Config) desktopOptions() ([]DesktopOption, error) {
	bg, err := ParseColor(c.Desktop.Background)
	if err != nil {
		return nil, fmt.Errorf("desktop.background: %w", err)
	}
	opts := []DesktopOption{
		WithCascadeStep(c.Desktop.CascadeStep.X, c.Desktop.CascadeStep.Y),
		WithoutDefaultBindings(),
	}
	if !bg.IsDefault() {
		opts = append(opts, WithBackground(NewStyle().Background(bg)))
	}

	bind := func(name string, action func(d *Desktop) bool) error {
		if name == "" {
			return nil
		}
		p, err := ParseKeyName(name)
		if err != nil {
			return err
		}
		opts = append(opts, func(d *Desktop) {
			d.Bind(KeyBinding{Pattern: p, Action: func(KeyEvent) bool { return action(d) }})
		})
		return nil
	}
	if err := bind(c.Keys.NextWindow, func(d *Desktop) bool { return d.NextWindow() }); err != nil {
		return nil, err
	}
	if err := bind(c.Keys.PrevWindow, func(d *Desktop) bool { return d.PrevWindow() }); err != nil {
		return nil, err
	}
	if err := bind(c.Keys.CloseWindow, func(d *Desktop) bool { return d.CloseActiveWindow() }); err != nil {
		return nil, err
	}
	return opts, nil
}
