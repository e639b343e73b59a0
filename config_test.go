package desk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	type tc struct {
		yaml    string
		check   func(t *testing.T, cfg *Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty keeps defaults": {
			yaml: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.FrameRate != 60 || !cfg.AltScreen || cfg.Window.Border != "single" {
					t.Errorf("defaults not applied: %+v", cfg)
				}
			},
		},
		"partial override": {
			yaml: "frame_rate: 30\nwindow:\n  border: rounded\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.FrameRate != 30 {
					t.Errorf("FrameRate = %d, want 30", cfg.FrameRate)
				}
				if cfg.Window.Border != "rounded" || !cfg.Window.Closable {
					t.Errorf("Window = %+v, want rounded and closable", cfg.Window)
				}
				if cfg.Keys.NextWindow != "f6" {
					t.Errorf("Keys.NextWindow = %q, want the default", cfg.Keys.NextWindow)
				}
			},
		},
		"full": {
			yaml: `
frame_rate: 120
alt_screen: false
quit_keys: [ctrl+c, "q"]
desktop:
  background: "#102030"
  cascade_step: {x: 4, y: 2}
keys:
  next_window: ctrl+n
  prev_window: ""
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.AltScreen {
					t.Error("AltScreen = true, want false")
				}
				if got := cfg.Desktop.CascadeStep; got != (StepConfig{X: 4, Y: 2}) {
					t.Errorf("CascadeStep = %+v", got)
				}
				quit, err := cfg.QuitPatterns()
				if err != nil || len(quit) != 2 || quit[0].Key != KeyCtrlC || quit[1].Rune != 'q' {
					t.Errorf("QuitPatterns() = %+v, %v", quit, err)
				}
				if cfg.Keys.PrevWindow != "" {
					t.Errorf("PrevWindow = %q, want disabled", cfg.Keys.PrevWindow)
				}
			},
		},
		"unknown field":      {yaml: "frame_rates: 30\n", wantErr: "field frame_rates not found"},
		"frame rate":         {yaml: "frame_rate: 0\n", wantErr: "frame_rate"},
		"bad quit key":       {yaml: "quit_keys: [hyper+q]\n", wantErr: "quit_keys"},
		"bad background":     {yaml: "desktop:\n  background: plaid\n", wantErr: "desktop.background"},
		"negative step":      {yaml: "desktop:\n  cascade_step: {x: -1}\n", wantErr: "cascade_step"},
		"bad border":         {yaml: "window:\n  border: wavy\n", wantErr: "window.border"},
		"bad shortcut":       {yaml: "keys:\n  close_window: f99\n", wantErr: "keys.close_window"},
		"malformed document": {yaml: "frame_rate: [\n", wantErr: "failed to parse config"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseConfig(strings.NewReader(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseConfig() error = %v, want it to mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig() error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig(missing) error: %v", err)
	}
	if cfg.FrameRate != DefaultConfig().FrameRate {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("frame_rate: 24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.FrameRate != 24 {
		t.Errorf("FrameRate = %d, want 24", cfg.FrameRate)
	}

	if err := os.WriteFile(path, []byte("frame_rate: 999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("LoadConfig(invalid) error = %v, want it to name the file", err)
	}
}

func TestConfig_DesktopShortcuts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keys.NextWindow = "ctrl+n"
	cfg.Keys.CloseWindow = ""
	cfg.Desktop.Background = "blue"

	opts, err := cfg.desktopOptions()
	if err != nil {
		t.Fatal(err)
	}
	d := NewDesktop(NewRect(0, 0, 80, 24), opts...)
	one := NewWindow("one", NewRect(0, 0, 20, 10))
	two := NewWindow("two", NewRect(0, 0, 20, 10))
	d.AddWindow(one).AddWindow(two)

	if d.Dispatch(key(KeyF6)) {
		t.Error("F6 still bound after the config replaced it")
	}
	if !d.Dispatch(DecodeKey([]byte{0x0e})) || d.ActiveWindow() != one {
		t.Errorf("ctrl+n did not cycle to the next window")
	}
	if d.Dispatch(DecodeKey([]byte{0x17})) {
		t.Error("ctrl+w still closes although the shortcut is disabled")
	}
	if !d.Dispatch(KeyEvent{Key: KeyF6, Mod: ModShift}) || d.ActiveWindow() != two {
		t.Errorf("shift+f6 did not cycle back")
	}

	buf := NewBuffer(80, 24)
	d.Render(buf)
	if got := buf.Cell(79, 23).Style.Bg; !got.Equal(Blue) {
		t.Errorf("background = %+v, want blue", got)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/home/tester", ".config", "desk", "config.yaml"); path != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", path, want)
	}
}
