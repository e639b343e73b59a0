package desk

import (
	"fmt"
	"strings"
)

// Key identifies a logical key after decoding.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune is a single printable character; see KeyEvent.Rune.
	KeyRune
	// KeyText is several printable characters delivered in one read
	// (typically a paste); see KeyEvent.Text.
	KeyText
	// KeyUnknown is input that could not be decoded; see KeyEvent.Raw.
	KeyUnknown

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyCtrlA through KeyCtrlZ are the control bytes 0x01-0x1a that do not
	// have a dedicated key (Tab, Enter and Backspace take 0x09, 0x0a/0x0d
	// and 0x08).
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// KeyCtrlSpace represents Ctrl+Space (NUL, 0x00).
	KeyCtrlSpace
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyText:      "Text",
	KeyUnknown:   "Unknown",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrlSpace: "Ctrl+Space",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch {
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", k-KeyF1+1)
	case k >= KeyCtrlA && k <= KeyCtrlZ:
		return "Ctrl+" + string(rune('A'+k-KeyCtrlA))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ctrlKey returns the Key for Ctrl+letter, where letter is 'a'..'z'.
func ctrlKey(letter rune) Key {
	return KeyCtrlA + Key(letter-'a')
}

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModCtrl represents the Ctrl modifier.
	ModCtrl Modifier = 1 << iota
	// ModAlt represents the Alt modifier.
	ModAlt
	// ModShift represents the Shift modifier.
	ModShift
)

// Has checks if the modifier set includes the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns a human-readable representation of the modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// ParseKeyName parses a binding name such as "ctrl+q", "shift+f6", "esc",
// "alt+x" or "q" into a KeyPattern. Names are case-insensitive.
func ParseKeyName(name string) (KeyPattern, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return KeyPattern{}, fmt.Errorf("empty key name %q", name)
	}

	var mod Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.TrimSpace(p) {
		case "ctrl", "control", "c":
			mod |= ModCtrl
		case "alt", "meta", "m":
			mod |= ModAlt
		case "shift", "s":
			mod |= ModShift
		default:
			return KeyPattern{}, fmt.Errorf("unknown modifier %q in %q", p, name)
		}
	}

	base := strings.TrimSpace(parts[len(parts)-1])
	runes := []rune(base)

	if len(runes) == 1 {
		r := runes[0]
		if mod == ModCtrl && r >= 'a' && r <= 'z' {
			return KeyPattern{Key: ctrlKey(r)}, nil
		}
		if mod == ModCtrl && r == ' ' {
			return KeyPattern{Key: KeyCtrlSpace}, nil
		}
		return KeyPattern{Rune: r, Mod: mod, RequireNoMods: mod == ModNone}, nil
	}

	if base == "space" {
		if mod == ModCtrl {
			return KeyPattern{Key: KeyCtrlSpace}, nil
		}
		return KeyPattern{Rune: ' ', Mod: mod, RequireNoMods: mod == ModNone}, nil
	}

	key, ok := namedKeys[base]
	if !ok {
		return KeyPattern{}, fmt.Errorf("unknown key %q", name)
	}
	if key == KeyTab && mod == ModShift {
		return KeyPattern{Key: KeyBacktab}, nil
	}
	return KeyPattern{Key: key, Mod: mod, RequireNoMods: mod == ModNone}, nil
}

var namedKeys = func() map[string]Key {
	m := map[string]Key{
		"esc":       KeyEscape,
		"escape":    KeyEscape,
		"enter":     KeyEnter,
		"return":    KeyEnter,
		"tab":       KeyTab,
		"backtab":   KeyBacktab,
		"backspace": KeyBackspace,
		"delete":    KeyDelete,
		"del":       KeyDelete,
		"insert":    KeyInsert,
		"up":        KeyUp,
		"down":      KeyDown,
		"left":      KeyLeft,
		"right":     KeyRight,
		"home":      KeyHome,
		"end":       KeyEnd,
		"pageup":    KeyPageUp,
		"pgup":      KeyPageUp,
		"pagedown":  KeyPageDown,
		"pgdn":      KeyPageDown,
	}
	for i := range 12 {
		m[fmt.Sprintf("f%d", i+1)] = KeyF1 + Key(i)
	}
	return m
}()
