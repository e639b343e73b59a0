package desk

// Event is the base interface for everything the loop dispatches.
// Use a type switch to handle specific event types.
type Event interface {
	isEvent()
}

// KeyEvent is one decoded unit of keyboard input.
type KeyEvent struct {
	// Key is the logical key. Printable input is KeyRune or KeyText.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Text holds the characters of a KeyText event.
	Text string

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier

	// Raw is the undecoded input. It is always set by DecodeKey and is the
	// only payload of KeyUnknown events.
	Raw []byte
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is checks if the event matches a key with exactly the given modifiers.
// With no modifiers given only the key is compared.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// CtrlLetter recovers the lowercase letter of a Ctrl+letter press from its
// control byte (code + 96), so 0x17 yields 'w'. This also works for keys
// that share a control byte, e.g. Tab yields 'i'. Returns 0 otherwise.
func (e KeyEvent) CtrlLetter() rune {
	if len(e.Raw) == 1 && e.Raw[0] >= 1 && e.Raw[0] <= 26 {
		return rune(e.Raw[0]) + 96
	}
	if e.Key >= KeyCtrlA && e.Key <= KeyCtrlZ {
		return rune(e.Key-KeyCtrlA) + 'a'
	}
	return 0
}

// String describes the key for logs.
func (e KeyEvent) String() string {
	var s string
	switch e.Key {
	case KeyRune:
		s = string(e.Rune)
	case KeyText:
		s = "Text(" + e.Text + ")"
	default:
		s = e.Key.String()
	}
	if e.Mod != ModNone && !(e.Key >= KeyCtrlA && e.Key <= KeyCtrlZ) {
		s = e.Mod.String() + "+" + s
	}
	return s
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}
