package desk

// KeyMap is an ordered list of key bindings. The first match wins.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler. When Action is set it
// runs instead of Handler, and a false result lets later bindings and the
// caller see the key as unhandled.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Action  func(KeyEvent) bool
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyCtrlW, KeyF6, ...), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// Matches reports whether ke satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != ModNone {
		return false
	}
	if p.Mod != ModNone && ke.Mod != p.Mod {
		return false
	}

	switch {
	case p.AnyRune:
		return ke.Key == KeyRune
	case p.Rune != 0:
		return ke.Key == KeyRune && ke.Rune == p.Rune
	case p.Key != KeyNone:
		return ke.Key == p.Key
	}
	return false
}

// OnKey creates a binding for a specific key, any modifiers.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnKeyMod creates a binding for a key pressed with exactly mod.
func OnKeyMod(key Key, mod Modifier, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key, Mod: mod}, Handler: handler}
}

// OnRune creates a binding for a specific printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler}
}

// Handle runs the first binding matching ke and reports whether it handled
// the key.
func (km KeyMap) Handle(ke KeyEvent) bool {
	for _, b := range km {
		if b.Pattern.Matches(ke) {
			if b.Action != nil {
				if b.Action(ke) {
					return true
				}
				continue
			}
			if b.Handler != nil {
				b.Handler(ke)
			}
			return true
		}
	}
	return false
}
