package desk

import "unicode/utf8"

// DecodeKey turns the bytes of one input read into one logical key.
//
//   - "\r" and "\n" are Enter; a lone "\x1b" is Escape; 0x7f is Backspace.
//   - Control bytes 0x01-0x1a are Ctrl+letter keys (Tab and Backspace keep
//     their own keys).
//   - "ESC [ ... final" is a CSI sequence: arrows, Home/End, "n ~" editing
//     and function keys, xterm modifiers ("ESC [ 1 ; 5 A") and Backtab.
//   - "ESC O P..S" are F1-F4 (SS3); "ESC O A..D" are arrows.
//   - ESC followed by one printable rune is that rune with Alt.
//   - A single UTF-8 rune is KeyRune; several printable runes are KeyText.
//
// Anything else is reported as KeyUnknown. Raw always carries a copy of data.
func DecodeKey(data []byte) KeyEvent {
	if len(data) == 0 {
		return KeyEvent{}
	}
	ev := decodeKey(data)
	ev.Raw = append([]byte(nil), data...)
	return ev
}

func decodeKey(data []byte) KeyEvent {
	unknown := KeyEvent{Key: KeyUnknown}

	if data[0] == 0x1b {
		if len(data) == 1 {
			return KeyEvent{Key: KeyEscape}
		}
		switch data[1] {
		case '[':
			if key, mod, n := parseCSISequence(data); n == len(data) && key != KeyNone {
				return KeyEvent{Key: key, Mod: mod}
			}
			return unknown
		case 'O':
			if len(data) == 3 {
				if key := parseSS3(data[2]); key != KeyNone {
					return KeyEvent{Key: key}
				}
			}
			return unknown
		}
		rest := decodeKey(data[1:])
		if rest.Key == KeyRune || rest.Key == KeyEnter || rest.Key == KeyBackspace {
			rest.Mod |= ModAlt
			return rest
		}
		return unknown
	}

	if len(data) == 1 {
		return decodeByte(data[0])
	}
	if data[0] == '\r' && data[1] == '\n' && len(data) == 2 {
		return KeyEvent{Key: KeyEnter}
	}

	if !utf8.Valid(data) {
		return unknown
	}
	r, size := utf8.DecodeRune(data)
	if size == len(data) {
		return KeyEvent{Key: KeyRune, Rune: r}
	}
	for _, r := range string(data) {
		if r < 0x20 || r == 0x7f {
			return unknown
		}
	}
	return KeyEvent{Key: KeyText, Text: string(data)}
}

// decodeByte handles a single-byte read.
func decodeByte(b byte) KeyEvent {
	switch {
	case b == '\r' || b == '\n':
		return KeyEvent{Key: KeyEnter}
	case b == '\t':
		return KeyEvent{Key: KeyTab}
	case b == 0x08 || b == 0x7f:
		return KeyEvent{Key: KeyBackspace}
	case b == 0x00:
		return KeyEvent{Key: KeyCtrlSpace, Mod: ModCtrl}
	case b >= 0x01 && b <= 0x1a:
		return KeyEvent{Key: ctrlKey(rune(b) + 96), Mod: ModCtrl}
	case b < 0x20:
		return KeyEvent{Key: KeyUnknown}
	case b < 0x80:
		return KeyEvent{Key: KeyRune, Rune: rune(b)}
	}
	return KeyEvent{Key: KeyUnknown}
}

// parseCSISequence parses "ESC [ params final" at the start of data.
// Returns the key, modifier and bytes consumed, or consumed 0 on failure.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	current, has := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			current = current*10 + int(b-'0')
			has = true
		case b == ';':
			params = append(params, current)
			current, has = 0, false
		case b >= 0x40 && b <= 0x7e:
			if has {
				params = append(params, current)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, 0
		}
	}
	return KeyNone, ModNone, 0
}

// tildeKeys maps the numeric parameter of "ESC [ n ~" to a key.
var tildeKeys = map[int]Key{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	7: KeyHome, 8: KeyEnd,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case 'P', 'Q', 'R', 'S':
		return KeyF1 + Key(final-'P'), mod
	case 'Z':
		return KeyBacktab, ModNone
	case '~':
		if len(params) > 0 {
			if key, ok := tildeKeys[params[0]]; ok {
				return key, mod
			}
		}
	}
	return KeyNone, ModNone
}

func parseSS3(b byte) Key {
	switch b {
	case 'P', 'Q', 'R', 'S':
		return KeyF1 + Key(b-'P')
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter:
// 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0).
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}
	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
