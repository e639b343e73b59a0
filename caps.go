package desk

import (
	"os"
	"strings"
)

// ColorDepth is how many colors a terminal can show.
type ColorDepth uint8

const (
	ColorNone ColorDepth = iota
	Color16
	Color256
	ColorTrue
)

// Capabilities describes what the output terminal supports.
type Capabilities struct {
	Colors    ColorDepth
	AltScreen bool
}

// DetectCapabilities inspects COLORTERM and TERM. It returns conservative
// defaults (16 colors, alt screen) when nothing more specific is known.
func DetectCapabilities() Capabilities {
	caps := Capabilities{Colors: Color16, AltScreen: true}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		caps.Colors = ColorTrue
		return caps
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{Colors: ColorNone}
	case strings.Contains(term, "truecolor") || strings.Contains(term, "direct"):
		caps.Colors = ColorTrue
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	}
	return caps
}
