package desk

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// BorderChars holds the eight glyphs used to draw a box border.
// It is a value type; the With* methods return modified copies.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// WithTop returns a copy with a new top edge glyph.
func (b BorderChars) WithTop(r rune) BorderChars { b.Top = r; return b }

// WithBottom returns a copy with a new bottom edge glyph.
func (b BorderChars) WithBottom(r rune) BorderChars { b.Bottom = r; return b }

// WithLeft returns a copy with a new left edge glyph.
func (b BorderChars) WithLeft(r rune) BorderChars { b.Left = r; return b }

// WithRight returns a copy with a new right edge glyph.
func (b BorderChars) WithRight(r rune) BorderChars { b.Right = r; return b }

// WithHorizontal sets both the top and bottom edge glyphs.
func (b BorderChars) WithHorizontal(r rune) BorderChars {
	b.Top, b.Bottom = r, r
	return b
}

// WithVertical sets both the left and right edge glyphs.
func (b BorderChars) WithVertical(r rune) BorderChars {
	b.Left, b.Right = r, r
	return b
}

// WithCorners sets the four corner glyphs, clockwise from top-left.
func (b BorderChars) WithCorners(topLeft, topRight, bottomRight, bottomLeft rune) BorderChars {
	b.TopLeft, b.TopRight, b.BottomRight, b.BottomLeft = topLeft, topRight, bottomRight, bottomLeft
	return b
}

// IsZero reports whether no glyphs are set. A zero border is not drawn.
func (b BorderChars) IsZero() bool {
	return b == BorderChars{}
}

// BorderFromLipgloss converts a lipgloss border table into BorderChars,
// taking the first rune of each side. Empty sides become spaces.
func BorderFromLipgloss(lb lipgloss.Border) BorderChars {
	first := func(s string) rune {
		if s == "" {
			return ' '
		}
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}
	return BorderChars{
		TopLeft:     first(lb.TopLeft),
		Top:         first(lb.Top),
		TopRight:    first(lb.TopRight),
		Left:        first(lb.Left),
		Right:       first(lb.Right),
		BottomLeft:  first(lb.BottomLeft),
		Bottom:      first(lb.Bottom),
		BottomRight: first(lb.BottomRight),
	}
}

// Border presets.
var (
	BorderSingle  = BorderFromLipgloss(lipgloss.NormalBorder())
	BorderRounded = BorderFromLipgloss(lipgloss.RoundedBorder())
	BorderDouble  = BorderFromLipgloss(lipgloss.DoubleBorder())
	BorderThick   = BorderFromLipgloss(lipgloss.ThickBorder())
	BorderBlock   = BorderFromLipgloss(lipgloss.BlockBorder())
	BorderASCII   = BorderFromLipgloss(lipgloss.ASCIIBorder())
	BorderHidden  = BorderFromLipgloss(lipgloss.HiddenBorder())
	BorderNone    = BorderChars{}
)

var bordersByName = map[string]BorderChars{
	"single":  BorderSingle,
	"normal":  BorderSingle,
	"rounded": BorderRounded,
	"double":  BorderDouble,
	"thick":   BorderThick,
	"block":   BorderBlock,
	"ascii":   BorderASCII,
	"hidden":  BorderHidden,
	"none":    BorderNone,
}

// BorderByName looks up a preset by its style-sheet token ("single",
// "rounded", "double", "thick", "block", "ascii", "hidden", "none").
func BorderByName(name string) (BorderChars, bool) {
	b, ok := bordersByName[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}
