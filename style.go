package desk

import "strings"

// Attr represents text attributes as a bitfield.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

var attrNames = map[string]Attr{
	"bold":          AttrBold,
	"dim":           AttrDim,
	"italic":        AttrItalic,
	"underline":     AttrUnderline,
	"blink":         AttrBlink,
	"reverse":       AttrReverse,
	"strikethrough": AttrStrikethrough,
}

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling (no attributes, default colors).
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns a new Style with default colors and no attributes.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a new Style with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Dim returns a new Style with the dim attribute set.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Underline returns a new Style with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a new Style with the reverse attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// With returns a new Style with the given attributes added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// StyleFromRules reads paint properties from rules on top of base.
//
// Recognised properties: "fg"/"color" and "bg"/"background" (color tokens,
// see ParseColor), boolean attribute flags ("bold", "underline", ...), and
// "attrs", a space-separated list of attribute names. Unknown tokens are
// ignored.
func StyleFromRules(rules StyleRules, base Style) Style {
	s := base
	for _, key := range []string{"color", "fg"} {
		if tok := rules.String(key, ""); tok != "" {
			if c, err := ParseColor(tok); err == nil {
				s.Fg = c
			}
		}
	}
	for _, key := range []string{"background", "bg"} {
		if tok := rules.String(key, ""); tok != "" {
			if c, err := ParseColor(tok); err == nil {
				s.Bg = c
			}
		}
	}
	for name, attr := range attrNames {
		if !rules.Has(name) {
			continue
		}
		if rules.Bool(name, false) {
			s.Attrs |= attr
		} else {
			s.Attrs &^= attr
		}
	}
	for _, name := range strings.Fields(rules.String("attrs", "")) {
		s.Attrs |= attrNames[strings.ToLower(name)]
	}
	return s
}
