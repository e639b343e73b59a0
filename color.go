package desk

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color represents a terminal color with support for default, ANSI 256, and true color.
// Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
// Indices 0-7 are the standard colors, 8-15 their bright variants.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB" into an RGB Color.
func HexColor(hex string) (Color, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index of an ANSI color, or 0 for any other kind.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		return 0
	}
	return c.r
}

// RGB returns the components of a true color. Other kinds are converted
// through ToRGBValues.
func (c Color) RGB() (r, g, b uint8) {
	return c.ToRGBValues()
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorANSI:
		return c.r == other.r
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b
	}
	return true
}

// ToANSI approximates an RGB color to the nearest ANSI 256 palette entry,
// choosing between the 6x6x6 cube (16-231) and the grayscale ramp (232-255).
// Returns the color unchanged if it's already ANSI or default.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}

	cube := ANSIColor(uint8(16 + 36*cubeIndex(c.r) + 6*cubeIndex(c.g) + cubeIndex(c.b)))

	avg := (int(c.r) + int(c.g) + int(c.b)) / 3
	grayIdx := min(max((avg-8+5)/10, 0), 23)
	gray := ANSIColor(uint8(232 + grayIdx))

	target := toColorful(c)
	if target.DistanceRgb(toColorful(gray)) < target.DistanceRgb(toColorful(cube)) {
		return gray
	}
	return cube
}

// cubeIndex maps a channel value to the nearest of the cube levels
// 0, 95, 135, 175, 215, 255.
func cubeIndex(v uint8) int {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return min((int(v)-35)/40, 5)
}

func toColorful(c Color) colorful.Color {
	r, g, b := c.ToRGBValues()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// Bright ANSI colors (high-intensity variants).
var (
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI colors are approximated; the default color reports black.
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			idx -= 16
			return cubeLevel(idx / 36), cubeLevel((idx % 36) / 6), cubeLevel(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

func cubeLevel(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}

var namedColors = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
	"gray":    BrightBlack,
	"grey":    BrightBlack,
}

// ParseColor converts a color token into a Color.
//
// Accepted tokens: "default", the eight color names ("red"), bright variants
// ("bright-red", "bright_red", "brightred"), palette indices ("0".."255"),
// "#RGB", "#RRGGBB" and "rgb(r,g,b)". Matching is case-insensitive.
func ParseColor(token string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	switch {
	case s == "" || s == "default" || s == "none":
		return DefaultColor(), nil
	case strings.HasPrefix(s, "#"):
		return HexColor(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4 : len(s)-1])
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return Color{}, fmt.Errorf("palette index %d out of range", n)
		}
		return ANSIColor(uint8(n)), nil
	}

	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	for _, prefix := range []string{"bright-", "bright_", "bright"} {
		if name, ok := strings.CutPrefix(s, prefix); ok {
			if c, ok := namedColors[name]; ok && c.r < 8 {
				return ANSIColor(c.r + 8), nil
			}
		}
	}
	return Color{}, fmt.Errorf("unknown color %q", token)
}

func parseRGBFunc(args string) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("rgb() needs 3 components, got %d", len(parts))
	}
	var rgb [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("rgb() component %q out of range", p)
		}
		rgb[i] = uint8(n)
	}
	return RGBColor(rgb[0], rgb[1], rgb[2]), nil
}
