package desk

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the terminal buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds
// the rune, the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a new Cell with its display width taken from go-runewidth.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// blankCell is the value of a cleared cell.
var blankCell = Cell{Rune: ' ', Width: 1}

// IsContinuation returns true if this cell is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}

// RuneWidth returns the number of cells r occupies: 2 for wide characters,
// 1 for everything else (control and zero-width runes still take a cell).
func RuneWidth(r rune) int {
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// TruncateString shortens s to at most width cells, ending with tail when it
// had to cut. An empty string is returned for non-positive widths.
func TruncateString(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, tail)
}
