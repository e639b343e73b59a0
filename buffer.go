package desk

import "strings"

// Buffer is a double-buffered 2D grid of cells.
// Writes go to the back buffer; Diff reports what changed since the last Swap.
type Buffer struct {
	front  []Cell
	back   []Cell
	width  int
	height int
}

// CellChange represents a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a blank buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the back-buffer cell at (x, y), or the zero Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.back[i]
}

// SetCell stores c at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.back[i] = c
	}
}

// SetRune writes r at (x, y), keeping wide characters consistent: any wide
// character the write overlaps is blanked, and a wide rune that would not
// fit in the last column is replaced by a space.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}

	w := RuneWidth(r)
	b.breakWide(x, y)
	if w == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, Cell{Rune: ' ', Style: style, Width: 1})
			return
		}
		b.breakWide(x+1, y)
		b.SetCell(x, y, Cell{Rune: r, Style: style, Width: 2})
		b.SetCell(x+1, y, Cell{Style: style, Width: 0})
		return
	}
	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: 1})
}

// breakWide blanks the wide character covering (x, y), if any.
func (b *Buffer) breakWide(x, y int) {
	if b.idx(x, y) < 0 {
		return
	}
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation():
		b.SetCell(x-1, y, blankCell)
		b.SetCell(x, y, blankCell)
	case c.Width == 2:
		b.SetCell(x, y, blankCell)
		b.SetCell(x+1, y, blankCell)
	}
}

// SetString writes s starting at (x, y) without wrapping.
// Returns the display width actually written.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// SetStringClipped writes s starting at (x, y), dropping cells outside clip.
// Wide characters that would straddle the clip edge are skipped.
// Returns the display width actually written.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	for _, r := range s {
		if x >= clip.Right() {
			break
		}
		w := RuneWidth(r)
		if x >= clip.X && x+w <= clip.Right() {
			b.SetRune(x, y, r, style)
			written += w
		}
		x += w
	}
	return written
}

// Fill paints every cell of rect (clipped to the buffer) with r.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	w := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x += w {
			if w == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				break
			}
			b.SetRune(x, y, r, style)
		}
	}
}

// Clear blanks the whole back buffer.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blankCell
	}
}

// Diff returns the cells that changed between front and back buffers in
// row-major order.
func (b *Buffer) Diff() []CellChange {
	var changes []CellChange
	for i := range b.back {
		if !b.back[i].Equal(b.front[i]) {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap copies the back buffer to the front buffer.
// Call this after flushing changes to the terminal.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Invalidate forgets what is on screen so the next Diff reports every cell.
func (b *Buffer) Invalidate() {
	for i := range b.front {
		b.front[i] = Cell{Rune: -1}
	}
}

// Resize changes the buffer dimensions. Both buffers are blanked and the
// front buffer is invalidated, forcing a full repaint.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	b.width, b.height = width, height
	b.front = make([]Cell, width*height)
	b.back = make([]Cell, width*height)
	b.Clear()
	b.Invalidate()
}

// String renders the back buffer as text, one line per row, skipping
// continuation cells.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.row(y)
	}
	return strings.Join(lines, "\n")
}

// StringTrimmed is String with trailing spaces removed from each line.
func (b *Buffer) StringTrimmed() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = strings.TrimRight(b.row(y), " ")
	}
	return strings.Join(lines, "\n")
}

func (b *Buffer) row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.back[y*b.width+x]
		switch {
		case c.IsContinuation():
		case c.Rune <= 0:
			sb.WriteByte(' ')
		default:
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
