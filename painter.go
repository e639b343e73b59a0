package desk

// Painter draws into a Buffer on behalf of one node.
//
// Coordinates passed to a Painter are local to the node's box: (0, 0) is the
// node's top-left cell. Every write is clipped to the painter's clip
// rectangle, so a child can never paint outside its ancestors' content areas.
type Painter struct {
	buf    *Buffer
	origin Point
	size   Rect
	clip   Rect
}

// NewPainter returns a painter covering the whole buffer.
func NewPainter(buf *Buffer) *Painter {
	return &Painter{buf: buf, size: buf.Rect(), clip: buf.Rect()}
}

// Sub returns a painter for the local rectangle r, clipped to both r and
// the receiver's clip area.
func (p *Painter) Sub(r Rect) *Painter {
	abs := r.Translate(p.origin.X, p.origin.Y)
	return &Painter{
		buf:    p.buf,
		origin: Point{X: abs.X, Y: abs.Y},
		size:   NewRect(0, 0, r.Width, r.Height),
		clip:   p.clip.Intersect(abs),
	}
}

// Bounds returns the painter's area in local coordinates.
func (p *Painter) Bounds() Rect { return p.size }

// Width returns the painter's width in cells.
func (p *Painter) Width() int { return p.size.Width }

// Height returns the painter's height in cells.
func (p *Painter) Height() int { return p.size.Height }

// Clip returns the absolute clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// SetRune writes one rune at local (x, y).
func (p *Painter) SetRune(x, y int, r rune, style Style) {
	ax, ay := x+p.origin.X, y+p.origin.Y
	if !p.clip.Contains(ax, ay) {
		return
	}
	if RuneWidth(r) == 2 && !p.clip.Contains(ax+1, ay) {
		r = ' '
	}
	p.buf.SetRune(ax, ay, r, style)
}

// SetString writes s at local (x, y) without wrapping and returns the width written.
func (p *Painter) SetString(x, y int, s string, style Style) int {
	return p.buf.SetStringClipped(x+p.origin.X, y+p.origin.Y, s, style, p.clip)
}

// Fill paints the local rectangle r with ch.
func (p *Painter) Fill(r Rect, ch rune, style Style) {
	p.buf.Fill(r.Translate(p.origin.X, p.origin.Y).Intersect(p.clip), ch, style)
}

// Clear fills the painter's whole area with spaces in style.
func (p *Painter) Clear(style Style) {
	p.Fill(p.size, ' ', style)
}

// DrawBorder draws chars around the edge of the local rectangle r.
// Rectangles smaller than 2x2 are left untouched.
func (p *Painter) DrawBorder(r Rect, chars BorderChars, style Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	p.SetRune(r.X, r.Y, chars.TopLeft, style)
	p.SetRune(right, r.Y, chars.TopRight, style)
	p.SetRune(r.X, bottom, chars.BottomLeft, style)
	p.SetRune(right, bottom, chars.BottomRight, style)

	for x := r.X + 1; x < right; x++ {
		p.SetRune(x, r.Y, chars.Top, style)
		p.SetRune(x, bottom, chars.Bottom, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		p.SetRune(r.X, y, chars.Left, style)
		p.SetRune(right, y, chars.Right, style)
	}
}

// Clipped returns a painter with the same origin whose clip area is further
// restricted to the local rectangle r.
func (p *Painter) Clipped(r Rect) *Painter {
	return &Painter{
		buf:    p.buf,
		origin: p.origin,
		size:   p.size,
		clip:   p.clip.Intersect(r.Translate(p.origin.X, p.origin.Y)),
	}
}
