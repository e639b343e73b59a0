package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners creates a Rect spanning two corner cells given in any order.
// Both corners are inside the result, so (0,0)-(0,0) is a 1x1 rectangle.
func RectFromCorners(x1, y1, x2, y2 int) Rect {
	return Rect{
		X:      min(x1, x2),
		Y:      min(y1, y2),
		Width:  abs(x2-x1) + 1,
		Height: abs(y2-y1) + 1,
	}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the cell at the center of the rectangle (rounded toward the origin).
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// MoveTo returns a new Rect with its origin at (x, y) and the same size.
func (r Rect) MoveTo(x, y int) Rect {
	return Rect{X: x, Y: y, Width: r.Width, Height: r.Height}
}

// Resize returns a new Rect with the same origin and the given size.
// Sizes below one cell are clamped to one.
func (r Rect) Resize(width, height int) Rect {
	return Rect{X: r.X, Y: r.Y, Width: atLeastOne(width), Height: atLeastOne(height)}
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
// The result is not clamped; use Shrink for a rectangle that stays drawable.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Left - edges.Right,
		Height: r.Height - edges.Top - edges.Bottom,
	}
}

// Shrink is Inset with the resulting width and height clamped to at least one cell.
func (r Rect) Shrink(edges Edges) Rect {
	in := r.Inset(edges)
	in.Width = atLeastOne(in.Width)
	in.Height = atLeastOne(in.Height)
	return in
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Clamp constrains a point to be within the rectangle bounds.
// Returns the clamped (x, y) coordinates.
func (r Rect) Clamp(x, y int) (int, int) {
	if r.IsEmpty() {
		return r.X, r.Y
	}
	x = min(max(x, r.X), r.Right()-1)
	y = min(max(y, r.Y), r.Bottom()-1)
	return x, y
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
