package desk

import "math"

// CalculateGrid returns the rows and columns of the most square grid that
// holds n windows: columns are the ceiling of sqrt(n).
func CalculateGrid(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = int(math.Ceil(float64(n) / float64(cols)))
	return rows, cols
}

// split divides total cells into n spans whose sizes differ by at most one,
// with the extra cells going to the leading spans. Spans are at least one
// cell wide.
func split(start, total, n int) (offsets, sizes []int) {
	offsets = make([]int, n)
	sizes = make([]int, n)
	base, extra := total/n, total%n
	pos := start
	for i := range n {
		size := base
		if i < extra {
			size++
		}
		offsets[i] = pos
		sizes[i] = max(size, 1)
		pos += size
	}
	return offsets, sizes
}

// TileRects splits area into n tiles. Horizontal tiling places windows side
// by side in one row; vertical tiling stacks them in one column. Tiles
// cover area exactly when it is large enough.
func TileRects(n int, area Rect, horizontal bool) []Rect {
	if n <= 0 {
		return nil
	}
	rects := make([]Rect, n)
	if horizontal {
		xs, ws := split(area.X, area.Width, n)
		for i := range rects {
			rects[i] = NewRect(xs[i], area.Y, ws[i], max(area.Height, 1))
		}
		return rects
	}
	ys, hs := split(area.Y, area.Height, n)
	for i := range rects {
		rects[i] = NewRect(area.X, ys[i], max(area.Width, 1), hs[i])
	}
	return rects
}

// GridRects arranges n windows in a CalculateGrid grid over area. A short
// last row is stretched so the grid has no holes.
func GridRects(n int, area Rect) []Rect {
	rows, cols := CalculateGrid(n)
	if rows == 0 {
		return nil
	}

	ys, hs := split(area.Y, area.Height, rows)
	rects := make([]Rect, 0, n)
	for row := range rows {
		inRow := min(cols, n-row*cols)
		xs, ws := split(area.X, area.Width, inRow)
		for col := range inRow {
			rects = append(rects, NewRect(xs[col], ys[row], ws[col], hs[row]))
		}
	}
	return rects
}

// CascadeRects stacks n equally sized windows diagonally from area's
// top-left corner, each offset by step from the previous one. Windows keep
// at least half of area; when the diagonal would leave area the cascade
// restarts from the corner.
func CascadeRects(n int, area Rect, step Point) []Rect {
	if n <= 0 {
		return nil
	}
	step.X, step.Y = max(step.X, 0), max(step.Y, 0)

	w := max(area.Width-(n-1)*step.X, area.Width/2, 1)
	h := max(area.Height-(n-1)*step.Y, area.Height/2, 1)

	slots := n
	if step.X > 0 {
		slots = min(slots, (area.Width-w)/step.X+1)
	}
	if step.Y > 0 {
		slots = min(slots, (area.Height-h)/step.Y+1)
	}
	slots = max(slots, 1)

	rects := make([]Rect, n)
	for i := range rects {
		k := i % slots
		rects[i] = NewRect(area.X+k*step.X, area.Y+k*step.Y, w, h)
	}
	return rects
}
