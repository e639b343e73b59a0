package layout

import (
	"strconv"
	"strings"
)

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Add returns the side-by-side sum of two Edges.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// ParseEdges converts a margin/padding property value into Edges.
//
// Integers and floats apply to all four sides. Strings hold one to four
// space-separated integers expanded the CSS way:
//
//	"1"       -> all sides 1
//	"1 2"     -> top/bottom 1, right/left 2
//	"1 2 3"   -> top 1, right/left 2, bottom 3
//	"1 2 3 4" -> top 1, right 2, bottom 3, left 4
//
// The second result is false when the value cannot be interpreted.
func ParseEdges(v any) (Edges, bool) {
	switch val := v.(type) {
	case Edges:
		return val, true
	case int:
		return EdgeAll(val), true
	case int64:
		return EdgeAll(int(val)), true
	case float64:
		return EdgeAll(int(val)), true
	case string:
		return parseEdgeShorthand(val)
	}
	return Edges{}, false
}

func parseEdgeShorthand(s string) (Edges, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Edges{}, false
	}

	n := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Edges{}, false
		}
		n[i] = v
	}

	switch len(n) {
	case 1:
		return EdgeAll(n[0]), true
	case 2:
		return EdgeSymmetric(n[0], n[1]), true
	case 3:
		return EdgeTRBL(n[0], n[1], n[2], n[1]), true
	default:
		return EdgeTRBL(n[0], n[1], n[2], n[3]), true
	}
}
