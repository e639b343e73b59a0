package layout

import "testing"

func TestRectFromCorners(t *testing.T) {
	type tc struct {
		x1, y1, x2, y2 int
		want           Rect
	}

	tests := map[string]tc{
		"top-left to bottom-right": {
			x1: 10, y1: 5, x2: 90, y2: 25,
			want: Rect{X: 10, Y: 5, Width: 81, Height: 21},
		},
		"bottom-right to top-left": {
			x1: 90, y1: 25, x2: 10, y2: 5,
			want: Rect{X: 10, Y: 5, Width: 81, Height: 21},
		},
		"mixed corners": {
			x1: 90, y1: 5, x2: 10, y2: 25,
			want: Rect{X: 10, Y: 5, Width: 81, Height: 21},
		},
		"single cell": {
			x1: 3, y1: 4, x2: 3, y2: 4,
			want: Rect{X: 3, Y: 4, Width: 1, Height: 1},
		},
		"negative coordinates": {
			x1: -2, y1: -2, x2: 2, y2: 0,
			want: Rect{X: -2, Y: -2, Width: 5, Height: 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := RectFromCorners(tt.x1, tt.y1, tt.x2, tt.y2)
			if got != tt.want {
				t.Errorf("RectFromCorners(%d, %d, %d, %d) = %+v, want %+v",
					tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
			}
		})
	}
}

func TestRectFromCorners_OrderIndependent(t *testing.T) {
	points := [][2]int{{0, 0}, {7, 3}, {-4, 9}, {12, -6}, {5, 5}}
	for _, a := range points {
		for _, b := range points {
			r1 := RectFromCorners(a[0], a[1], b[0], b[1])
			r2 := RectFromCorners(b[0], b[1], a[0], a[1])
			if r1 != r2 {
				t.Errorf("corners %v,%v: %+v != %+v", a, b, r1, r2)
			}
			if r1.Width < 1 || r1.Height < 1 {
				t.Errorf("corners %v,%v: size %dx%d, want >= 1", a, b, r1.Width, r1.Height)
			}
			if r1.X != min(a[0], b[0]) || r1.Right()-1 != max(a[0], b[0]) {
				t.Errorf("corners %v,%v: horizontal span [%d,%d)", a, b, r1.X, r1.Right())
			}
			if r1.Y != min(a[1], b[1]) || r1.Bottom()-1 != max(a[1], b[1]) {
				t.Errorf("corners %v,%v: vertical span [%d,%d)", a, b, r1.Y, r1.Bottom())
			}
		}
	}
}

func TestRect_RightBottom(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %d, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, want 60", r.Bottom())
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y int
		want bool
	}

	r := NewRect(10, 10, 20, 20)
	tests := map[string]tc{
		"inside":              {x: 15, y: 15, want: true},
		"top-left corner":     {x: 10, y: 10, want: true},
		"last cell":           {x: 29, y: 29, want: true},
		"right edge excluded": {x: 30, y: 15, want: false},
		"bottom excluded":     {x: 15, y: 30, want: false},
		"left of rect":        {x: 9, y: 15, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	type tc struct {
		other Rect
		want  bool
	}

	outer := NewRect(0, 0, 100, 100)
	tests := map[string]tc{
		"fully inside":    {other: NewRect(10, 10, 20, 20), want: true},
		"same rect":       {other: outer, want: true},
		"overhangs right": {other: NewRect(90, 10, 20, 20), want: false},
		"empty rect":      {other: NewRect(500, 500, 0, 0), want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.other); got != tt.want {
				t.Errorf("ContainsRect(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRect_MoveToResize(t *testing.T) {
	r := NewRect(1, 2, 3, 4)

	if got := r.MoveTo(7, 8); got != NewRect(7, 8, 3, 4) {
		t.Errorf("MoveTo(7, 8) = %+v", got)
	}
	if got := r.Resize(10, 0); got != NewRect(1, 2, 10, 1) {
		t.Errorf("Resize(10, 0) = %+v, want height clamped to 1", got)
	}
	if got := r.Resize(-5, -5); got.Width != 1 || got.Height != 1 {
		t.Errorf("Resize(-5, -5) = %+v, want 1x1", got)
	}
	if r != NewRect(1, 2, 3, 4) {
		t.Errorf("receiver mutated: %+v", r)
	}
}

func TestRect_InsetShrink(t *testing.T) {
	type tc struct {
		rect   Rect
		edges  Edges
		inset  Rect
		shrink Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:   NewRect(0, 0, 10, 10),
			edges:  EdgeAll(1),
			inset:  NewRect(1, 1, 8, 8),
			shrink: NewRect(1, 1, 8, 8),
		},
		"collapses": {
			rect:   NewRect(0, 0, 4, 4),
			edges:  EdgeAll(3),
			inset:  NewRect(3, 3, -2, -2),
			shrink: NewRect(3, 3, 1, 1),
		},
		"asymmetric": {
			rect:   NewRect(5, 5, 20, 10),
			edges:  EdgeTRBL(1, 2, 3, 4),
			inset:  NewRect(9, 6, 14, 6),
			shrink: NewRect(9, 6, 14, 6),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.inset {
				t.Errorf("Inset() = %+v, want %+v", got, tt.inset)
			}
			if got := tt.rect.Shrink(tt.edges); got != tt.shrink {
				t.Errorf("Shrink() = %+v, want %+v", got, tt.shrink)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlap": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
		},
		"touching edges": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: Rect{},
		},
		"contained": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 2, 3, 3),
			want: NewRect(2, 2, 3, 3),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
			if got := tt.a.Intersects(tt.b); got != !tt.want.IsEmpty() {
				t.Errorf("Intersects() = %v", got)
			}
		})
	}
}

func TestRect_UnionClampCenter(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	b := NewRect(10, 10, 5, 5)
	if got := a.Union(b); got != NewRect(0, 0, 15, 15) {
		t.Errorf("Union() = %+v", got)
	}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union(empty) = %+v, want %+v", got, a)
	}

	x, y := b.Clamp(0, 100)
	if x != 10 || y != 14 {
		t.Errorf("Clamp(0, 100) = (%d, %d), want (10, 14)", x, y)
	}

	if c := NewRect(10, 10, 11, 5).Center(); c != (Point{X: 15, Y: 12}) {
		t.Errorf("Center() = %+v", c)
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(Point{X: 1, Y: 1}); got != (Point{X: 4, Y: 5}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := p.Sub(Point{X: 3, Y: 4}); got != (Point{}) {
		t.Errorf("Sub() = %+v", got)
	}
	if !p.In(NewRect(0, 0, 4, 5)) {
		t.Error("In() = false, want true")
	}
}
