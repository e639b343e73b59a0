package layout

// Property names understood by Resolve and ContentRect.
const (
	PropWidth   = "width"
	PropHeight  = "height"
	PropTop     = "top"
	PropLeft    = "left"
	PropRight   = "right"
	PropBottom  = "bottom"
	PropMargin  = "margin"
	PropPadding = "padding"
)

// Resolve turns rules into a rectangle inside parent.
//
// The result is expressed in the same coordinate space as parent: its origin
// is parent's origin plus the top/left offsets plus the leading margins.
// Offsets may be fixed or a percentage of the parent's size. When
// "right" is present the width is parent.Width - left - right and any
// explicit width is ignored; "bottom" does the same for height. Margins are
// removed after sizing. Padding is not applied here (see ContentRect).
// Width and height are clamped to at least one cell.
func Resolve(rules Rules, parent Rect) Rect {
	left := offset(rules, PropLeft, parent.Width)
	top := offset(rules, PropTop, parent.Height)

	var width, height int
	if rules.Has(PropRight) {
		width = parent.Width - left - offset(rules, PropRight, parent.Width)
	} else {
		width = rules.Value(PropWidth, Auto()).Resolve(parent.Width)
	}
	if rules.Has(PropBottom) {
		height = parent.Height - top - offset(rules, PropBottom, parent.Height)
	} else {
		height = rules.Value(PropHeight, Auto()).Resolve(parent.Height)
	}

	margin := rules.Edges(PropMargin, Edges{})
	box := Rect{
		X:      parent.X + left + margin.Left,
		Y:      parent.Y + top + margin.Top,
		Width:  width - margin.Horizontal(),
		Height: height - margin.Vertical(),
	}
	box.Width = atLeastOne(box.Width)
	box.Height = atLeastOne(box.Height)
	return box
}

// offset reads an edge offset. "auto" and unreadable values count as zero.
func offset(rules Rules, key string, available int) int {
	v := rules.Value(key, Fixed(0))
	if v.IsAuto() {
		return 0
	}
	return v.Resolve(available)
}

// ContentRect returns the drawable area of a box of the given size after
// padding, in the box's own coordinates (origin at 0,0).
func ContentRect(rules Rules, width, height int) Rect {
	return Rect{Width: width, Height: height}.Shrink(rules.Edges(PropPadding, Edges{}))
}
