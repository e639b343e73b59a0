package desk

import "github.com/grindlemire/go-desk/internal/layout"

// Geometry and style types re-exported from the layout engine.
type (
	// Rect is a rectangle of terminal cells.
	Rect = layout.Rect
	// Point is a cell coordinate.
	Point = layout.Point
	// Edges holds per-side values for margin, padding and insets.
	Edges = layout.Edges
	// Value is a size: fixed cells, a percentage, or auto.
	Value = layout.Value
	// StyleRules is an ordered, cascading property bag.
	StyleRules = layout.Rules
)

// Style property names understood by the resolver.
const (
	PropWidth   = layout.PropWidth
	PropHeight  = layout.PropHeight
	PropTop     = layout.PropTop
	PropLeft    = layout.PropLeft
	PropRight   = layout.PropRight
	PropBottom  = layout.PropBottom
	PropMargin  = layout.PropMargin
	PropPadding = layout.PropPadding
)

var (
	NewRect         = layout.NewRect
	RectFromCorners = layout.RectFromCorners
	EdgeAll         = layout.EdgeAll
	EdgeSymmetric   = layout.EdgeSymmetric
	EdgeTRBL        = layout.EdgeTRBL
	ParseEdges      = layout.ParseEdges
	Fixed           = layout.Fixed
	Percent         = layout.Percent
	Auto            = layout.Auto
	ParseValue      = layout.ParseValue
)

// NewRules builds StyleRules from alternating key/value arguments:
//
//	desk.NewRules("width", "50%", "left", 2, "margin", "1 2")
func NewRules(kv ...any) StyleRules {
	return layout.NewRules(kv...)
}

// Resolve turns rules into a rectangle inside parent. It never fails; see
// the layout package for the sizing rules.
func Resolve(rules StyleRules, parent Rect) Rect {
	return layout.Resolve(rules, parent)
}
