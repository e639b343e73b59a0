// Package layout implements the box-model resolver for terminal UIs.
//
// It turns an ordered, CSS-like property bag ([Rules]) into a concrete
// [Rect] relative to a parent rectangle. Supported properties are width and
// height (cells, percentages or auto), top/left/right/bottom anchoring, and
// margin/padding with CSS shorthand expansion. Types are re-exported through
// the root desk package for public consumption.
//
// The main entry point is [Resolve]. It never fails: missing or malformed
// properties fall back to documented defaults and derived sizes are clamped
// to at least one cell.
package layout
