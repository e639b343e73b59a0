package desk

import "github.com/grindlemire/go-desk/internal/debug"

// Widget is the contract every element of the tree satisfies.
//
// Concrete widgets embed *Node and override Draw and HandleEvent. Draw
// paints the widget's own box (children are painted afterwards by the
// tree); HandleEvent is called only after the focused child declined the
// event and reports whether the widget consumed it. *Node is itself a
// Widget: an invisible container.
type Widget interface {
	Base() *Node
	Draw(p *Painter)
	HandleEvent(ev Event) bool
}

// Node is one element of the UI tree.
//
// A node owns its children and holds a lookup-only reference to its parent.
// Its geometry is expressed in the parent's box coordinates ((0, 0) is the
// parent's top-left cell); absolute positions are derived on demand.
// A node is created either with an explicit rectangle (NewNode) or with
// style rules resolved against the parent's content area (NewStyledNode).
type Node struct {
	self     Widget
	parent   *Node
	children []Widget

	name string

	rect   Rect
	rules  StyleRules
	styled bool
	stale  bool
	inset  Edges

	visible bool
	enabled bool
	focused bool

	paint    Style
	hasPaint bool

	host Host
}

// NodeOption configures a Node at construction.
type NodeOption func(*Node)

// WithName sets the node's name, used by FindChild.
func WithName(name string) NodeOption {
	return func(n *Node) { n.name = name }
}

// WithDisabled creates the node disabled. Disabled nodes cannot take focus
// and do not receive events.
func WithDisabled() NodeOption {
	return func(n *Node) { n.enabled = false }
}

// WithHidden creates the node hidden.
func WithHidden() NodeOption {
	return func(n *Node) { n.visible = false }
}

// WithPaint fills the node's box with style's background when drawn.
func WithPaint(style Style) NodeOption {
	return func(n *Node) {
		n.paint = style
		n.hasPaint = true
	}
}

func newNode(opts []NodeOption) *Node {
	n := &Node{visible: true, enabled: true}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewNode creates a node with an explicit rectangle in its parent's coordinates.
func NewNode(rect Rect, opts ...NodeOption) *Node {
	n := newNode(opts)
	n.rect = rect
	return n
}

// NewStyledNode creates a node whose rectangle is resolved from rules
// against its parent's content area. Paint properties in rules ("fg", "bg",
// "bold", ...) apply on top of any WithPaint style.
func NewStyledNode(rules StyleRules, opts ...NodeOption) *Node {
	n := newNode(opts)
	n.applyRules(rules)
	return n
}

func (n *Node) applyRules(rules StyleRules) {
	n.rules = rules.Clone()
	n.styled = true
	n.stale = true
	if hasPaintRules(rules) {
		n.paint = StyleFromRules(rules, n.paint)
		n.hasPaint = true
	}
}

func hasPaintRules(rules StyleRules) bool {
	for _, k := range []string{"fg", "bg", "color", "background"} {
		if rules.Has(k) {
			return true
		}
	}
	return false
}

// Base returns n. It lets *Node satisfy Widget and lets embedding widgets
// expose their node.
func (n *Node) Base() *Node { return n }

// Draw fills the box with the node's paint style, if it has one.
func (n *Node) Draw(p *Painter) {
	if n.hasPaint {
		p.Clear(n.paint)
	}
}

// HandleEvent declines every event. Widgets override it.
func (n *Node) HandleEvent(Event) bool { return false }

// bind records the outermost widget embedding n so tree operations call
// the widget's overrides.
func (n *Node) bind(w Widget) {
	n.self = w
}

func (n *Node) widget() Widget {
	if n.self != nil {
		return n.self
	}
	return n
}

// Widget returns the outermost widget wrapping this node (the node itself
// for plain nodes).
func (n *Node) Widget() Widget { return n.widget() }

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// SetName renames the node.
func (n *Node) SetName(name string) { n.name = name }

// Visible reports whether the node is drawn and can take focus.
func (n *Node) Visible() bool { return n.visible }

// SetVisible shows or hides the node. Hiding a node also blurs it.
func (n *Node) SetVisible(v bool) {
	if n.visible == v {
		return
	}
	n.visible = v
	if !v {
		n.focused = false
	}
	n.Invalidate()
}

// Enabled reports whether the node can take focus and receive events.
func (n *Node) Enabled() bool { return n.enabled }

// SetEnabled enables or disables the node. Disabling a node also blurs it.
func (n *Node) SetEnabled(v bool) {
	if n.enabled == v {
		return
	}
	n.enabled = v
	if !v {
		n.focused = false
	}
	n.Invalidate()
}

// Paint returns the node's fill style and whether one is set.
func (n *Node) Paint() (Style, bool) { return n.paint, n.hasPaint }

// SetPaint changes the fill style.
func (n *Node) SetPaint(s Style) {
	n.paint = s
	n.hasPaint = true
	n.Invalidate()
}

// Geometry returns the node's rectangle in its parent's coordinates.
// Styled nodes are resolved lazily whenever their rules or an ancestor's
// geometry changed since the last call.
func (n *Node) Geometry() Rect {
	if n.styled && n.stale {
		n.rect = Resolve(n.rules, n.parentContent())
		n.stale = false
	}
	return n.rect
}

func (n *Node) parentContent() Rect {
	if n.parent == nil {
		return Rect{}
	}
	return n.parent.ContentRect()
}

// SetGeometry places the node explicitly. The node stops being styled and
// styled descendants re-resolve against the new size.
func (n *Node) SetGeometry(r Rect) {
	n.rect = r
	n.styled = false
	n.stale = false
	n.markChildrenStale()
	n.Invalidate()
}

// SetStyle replaces the node's rules and re-resolves its geometry from them.
func (n *Node) SetStyle(rules StyleRules) {
	n.applyRules(rules)
	n.markChildrenStale()
	n.Invalidate()
}

// Style returns a copy of the node's rules. Explicitly placed nodes return
// whatever rules they were last styled with, if any.
func (n *Node) Style() StyleRules { return n.rules.Clone() }

// Styled reports whether the geometry comes from style rules.
func (n *Node) Styled() bool { return n.styled }

func (n *Node) markChildrenStale() {
	for _, c := range n.children {
		cb := c.Base()
		if cb.styled {
			cb.stale = true
		}
		cb.markChildrenStale()
	}
}

// setInset reserves an extra inset (such as a border) inside the box,
// ahead of padding.
func (n *Node) setInset(e Edges) {
	n.inset = e
	n.markChildrenStale()
}

// ContentRect returns the area available to children in the node's own
// box coordinates: the box minus any border inset and padding, never
// smaller than one cell.
func (n *Node) ContentRect() Rect {
	g := n.Geometry()
	box := NewRect(0, 0, g.Width, g.Height)
	return box.Shrink(n.inset.Add(n.rules.Edges(PropPadding, Edges{})))
}

// AbsolutePosition returns the screen position of the node's top-left
// cell by summing origins up to the root.
func (n *Node) AbsolutePosition() (x, y int) {
	for cur := n; cur != nil; cur = cur.parent {
		g := cur.Geometry()
		x += g.X
		y += g.Y
	}
	return x, y
}

// AbsoluteRect returns the node's rectangle in screen coordinates.
func (n *Node) AbsoluteRect() Rect {
	x, y := n.AbsolutePosition()
	g := n.Geometry()
	return NewRect(x, y, g.Width, g.Height)
}

func (n *Node) logf(format string, args ...any) {
	debug.Log("node %q: "+format, append([]any{n.name}, args...)...)
}
