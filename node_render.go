package desk

// Host receives redraw requests from a tree. App implements it.
type Host interface {
	Invalidate()
}

// SetHost attaches h to n's tree. Only the root's host is consulted.
func (n *Node) SetHost(h Host) { n.host = h }

// Host returns the host attached to the root of n's tree, or nil.
func (n *Node) Host() Host { return n.Root().host }

// Invalidate asks the tree's host for a repaint. Multiple calls before the
// next frame coalesce into a single repaint. Without a host it is a no-op.
func (n *Node) Invalidate() {
	if h := n.Host(); h != nil {
		h.Invalidate()
	}
}

// Dispatch routes ev through n's subtree. The focused child (if visible and
// enabled) sees the event first, recursively; only if it declines does n's
// own HandleEvent run. Unfocused siblings never see the event.
func (n *Node) Dispatch(ev Event) bool {
	if f := n.FocusedChild(); f != nil && f.Base().canFocus() {
		if f.Base().Dispatch(ev) {
			return true
		}
	}
	return n.widget().HandleEvent(ev)
}

// Render paints n's subtree into buf using absolute screen coordinates.
// Each node draws itself and then its visible children in order, clipped
// to its content area.
func (n *Node) Render(buf *Buffer) {
	p := NewPainter(buf)
	if n.parent != nil {
		x, y := n.parent.AbsolutePosition()
		p = p.Sub(NewRect(x, y, buf.Width()-x, buf.Height()-y))
	}
	n.render(p)
}

// render draws n inside p, where p's origin is the parent's box origin.
func (n *Node) render(p *Painter) {
	if !n.visible {
		return
	}
	sub := p.Sub(n.Geometry())
	n.widget().Draw(sub)

	if len(n.children) == 0 {
		return
	}
	inner := sub.Clipped(n.ContentRect())
	for _, c := range n.children {
		c.Base().render(inner)
	}
}
