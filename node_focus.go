package desk

// Focused reports whether n is the focused node of its sibling group.
func (n *Node) Focused() bool { return n.focused }

// canFocus reports whether n may take focus.
func (n *Node) canFocus() bool {
	return n.visible && n.enabled
}

// Focus makes n the focused node of its sibling group, blurring every
// other sibling first. Hidden or disabled nodes refuse focus and return
// false. Focus never affects other levels of the tree.
func (n *Node) Focus() bool {
	if !n.canFocus() {
		return false
	}
	if n.parent != nil {
		for _, c := range n.parent.children {
			if cb := c.Base(); cb != n && cb.focused {
				cb.Blur()
			}
		}
	}
	if !n.focused {
		n.focused = true
		n.logf("focus")
		n.Invalidate()
	}
	return true
}

// Blur clears n's focus flag.
func (n *Node) Blur() {
	if !n.focused {
		return
	}
	n.focused = false
	n.logf("blur")
	n.Invalidate()
}

// FocusedChild returns the focused direct child of n, or nil.
func (n *Node) FocusedChild() Widget {
	for _, c := range n.children {
		if c.Base().focused {
			return c
		}
	}
	return nil
}

// FocusNext moves focus to the next eligible sibling after the group's
// focused node (or after n when none is focused), wrapping around.
// Returns false when n has no parent or no other eligible sibling exists.
func (n *Node) FocusNext() bool {
	if n.parent == nil {
		return false
	}
	return n.parent.FocusRing().step(n, 1)
}

// FocusPrev is FocusNext in the opposite direction.
func (n *Node) FocusPrev() bool {
	if n.parent == nil {
		return false
	}
	return n.parent.FocusRing().step(n, -1)
}

// FocusRing cycles focus among the direct children of one node, skipping
// hidden and disabled children.
type FocusRing struct {
	owner *Node
}

// FocusRing returns the ring over n's children.
func (n *Node) FocusRing() FocusRing {
	return FocusRing{owner: n}
}

// Eligible returns the children that can currently take focus, in order.
func (r FocusRing) Eligible() []Widget {
	var out []Widget
	for _, c := range r.owner.children {
		if c.Base().canFocus() {
			out = append(out, c)
		}
	}
	return out
}

// Current returns the focused child, or nil.
func (r FocusRing) Current() Widget {
	return r.owner.FocusedChild()
}

// FocusFirst focuses the first eligible child.
func (r FocusRing) FocusFirst() bool {
	for _, c := range r.owner.children {
		if c.Base().Focus() {
			return true
		}
	}
	return false
}

// Next advances focus to the following eligible child, wrapping. With
// nothing focused it focuses the first eligible child.
func (r FocusRing) Next() bool {
	cur := r.Current()
	if cur == nil {
		return r.FocusFirst()
	}
	return r.step(cur.Base(), 1)
}

// Prev moves focus to the preceding eligible child, wrapping. With nothing
// focused it focuses the last eligible child.
func (r FocusRing) Prev() bool {
	cur := r.Current()
	if cur == nil {
		eligible := r.Eligible()
		if len(eligible) == 0 {
			return false
		}
		return eligible[len(eligible)-1].Base().Focus()
	}
	return r.step(cur.Base(), -1)
}

// step focuses the nearest eligible child in direction dir, starting from
// the focused child or, if none, from the child from.
func (r FocusRing) step(from *Node, dir int) bool {
	children := r.owner.children
	count := len(children)
	if cur := r.Current(); cur != nil {
		from = cur.Base()
	}

	start := -1
	for i, c := range children {
		if c.Base() == from {
			start = i
			break
		}
	}
	if start < 0 {
		return false
	}

	for i := 1; i < count; i++ {
		idx := ((start+dir*i)%count + count) % count
		if cand := children[idx].Base(); cand.canFocus() {
			cand.logf("focus ring step %+d", dir)
			return cand.Focus()
		}
	}
	return false
}
