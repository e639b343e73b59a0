package desk

// Add appends children to n, detaching each from any previous parent first.
// Later children paint over earlier ones. A child arrives unfocused; n itself
// and its ancestors are skipped. Returns n for chaining.
func (n *Node) Add(children ...Widget) *Node {
	for _, w := range children {
		child := w.Base()
		if n.hasAncestor(child) {
			continue
		}
		if p := child.parent; p != nil {
			if r, ok := p.Widget().(childRemover); ok {
				r.Remove(w)
			} else {
				p.Remove(w)
			}
		}
		child.bind(w)
		child.parent = n
		child.focused = false
		if child.styled {
			child.stale = true
		}
		child.markChildrenStale()
		n.children = append(n.children, w)
		n.logf("add %q", child.name)
	}
	n.Invalidate()
	return n
}

// childRemover lets containers that override Remove keep their own
// bookkeeping when a child is reparented away from them.
type childRemover interface {
	Remove(child Widget) bool
}

// hasAncestor reports whether a is n or one of n's ancestors.
func (n *Node) hasAncestor(a *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// Remove detaches child from n and clears its parent reference and focus.
// Returns false if child is not a direct child of n.
func (n *Node) Remove(child Widget) bool {
	idx := n.IndexOf(child)
	if idx < 0 {
		return false
	}
	cb := child.Base()
	n.children = append(n.children[:idx:idx], n.children[idx+1:]...)
	cb.parent = nil
	cb.focused = false
	n.logf("remove %q", cb.name)
	n.Invalidate()
	return true
}

// IndexOf returns child's position among n's children, or -1.
func (n *Node) IndexOf(child Widget) int {
	cb := child.Base()
	for i, c := range n.children {
		if c.Base() == cb {
			return i
		}
	}
	return -1
}

// Children returns a copy of the child list in paint order.
func (n *Node) Children() []Widget {
	out := make([]Widget, len(n.children))
	copy(out, n.children)
	return out
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Root returns the top of n's tree.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// FindChild searches n's descendants depth-first, in child order, and
// returns the first widget with the given name. n itself is not a
// candidate. With duplicate names the earliest in pre-order wins.
func (n *Node) FindChild(name string) Widget {
	for _, c := range n.children {
		if c.Base().name == name {
			return c
		}
		if found := c.Base().FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips that widget's children.
func (n *Node) Walk(fn func(w Widget) bool) {
	if !fn(n.widget()) {
		return
	}
	for _, c := range n.children {
		c.Base().Walk(fn)
	}
}
