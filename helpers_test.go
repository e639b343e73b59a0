package desk

// probe is a widget that records what the tree does to it.
type probe struct {
	*Node
	consume bool
	events  []Event
	draws   int
	fill    rune
}

func newProbe(name string, rect Rect, opts ...NodeOption) *probe {
	p := &probe{Node: NewNode(rect, append([]NodeOption{WithName(name)}, opts...)...)}
	p.bind(p)
	return p
}

func (p *probe) Draw(pt *Painter) {
	p.draws++
	if p.fill != 0 {
		pt.Fill(pt.Bounds(), p.fill, NewStyle())
	}
}

func (p *probe) HandleEvent(ev Event) bool {
	p.events = append(p.events, ev)
	return p.consume
}

// countingHost counts redraw requests.
type countingHost struct{ n int }

func (h *countingHost) Invalidate() { h.n++ }

func key(k Key) KeyEvent { return KeyEvent{Key: k} }

func runeKey(r rune) KeyEvent { return KeyEvent{Key: KeyRune, Rune: r} }

func names(ws []Widget) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Base().Name()
	}
	return out
}

func titles(ws []*Window) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Title()
	}
	return out
}
