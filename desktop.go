package desk

import (
	"slices"

	"github.com/grindlemire/go-desk/internal/debug"
)

// Desktop manages a stack of windows.
//
// Its children are the z-order: the last child is drawn on top. One window
// is active at a time; the active window is always the top of the z-order,
// is the focused child and gets the first chance at every event. Windows()
// keeps creation order, which is the order NextWindow and PrevWindow cycle
// through.
type Desktop struct {
	*Node

	windows []*Window
	active  *Window
	keys    KeyMap
	cascade Point
}

// DesktopOption configures a Desktop.
type DesktopOption func(*Desktop)

// WithBackground fills the desktop with s behind all windows.
func WithBackground(s Style) DesktopOption {
	return func(d *Desktop) { WithPaint(s)(d.Node) }
}

// WithCascadeStep sets the offset between successive cascaded windows.
func WithCascadeStep(dx, dy int) DesktopOption {
	return func(d *Desktop) { d.cascade = Point{X: dx, Y: dy} }
}

// WithoutDefaultBindings drops the built-in window switching shortcuts.
func WithoutDefaultBindings() DesktopOption {
	return func(d *Desktop) { d.keys = nil }
}

// NewDesktop creates a desktop covering rect. The default shortcuts are
// F6 (next window), Shift+F6 (previous window) and Ctrl+W (close the
// active window).
func NewDesktop(rect Rect, opts ...DesktopOption) *Desktop {
	d := &Desktop{
		Node:    NewNode(rect, WithName("desktop")),
		cascade: Point{X: 2, Y: 1},
	}
	d.keys = KeyMap{
		{Pattern: KeyPattern{Key: KeyF6, RequireNoMods: true}, Action: func(KeyEvent) bool { return d.NextWindow() }},
		{Pattern: KeyPattern{Key: KeyF6, Mod: ModShift}, Action: func(KeyEvent) bool { return d.PrevWindow() }},
		{Pattern: KeyPattern{Key: KeyCtrlW}, Action: func(KeyEvent) bool { return d.CloseActiveWindow() }},
	}
	for _, opt := range opts {
		opt(d)
	}
	d.bind(d)
	return d
}

// Bind adds a desktop-level shortcut. Shortcuts run only for keys the
// active window declined. Earlier bindings win.
func (d *Desktop) Bind(b KeyBinding) {
	d.keys = append(d.keys, b)
}

// AddWindow opens w on top of the stack and makes it active. Every added
// window is activated, not only the first, so the active window stays on
// top. A window that cannot take focus is added below the current active
// window, which stays active.
func (d *Desktop) AddWindow(w *Window) *Desktop {
	w.SetVisible(true)
	d.Add(w)
	if !slices.Contains(d.windows, w) {
		d.windows = append(d.windows, w)
	}
	if !d.SetActiveWindow(w) && d.active != nil {
		d.raise(d.active)
	}
	return d
}

// Windows returns the managed windows in creation order.
func (d *Desktop) Windows() []*Window {
	return slices.Clone(d.windows)
}

// Stack returns the windows in z-order, bottom first.
func (d *Desktop) Stack() []*Window {
	var out []*Window
	for _, c := range d.Children() {
		if w, ok := c.(*Window); ok {
			out = append(out, w)
		}
	}
	return out
}

// ActiveWindow returns the active window, or nil.
func (d *Desktop) ActiveWindow() *Window { return d.active }

// SetActiveWindow blurs the previously active window, raises w to the top
// of the z-order and focuses it. It returns false if w is not a child
// window of this desktop or cannot take focus.
func (d *Desktop) SetActiveWindow(w *Window) bool {
	if w == nil || !slices.Contains(d.windows, w) || d.IndexOf(w) < 0 || !w.canFocus() {
		return false
	}
	if d.active != nil && d.active != w {
		d.active.Blur()
	}

	d.raise(w)
	d.active = w
	w.Focus()
	if w.FocusedChild() == nil {
		w.FocusRing().FocusFirst()
	}
	debug.Log("desktop: active window %q", w.Title())
	d.Invalidate()
	return true
}

// raise moves w to the end of the child list without detaching it.
func (d *Desktop) raise(w *Window) {
	idx := d.IndexOf(w)
	if idx < 0 || idx == len(d.children)-1 {
		return
	}
	d.children = append(slices.Delete(d.children, idx, idx+1), w)
}

// CloseActiveWindow closes and detaches the active window, then activates
// the top-most remaining window, if any. Returns false when no window is active.
func (d *Desktop) CloseActiveWindow() bool {
	if d.active == nil {
		return false
	}
	d.active.Close()
	return true
}

// Remove detaches child. A removed window also leaves the window list and,
// if it was active, the top-most remaining window is promoted.
func (d *Desktop) Remove(child Widget) bool {
	if !d.Node.Remove(child) {
		return false
	}
	cb := child.Base()
	idx := slices.IndexFunc(d.windows, func(x *Window) bool { return x.Node == cb })
	if idx < 0 {
		return true
	}
	w := d.windows[idx]
	d.windows = slices.Delete(d.windows, idx, idx+1)
	if d.active == w {
		d.promote()
	}
	return true
}

// windowClosed detaches a closed window.
func (d *Desktop) windowClosed(w *Window) {
	d.Remove(w)
}

// promote activates the top-most window that can take focus.
func (d *Desktop) promote() {
	d.active = nil
	stack := d.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		if d.SetActiveWindow(stack[i]) {
			return
		}
	}
	debug.Log("desktop: no active window")
	d.Invalidate()
}

// NextWindow activates the window after the active one in creation order,
// wrapping around. With no active window it starts from the first window.
// It returns false when no other window could be activated.
func (d *Desktop) NextWindow() bool { return d.cycle(1) }

// PrevWindow activates the window before the active one in creation order.
func (d *Desktop) PrevWindow() bool { return d.cycle(-1) }

func (d *Desktop) cycle(dir int) bool {
	n := len(d.windows)
	start := slices.Index(d.windows, d.active)
	if start < 0 && dir > 0 {
		start = -1
	} else if start < 0 {
		start = n
	}
	for i := 1; i <= n; i++ {
		w := d.windows[((start+dir*i)%n+n)%n]
		if w != d.active && d.SetActiveWindow(w) {
			return true
		}
	}
	return false
}

func (d *Desktop) visibleWindows() []*Window {
	var out []*Window
	for _, w := range d.windows {
		if w.Visible() {
			out = append(out, w)
		}
	}
	return out
}

func (d *Desktop) arrange(name string, rects func(n int, area Rect) []Rect) {
	ws := d.visibleWindows()
	for i, r := range rects(len(ws), d.ContentRect()) {
		ws[i].SetGeometry(r)
	}
	debug.Log("desktop: %s %d windows", name, len(ws))
	d.Invalidate()
}

// Cascade stacks the windows diagonally in creation order.
func (d *Desktop) Cascade() {
	d.arrange("cascade", func(n int, area Rect) []Rect {
		return CascadeRects(n, area, d.cascade)
	})
}

// TileHorizontal places the windows side by side.
func (d *Desktop) TileHorizontal() {
	d.arrange("tile horizontal", func(n int, area Rect) []Rect {
		return TileRects(n, area, true)
	})
}

// TileVertical stacks the windows top to bottom.
func (d *Desktop) TileVertical() {
	d.arrange("tile vertical", func(n int, area Rect) []Rect {
		return TileRects(n, area, false)
	})
}

// TileGrid arranges the windows in a near-square grid.
func (d *Desktop) TileGrid() {
	d.arrange("tile grid", GridRects)
}

// Resize changes the desktop size. Styled windows re-resolve.
func (d *Desktop) Resize(width, height int) {
	g := d.Geometry()
	d.SetGeometry(NewRect(g.X, g.Y, width, height))
}

// HandleEvent runs desktop shortcuts for keys the active window declined.
func (d *Desktop) HandleEvent(ev Event) bool {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return false
	}
	return d.keys.Handle(ke)
}
