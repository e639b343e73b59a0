package desk

import "github.com/grindlemire/go-desk/internal/debug"

// Window is a bordered, titled container. Its children live inside the
// border; Escape closes a closable window and Tab/Backtab cycle focus among
// its direct children, in both cases only after the focused child declined
// the key.
type Window struct {
	*Node

	title             string
	border            BorderChars
	closable          bool
	onClose           func(*Window)
	titleStyle        Style
	borderStyle       Style
	activeBorderStyle Style
	hasActiveStyle    bool
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithBorder sets the border glyphs. BorderNone removes the border and its inset.
func WithBorder(b BorderChars) WindowOption {
	return func(w *Window) { w.border = b }
}

// WithClosable controls whether Escape closes the window.
func WithClosable(closable bool) WindowOption {
	return func(w *Window) { w.closable = closable }
}

// WithOnClose registers a hook run after the window is closed.
func WithOnClose(fn func(*Window)) WindowOption {
	return func(w *Window) { w.onClose = fn }
}

// WithTitleStyle sets the style of the title text.
func WithTitleStyle(s Style) WindowOption {
	return func(w *Window) { w.titleStyle = s }
}

// WithBorderStyle sets the style of the border glyphs.
func WithBorderStyle(s Style) WindowOption {
	return func(w *Window) { w.borderStyle = s }
}

// WithActiveBorderStyle sets the border style used while the window is focused.
func WithActiveBorderStyle(s Style) WindowOption {
	return func(w *Window) {
		w.activeBorderStyle = s
		w.hasActiveStyle = true
	}
}

// WithNodeOptions applies node options (name, paint, ...) to the window's node.
func WithNodeOptions(opts ...NodeOption) WindowOption {
	return func(w *Window) {
		for _, opt := range opts {
			opt(w.Node)
		}
	}
}

// NewWindow creates a window at an explicit rectangle.
func NewWindow(title string, rect Rect, opts ...WindowOption) *Window {
	return newWindow(title, NewNode(rect), opts)
}

// NewStyledWindow creates a window whose rectangle is resolved from rules
// against its parent's content area.
func NewStyledWindow(title string, rules StyleRules, opts ...WindowOption) *Window {
	w := newWindow(title, NewStyledNode(rules), opts)
	if name := rules.String("border", ""); name != "" {
		if b, ok := BorderByName(name); ok {
			w.SetBorder(b)
		}
	}
	return w
}

func newWindow(title string, n *Node, opts []WindowOption) *Window {
	w := &Window{
		Node:     n,
		title:    title,
		border:   BorderSingle,
		closable: true,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.bind(w)
	w.SetBorder(w.border)
	return w
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.Invalidate()
}

// Border returns the border glyphs.
func (w *Window) Border() BorderChars { return w.border }

// SetBorder replaces the border glyphs. A zero border takes no space.
func (w *Window) SetBorder(b BorderChars) {
	w.border = b
	if b.IsZero() {
		w.setInset(Edges{})
	} else {
		w.setInset(EdgeAll(1))
	}
	w.Invalidate()
}

// Closable reports whether Escape closes the window.
func (w *Window) Closable() bool { return w.closable }

// Close hides the window and runs its close hook. The window and its
// children are kept intact. A desktop owning the window detaches it and
// activates the next window. Closing a hidden window does nothing.
func (w *Window) Close() {
	if !w.Visible() {
		return
	}
	debug.Log("window %q: close", w.title)
	w.SetVisible(false)
	if w.onClose != nil {
		w.onClose(w)
	}
	if p := w.Parent(); p != nil {
		if wc, ok := p.Widget().(windowCloser); ok {
			wc.windowClosed(w)
		}
	}
}

// windowCloser is implemented by containers that manage windows.
type windowCloser interface {
	windowClosed(w *Window)
}

// Draw paints the background, the border and the centered title.
func (w *Window) Draw(p *Painter) {
	bg, _ := w.Paint()
	p.Clear(bg)

	if w.border.IsZero() {
		return
	}
	bs := w.borderStyle
	if w.Focused() && w.hasActiveStyle {
		bs = w.activeBorderStyle
	}
	p.DrawBorder(p.Bounds(), w.border, bs)

	if w.title == "" || p.Width() < 5 {
		return
	}
	text := " " + TruncateString(w.title, p.Width()-4, "…") + " "
	x := (p.Width() - StringWidth(text)) / 2
	p.SetString(x, 0, text, w.titleStyle)
}

// HandleEvent implements the window shortcuts: Escape closes a closable
// window, Tab and Backtab move focus among the window's children.
func (w *Window) HandleEvent(ev Event) bool {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return false
	}
	switch ke.Key {
	case KeyEscape:
		if !w.closable {
			return false
		}
		w.Close()
		return true
	case KeyTab:
		return w.FocusRing().Next()
	case KeyBacktab:
		return w.FocusRing().Prev()
	}
	return false
}
