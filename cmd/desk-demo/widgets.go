package main

import desk "github.com/grindlemire/go-desk"

// label is a single line of static text. It never takes focus.
type label struct {
	*desk.Node
	text string
}

func newLabel(rect desk.Rect, text string) *label {
	l := &label{Node: desk.NewNode(rect, desk.WithDisabled()), text: text}
	return l
}

func (l *label) SetText(s string) {
	l.text = s
	l.Invalidate()
}

func (l *label) Draw(p *desk.Painter) {
	p.SetString(0, 0, desk.TruncateString(l.text, p.Width(), "…"), desk.NewStyle())
}

// button runs onPress when Enter or Space is pressed while focused.
type button struct {
	*desk.Node
	text    string
	onPress func()
}

func newButton(rect desk.Rect, text string, onPress func()) *button {
	return &button{Node: desk.NewNode(rect, desk.WithName(text)), text: text, onPress: onPress}
}

func (b *button) Draw(p *desk.Painter) {
	style := desk.NewStyle()
	if b.Focused() {
		style = style.Reverse()
	}
	p.SetString(0, 0, "[ "+b.text+" ]", style)
}

func (b *button) HandleEvent(ev desk.Event) bool {
	ke, ok := ev.(desk.KeyEvent)
	if !ok {
		return false
	}
	if ke.Key == desk.KeyEnter || (ke.Key == desk.KeyRune && ke.Rune == ' ') {
		b.onPress()
		b.Invalidate()
		return true
	}
	return false
}
