package desk

import "testing"

func focusGroup(opts map[string][]NodeOption) (*Node, []*probe) {
	parent := NewNode(NewRect(0, 0, 20, 20), WithName("group"))
	var kids []*probe
	for _, name := range []string{"a", "b", "c", "d"} {
		p := newProbe(name, NewRect(0, 0, 1, 1), opts[name]...)
		kids = append(kids, p)
		parent.Add(p)
	}
	return parent, kids
}

func focusedName(parent *Node) string {
	if f := parent.FocusedChild(); f != nil {
		return f.Base().Name()
	}
	return ""
}

func TestNode_FocusIsExclusivePerGroup(t *testing.T) {
	parent, kids := focusGroup(nil)
	other := NewNode(NewRect(0, 0, 5, 5))
	outsider := newProbe("outsider", NewRect(0, 0, 1, 1))
	other.Add(outsider)
	outsider.Focus()

	kids[0].Focus()
	kids[2].Focus()

	if kids[0].Focused() {
		t.Errorf("a kept focus after c was focused")
	}
	if got := focusedName(parent); got != "c" {
		t.Errorf("focused child = %q, want c", got)
	}
	if !outsider.Focused() {
		t.Errorf("focus in one group blurred a node in another group")
	}
}

func TestNode_AddKeepsFocusExclusive(t *testing.T) {
	type tc struct {
		focusOrphan   bool
		focusSibling  bool
		wantFocused   string
		wantFocusedNo int
	}

	tests := map[string]tc{
		"focused orphan joins a focused group": {
			focusOrphan: true, focusSibling: true, wantFocused: "b", wantFocusedNo: 1,
		},
		"focused orphan joins an unfocused group": {
			focusOrphan: true, wantFocused: "", wantFocusedNo: 0,
		},
		"unfocused orphan joins a focused group": {
			focusSibling: true, wantFocused: "b", wantFocusedNo: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent, kids := focusGroup(nil)
			if tt.focusSibling {
				kids[1].Focus()
			}
			orphan := newProbe("orphan", NewRect(0, 0, 1, 1))
			if tt.focusOrphan && !orphan.Focus() {
				t.Fatalf("orphan refused focus")
			}

			parent.Add(orphan)

			count := 0
			for _, c := range parent.Children() {
				if c.Base().Focused() {
					count++
				}
			}
			if count != tt.wantFocusedNo {
				t.Errorf("%d focused siblings, want %d", count, tt.wantFocusedNo)
			}
			if got := focusedName(parent); got != tt.wantFocused {
				t.Errorf("focused child = %q, want %q", got, tt.wantFocused)
			}
		})
	}
}

func TestNode_FocusRefused(t *testing.T) {
	_, kids := focusGroup(map[string][]NodeOption{
		"b": {WithDisabled()},
		"c": {WithHidden()},
	})

	if kids[1].Focus() {
		t.Errorf("disabled node accepted focus")
	}
	if kids[2].Focus() {
		t.Errorf("hidden node accepted focus")
	}

	kids[0].Focus()
	kids[0].SetEnabled(false)
	if kids[0].Focused() {
		t.Errorf("disabling did not blur")
	}
}

func TestNode_FocusNext(t *testing.T) {
	type tc struct {
		opts  map[string][]NodeOption
		start int
		prev  bool
		want  string
		ok    bool
	}

	tests := map[string]tc{
		"advances":            {start: 0, want: "b", ok: true},
		"wraps at the end":    {start: 3, want: "a", ok: true},
		"prev wraps at start": {start: 0, prev: true, want: "d", ok: true},
		"skips disabled": {
			opts:  map[string][]NodeOption{"b": {WithDisabled()}},
			start: 0, want: "c", ok: true,
		},
		"skips hidden backwards": {
			opts:  map[string][]NodeOption{"d": {WithHidden()}, "c": {WithDisabled()}},
			start: 0, prev: true, want: "b", ok: true,
		},
		"no other eligible sibling": {
			opts: map[string][]NodeOption{
				"b": {WithDisabled()},
				"c": {WithHidden()},
				"d": {WithDisabled()},
			},
			start: 0, want: "a", ok: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent, kids := focusGroup(tt.opts)
			kids[tt.start].Focus()

			var ok bool
			if tt.prev {
				ok = kids[tt.start].FocusPrev()
			} else {
				ok = kids[tt.start].FocusNext()
			}

			if ok != tt.ok {
				t.Errorf("ok = %v, want %v", ok, tt.ok)
			}
			if got := focusedName(parent); got != tt.want {
				t.Errorf("focused = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNode_FocusNextWithoutParent(t *testing.T) {
	n := NewNode(NewRect(0, 0, 1, 1))
	if n.FocusNext() || n.FocusPrev() {
		t.Errorf("root node reported a focus move")
	}
}

func TestFocusRing(t *testing.T) {
	parent, kids := focusGroup(map[string][]NodeOption{"a": {WithDisabled()}})
	ring := parent.FocusRing()

	if got := names(ring.Eligible()); len(got) != 3 || got[0] != "b" {
		t.Errorf("Eligible() = %v, want [b c d]", got)
	}
	if ring.Current() != nil {
		t.Errorf("Current() = %v, want nil", ring.Current())
	}

	if !ring.Next() || focusedName(parent) != "b" {
		t.Errorf("Next() from nothing should focus b, got %q", focusedName(parent))
	}
	if !ring.Prev() || focusedName(parent) != "d" {
		t.Errorf("Prev() from b should wrap to d, got %q", focusedName(parent))
	}

	kids[3].Blur()
	if !ring.Prev() || focusedName(parent) != "d" {
		t.Errorf("Prev() from nothing should focus the last eligible, got %q", focusedName(parent))
	}

	empty := NewNode(NewRect(0, 0, 1, 1)).FocusRing()
	if empty.Next() || empty.Prev() || empty.FocusFirst() {
		t.Errorf("empty ring reported a focus move")
	}
}

func TestNode_FocusNextCyclesBackToStart(t *testing.T) {
	parent, kids := focusGroup(nil)
	kids[0].Focus()

	for range len(kids) {
		kids[0].FocusNext()
	}
	if got := focusedName(parent); got != "a" {
		t.Errorf("after a full cycle focused = %q, want a", got)
	}
}
