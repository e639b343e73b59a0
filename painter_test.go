package desk

import "testing"

func TestPainter_SubClips(t *testing.T) {
	buf := NewBuffer(10, 4)
	p := NewPainter(buf).Sub(NewRect(2, 1, 4, 2))

	if got := p.Bounds(); got != NewRect(0, 0, 4, 2) {
		t.Errorf("Bounds() = %+v, want local 4x2", got)
	}
	p.SetString(0, 0, "abcdefgh", NewStyle())
	p.SetRune(-1, 1, 'x', NewStyle())
	p.SetRune(3, 1, 'z', NewStyle())

	want := "\n  abcd\n     z\n"
	if got := buf.StringTrimmed(); got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestPainter_NestedSubIntersects(t *testing.T) {
	buf := NewBuffer(10, 4)
	outer := NewPainter(buf).Sub(NewRect(1, 1, 3, 2))
	inner := outer.Sub(NewRect(2, 0, 5, 5))

	if got, want := inner.Clip(), NewRect(3, 1, 1, 2); got != want {
		t.Errorf("Clip() = %+v, want %+v", got, want)
	}
	inner.Clear(NewStyle())
	inner.Fill(inner.Bounds(), '#', NewStyle())
	if got, want := buf.StringTrimmed(), "\n   #\n   #\n"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
}

func TestPainter_WideRuneAtClipEdge(t *testing.T) {
	buf := NewBuffer(6, 1)
	p := NewPainter(buf).Sub(NewRect(0, 0, 3, 1))
	p.SetRune(2, 0, '世', NewStyle())
	if c := buf.Cell(2, 0); c.Rune != ' ' || buf.Cell(3, 0).IsContinuation() {
		t.Errorf("wide rune spilled past the clip: %+v", c)
	}
}

func TestPainter_DrawBorder(t *testing.T) {
	type tc struct {
		rect  Rect
		chars BorderChars
		want  string
	}

	tests := map[string]tc{
		"single": {
			rect:  NewRect(0, 0, 4, 3),
			chars: BorderSingle,
			want:  "┌──┐\n│  │\n└──┘",
		},
		"ascii": {
			rect:  NewRect(0, 0, 3, 2),
			chars: BorderASCII,
			want:  "+-+\n+-+\n",
		},
		"custom corners": {
			rect:  NewRect(0, 0, 3, 3),
			chars: BorderRounded.WithCorners('1', '2', '3', '4'),
			want:  "1─2\n│ │\n4─3",
		},
		"too small": {
			rect:  NewRect(0, 0, 1, 3),
			chars: BorderDouble,
			want:  "\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(4, 3)
			NewPainter(buf).DrawBorder(tt.rect, tt.chars, NewStyle())
			if got := buf.StringTrimmed(); got != tt.want {
				t.Errorf("border =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestBorderByName(t *testing.T) {
	type tc struct {
		name   string
		corner rune
		ok     bool
	}

	tests := map[string]tc{
		"single":      {name: "single", corner: '┌', ok: true},
		"normal":      {name: "normal", corner: '┌', ok: true},
		"rounded":     {name: " Rounded ", corner: '╭', ok: true},
		"double":      {name: "double", corner: '╔', ok: true},
		"thick":       {name: "thick", corner: '┏', ok: true},
		"none":        {name: "none", corner: 0, ok: true},
		"unknown":     {name: "wavy", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, ok := BorderByName(tt.name)
			if ok != tt.ok {
				t.Fatalf("BorderByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && b.TopLeft != tt.corner {
				t.Errorf("TopLeft = %q, want %q", b.TopLeft, tt.corner)
			}
		})
	}
	if !BorderNone.IsZero() || BorderHidden.IsZero() {
		t.Error("only the none preset should be zero")
	}
}
