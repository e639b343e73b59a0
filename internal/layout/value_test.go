package layout

import "testing"

func TestParseValue(t *testing.T) {
	type tc struct {
		input any
		want  Value
		ok    bool
	}

	tests := map[string]tc{
		"int":          {input: 12, want: Fixed(12), ok: true},
		"float":        {input: 7.9, want: Fixed(7), ok: true},
		"numeric":      {input: "30", want: Fixed(30), ok: true},
		"percent":      {input: "50%", want: Percent(50), ok: true},
		"fractional":   {input: "33.5%", want: Percent(33.5), ok: true},
		"auto":         {input: "auto", want: Auto(), ok: true},
		"auto upper":   {input: "AUTO", want: Auto(), ok: true},
		"garbage":      {input: "wide", ok: false},
		"bad percent":  {input: "x%", ok: false},
		"wrong type":   {input: []int{1}, ok: false},
		"passthrough":  {input: Percent(10), want: Percent(10), ok: true},
		"empty string": {input: "", ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseValue(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseValue(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseValue(%v) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		want      int
	}

	tests := map[string]tc{
		"fixed":            {value: Fixed(10), available: 100, want: 10},
		"fixed ignores":    {value: Fixed(10), available: 3, want: 10},
		"half of 120":      {value: Percent(50), available: 120, want: 60},
		"half of 121":      {value: Percent(50), available: 121, want: 60},
		"third of 10":      {value: Percent(33), available: 10, want: 3},
		"fractional floor": {value: Percent(12.5), available: 10, want: 1},
		"auto":             {value: Auto(), available: 80, want: 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.available); got != tt.want {
				t.Errorf("Resolve(%d) = %d, want %d", tt.available, got, tt.want)
			}
		})
	}
}

func TestValue_String(t *testing.T) {
	for _, v := range []Value{Fixed(4), Percent(50), Percent(12.5), Auto()} {
		parsed, ok := ParseValue(v.String())
		if !ok || parsed != v {
			t.Errorf("ParseValue(%q) = %+v, %v; want %+v", v.String(), parsed, ok, v)
		}
	}
}
