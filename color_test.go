package desk

import "testing"

func TestParseColor(t *testing.T) {
	type tc struct {
		token   string
		want    Color
		wantErr bool
	}

	tests := map[string]tc{
		"empty is default":  {token: "", want: DefaultColor()},
		"default":           {token: "Default", want: DefaultColor()},
		"none":              {token: "none", want: DefaultColor()},
		"name":              {token: "red", want: Red},
		"padded name":       {token: "  Cyan ", want: Cyan},
		"gray alias":        {token: "grey", want: BrightBlack},
		"bright dash":       {token: "bright-red", want: BrightRed},
		"bright underscore": {token: "bright_blue", want: BrightBlue},
		"bright joined":     {token: "BrightWhite", want: BrightWhite},
		"bright gray":       {token: "bright-gray", wantErr: true},
		"palette":           {token: "208", want: ANSIColor(208)},
		"palette zero":      {token: "0", want: Black},
		"palette too big":   {token: "256", wantErr: true},
		"palette negative":  {token: "-1", wantErr: true},
		"hex":               {token: "#FF8000", want: RGBColor(255, 128, 0)},
		"short hex":         {token: "#f80", want: RGBColor(255, 136, 0)},
		"bad hex":           {token: "#zzzzzz", wantErr: true},
		"rgb func":          {token: "rgb(1, 2, 3)", want: RGBColor(1, 2, 3)},
		"rgb too few":       {token: "rgb(1,2)", wantErr: true},
		"rgb out of range":  {token: "rgb(1,2,300)", wantErr: true},
		"unknown":           {token: "chartreuse", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) = %+v, want error", tt.token, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.token, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestHexColor_WithoutHash(t *testing.T) {
	got, err := HexColor("00ff00")
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b := got.RGB(); r != 0 || g != 255 || b != 0 {
		t.Errorf("RGB() = (%d, %d, %d), want (0, 255, 0)", r, g, b)
	}
}

func TestColor_ToANSI(t *testing.T) {
	type tc struct {
		in   Color
		want Color
	}

	tests := map[string]tc{
		"pure red":     {in: RGBColor(255, 0, 0), want: ANSIColor(196)},
		"black":        {in: RGBColor(0, 0, 0), want: ANSIColor(16)},
		"mid gray":     {in: RGBColor(128, 128, 128), want: ANSIColor(244)},
		"cube exact":   {in: RGBColor(95, 135, 175), want: ANSIColor(16 + 36 + 12 + 3)},
		"already ansi": {in: Red, want: Red},
		"default":      {in: DefaultColor(), want: DefaultColor()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.in.ToANSI(); !got.Equal(tt.want) {
				t.Errorf("ToANSI() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColor_Equal(t *testing.T) {
	if ANSIColor(1).Equal(RGBColor(1, 0, 0)) {
		t.Error("colors of different kinds compare equal")
	}
	if !DefaultColor().Equal(Color{}) {
		t.Error("zero Color is not the default color")
	}
}

func TestStyleFromRules(t *testing.T) {
	type tc struct {
		rules StyleRules
		base  Style
		want  Style
	}

	tests := map[string]tc{
		"colors": {
			rules: NewRules("fg", "red", "bg", "#000080"),
			want:  Style{Fg: Red, Bg: RGBColor(0, 0, 128)},
		},
		"color alias": {
			rules: NewRules("color", "green"),
			want:  Style{Fg: Green},
		},
		"flag sets": {
			rules: NewRules("bold", true),
			want:  Style{Attrs: AttrBold},
		},
		"flag clears": {
			rules: NewRules("bold", false),
			base:  NewStyle().Bold().Underline(),
			want:  Style{Attrs: AttrUnderline},
		},
		"attrs list": {
			rules: NewRules("attrs", "Reverse dim"),
			want:  Style{Attrs: AttrReverse | AttrDim},
		},
		"bad color keeps base": {
			rules: NewRules("fg", "nope"),
			base:  NewStyle().Foreground(Blue),
			want:  Style{Fg: Blue},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := StyleFromRules(tt.rules, tt.base); !got.Equal(tt.want) {
				t.Errorf("StyleFromRules() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
