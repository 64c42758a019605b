package terminal

import "testing"

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB{}, "#000000"},
		{RGB{255, 255, 255}, "#ffffff"},
		{RGB{0, 255, 65}, "#00ff41"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		a    Attr
		want string
	}{
		{AttrNone, "none"},
		{AttrBold, "bold"},
		{AttrBold | AttrDim, "bold|dim"},
		{AttrReverse | AttrItalic, "italic|reverse"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Attr(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
