package primatives

import "testing"

func TestColorRGBA8(t *testing.T) {
	tests := []struct {
		name       string
		in         Color
		r, g, b, a uint8
	}{
		{"black", Black, 0, 0, 0, 255},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"half", Color{0.5, 0.5, 0.5, 1}, 128, 128, 128, 255},
		{"clamped", Color{-1, 2, 0, 1.5}, 0, 255, 0, 255},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, a := tc.in.RGBA8()
			if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
				t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)", r, g, b, a, tc.r, tc.g, tc.b, tc.a)
			}
		})
	}
}
