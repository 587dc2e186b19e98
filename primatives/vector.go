package primatives

type Vector2[T int32 | float32 | float64] struct {
	X, Y T
}

// Color is a straight (non-premultiplied) RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

var (
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{}
)

// RGBA8 converts c to 8 bit components, clamping out of range values.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
