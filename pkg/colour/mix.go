package colour

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mix blends a towards b by fraction in the given space. A fraction of 0
// yields a, 1 yields b. Fractions outside [0, 1] are passed through to the
// interpolation unchanged. Alpha is interpolated linearly in both spaces and
// the result is tagged with space.
func Mix(a, b Value, fraction float64, space Space) Value {
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}

	var blended colorful.Color
	switch space {
	case SpaceDevice:
		blended = ca.BlendRgb(cb, fraction)
	default:
		blended = ca.BlendLab(cb, fraction).Clamped()
	}

	return Value{
		R:     blended.R,
		G:     blended.G,
		B:     blended.B,
		A:     a.A + (b.A-a.A)*fraction,
		Space: space,
	}
}

// Opacity scales the alpha channel of c by factor, leaving R, G and B unchanged.
func Opacity(c Value, factor float64) Value {
	c.A *= factor
	return c
}
