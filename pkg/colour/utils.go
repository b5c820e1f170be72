package colour

import (
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest). Alpha is ignored.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(v Value) float64 {
	r := gammaCorrect(clamp01(v.R))
	g := gammaCorrect(clamp01(v.G))
	b := gammaCorrect(clamp01(v.B))

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Value) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Over composites v over an opaque backdrop and returns an opaque colour.
// Used to show translucent swatches the way a terminal would render them.
func Over(v, backdrop Value) Value {
	a := clamp01(v.A)
	return Value{
		R: v.R*a + backdrop.R*(1-a),
		G: v.G*a + backdrop.G*(1-a),
		B: v.B*a + backdrop.B*(1-a),
		A: 1,
	}
}
