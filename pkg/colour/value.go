// Package colour provides the colour value type and the primitive colour
// operations (hex conversion, mixing, opacity) that named swatches are built on.
package colour

import (
	"fmt"
	"math"
)

// ChannelTolerance is the absolute per-channel difference below which two
// colour channels are considered equal. Registry reverse lookup and library
// duplicate detection both depend on this exact value.
const ChannelTolerance = 0.001

// Space identifies the colour space a mix operation interpolates in.
type Space int

const (
	// SpacePerceptual interpolates in a perceptually uniform space (CIE L*a*b*).
	SpacePerceptual Space = iota
	// SpaceDevice interpolates the device sRGB components directly.
	SpaceDevice
)

// String returns the wire name of the space. Unknown values report "perceptual".
func (s Space) String() string {
	if s == SpaceDevice {
		return "device"
	}
	return "perceptual"
}

// ParseSpace parses a space name. Anything other than "device" or
// "perceptual" yields SpacePerceptual and false.
func ParseSpace(s string) (Space, bool) {
	switch s {
	case "device":
		return SpaceDevice, true
	case "perceptual":
		return SpacePerceptual, true
	default:
		return SpacePerceptual, false
	}
}

// Value is a straight (non-premultiplied) RGBA colour with channels in [0, 1].
// Space records the colour space the value was mixed in, if any; it does not
// take part in equality.
type Value struct {
	R, G, B, A float64
	Space      Space
}

// Clear is the fully transparent empty colour used whenever a colour cannot
// be resolved.
var Clear = Value{}

// RGBA builds an opaque-or-translucent value from float channels.
func RGBA(r, g, b, a float64) Value {
	return Value{R: r, G: g, B: b, A: a}
}

// RGBA8 builds a value from 8-bit channels and a float alpha.
func RGBA8(r, g, b uint8, a float64) Value {
	return Value{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
		A: a,
	}
}

// Equal reports whether every channel of v and o differs by less than tolerance.
func (v Value) Equal(o Value, tolerance float64) bool {
	return math.Abs(v.R-o.R) < tolerance &&
		math.Abs(v.G-o.G) < tolerance &&
		math.Abs(v.B-o.B) < tolerance &&
		math.Abs(v.A-o.A) < tolerance
}

// IsClear reports whether v is the empty colour.
func (v Value) IsClear() bool {
	return v.Equal(Clear, ChannelTolerance)
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit channels.
func (v Value) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(v.A)
	a = uint32(math.Round(alpha * 0xffff))
	r = uint32(math.Round(clamp01(v.R) * alpha * 0xffff))
	g = uint32(math.Round(clamp01(v.G) * alpha * 0xffff))
	b = uint32(math.Round(clamp01(v.B) * alpha * 0xffff))
	return r, g, b, a
}

// RGB8 returns the colour channels rounded to 8 bits, ignoring alpha.
func (v Value) RGB8() (r, g, b uint8) {
	return to8(v.R), to8(v.G), to8(v.B)
}

// String returns a compact debug representation.
func (v Value) String() string {
	return fmt.Sprintf("rgba(%.4f, %.4f, %.4f, %.4f)", v.R, v.G, v.B, v.A)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

func to8(f float64) uint8 {
	return uint8(math.Round(clamp01(f) * 255))
}
