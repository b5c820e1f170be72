package swatch

import (
	"github.com/jmylchreest/swatchbook/pkg/colour"
)

// MethodKind identifies the variant of a CreationMethod.
type MethodKind int

const (
	KindHexLiteral MethodKind = iota
	KindDirectColor
	KindSystemColor
	KindMixedColors
	KindIntensityScaled
)

// String returns a readable name for the kind.
func (k MethodKind) String() string {
	switch k {
	case KindHexLiteral:
		return "hex"
	case KindDirectColor:
		return "direct"
	case KindSystemColor:
		return "system"
	case KindMixedColors:
		return "mix"
	case KindIntensityScaled:
		return "intensity"
	default:
		return "unknown"
	}
}

// CreationMethod records how a NamedColor was produced. The set of
// implementations is closed: HexLiteral, DirectColor, SystemColor,
// MixedColors and IntensityScaled.
type CreationMethod interface {
	Kind() MethodKind
	creationMethod()
}

// HexLiteral is a colour parsed from a hex string. Hex is kept verbatim,
// even when it could not be parsed.
type HexLiteral struct {
	Hex string
}

// DirectColor is a colour supplied as a value that matched no system colour.
type DirectColor struct{}

// SystemColor is a colour taken from the registry by name. Name is kept
// even when the registry does not know it.
type SystemColor struct {
	Name string
}

// MixedColors is a blend of two hex colours.
type MixedColors struct {
	BaseHex  string
	MixHex   string
	Fraction float64
	Space    colour.Space
}

// IntensityScaled is a base colour with an intensity's opacity applied.
//
// The base is either a system colour (BaseName set) or a raw colour value.
// BaseHex holds the hex string a raw base was decoded from so that it is
// written back unchanged.
type IntensityScaled struct {
	BaseName  string
	Base      colour.Value
	BaseHex   string
	Intensity Intensity
}

func (HexLiteral) Kind() MethodKind      { return KindHexLiteral }
func (DirectColor) Kind() MethodKind     { return KindDirectColor }
func (SystemColor) Kind() MethodKind     { return KindSystemColor }
func (MixedColors) Kind() MethodKind     { return KindMixedColors }
func (IntensityScaled) Kind() MethodKind { return KindIntensityScaled }

func (HexLiteral) creationMethod()      {}
func (DirectColor) creationMethod()     {}
func (SystemColor) creationMethod()     {}
func (MixedColors) creationMethod()     {}
func (IntensityScaled) creationMethod() {}
