package swatch

import (
	"github.com/google/uuid"

	"github.com/jmylchreest/swatchbook/pkg/colour"
)

// NamedColor is an immutable named colour together with the method that
// produced it. The zero value is not useful; use one of the From*
// constructors.
type NamedColor struct {
	name   string
	id     string
	color  colour.Value
	method CreationMethod
}

// Name returns the display name.
func (n NamedColor) Name() string { return n.name }

// ID returns the opaque identifier assigned at construction or restored by decode.
func (n NamedColor) ID() string { return n.id }

// Color returns the resolved colour.
func (n NamedColor) Color() colour.Value { return n.color }

// Method returns how the colour was created.
func (n NamedColor) Method() CreationMethod { return n.method }

// Hex returns the "#RRGGBB" form of the resolved colour.
func (n NamedColor) Hex() string { return colour.ColorToHex(n.color) }

func newNamedColor(name, id string, c colour.Value, m CreationMethod) NamedColor {
	if id == "" {
		id = uuid.NewString()
	}
	return NamedColor{name: name, id: id, color: c, method: m}
}

// FromHex creates a colour from a "#RRGGBB" or "#RRGGBBAA" string. An
// unparsable string yields colour.Clear; the string is still recorded.
func FromHex(name, hex string) NamedColor {
	c, ok := colour.HexToColor(hex)
	if !ok {
		c = colour.Clear
	}
	return newNamedColor(name, "", c, HexLiteral{Hex: hex})
}

// FromColor creates a colour from a value. Values matching a system colour
// within colour.ChannelTolerance are recorded as that system colour.
func FromColor(name string, c colour.Value) NamedColor {
	return fromColor(DefaultRegistry, name, c)
}

func fromColor(reg *Registry, name string, c colour.Value) NamedColor {
	if sys, ok := reg.LookupByValue(c, colour.ChannelTolerance); ok {
		return newNamedColor(name, "", c, SystemColor{Name: sys})
	}
	return newNamedColor(name, "", c, DirectColor{})
}

// FromSystemColor creates a colour from a registry name. An unknown name
// yields colour.Clear; the name is still recorded.
func FromSystemColor(name, systemName string) NamedColor {
	return fromSystemColor(DefaultRegistry, name, "", systemName)
}

func fromSystemColor(reg *Registry, name, id, systemName string) NamedColor {
	c, _ := reg.LookupByName(systemName)
	return newNamedColor(name, id, c, SystemColor{Name: systemName})
}

// FromMix creates a blend of a towards b by fraction in space. The inputs
// are recorded as hex strings (with alpha when translucent) and the blend is
// computed from those strings, so decoding the record yields the same colour.
func FromMix(name string, a, b colour.Value, fraction float64, space colour.Space) NamedColor {
	return fromMixHex(name, "", colour.ColorToHexAlpha(a), colour.ColorToHexAlpha(b), fraction, space)
}

// FromMixHex creates a blend of two hex colours. Either string may be
// unparsable, in which case colour.Clear takes its place.
func FromMixHex(name, baseHex, mixHex string, fraction float64, space colour.Space) NamedColor {
	return fromMixHex(name, "", baseHex, mixHex, fraction, space)
}

func fromMixHex(name, id, baseHex, mixHex string, fraction float64, space colour.Space) NamedColor {
	base, _ := colour.HexToColor(baseHex)
	mix, _ := colour.HexToColor(mixHex)
	return newNamedColor(name, id, colour.Mix(base, mix, fraction, space), MixedColors{
		BaseHex:  baseHex,
		MixHex:   mixHex,
		Fraction: fraction,
		Space:    space,
	})
}

// FromIntensity creates base with the intensity's opacity applied.
func FromIntensity(name string, base colour.Value, intensity Intensity) NamedColor {
	return newNamedColor(name, "", colour.Opacity(base, intensity.Opacity()), IntensityScaled{
		Base:      base,
		Intensity: intensity,
	})
}

// FromSystemIntensity creates a system colour with the intensity's opacity
// applied. An unknown system name resolves to colour.Clear.
func FromSystemIntensity(name, systemName string, intensity Intensity) NamedColor {
	return fromSystemIntensity(DefaultRegistry, name, "", systemName, intensity)
}

func fromSystemIntensity(reg *Registry, name, id, systemName string, intensity Intensity) NamedColor {
	base, _ := reg.LookupByName(systemName)
	return newNamedColor(name, id, colour.Opacity(base, intensity.Opacity()), IntensityScaled{
		BaseName:  systemName,
		Base:      base,
		Intensity: intensity,
	})
}

func fromHexIntensity(name, id, baseHex string, intensity Intensity) NamedColor {
	base, _ := colour.HexToColor(baseHex)
	return newNamedColor(name, id, colour.Opacity(base, intensity.Opacity()), IntensityScaled{
		Base:      base,
		BaseHex:   baseHex,
		Intensity: intensity,
	})
}
