package swatch

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatchbook/pkg/colour"
)

// Codec converts between NamedColor values and wire records. A Codec holds
// no mutable state and is safe for concurrent use.
type Codec struct {
	registry *Registry
	logger   hclog.Logger
}

// NewCodec returns a codec using registry for system colour lookups and
// logger for diagnostics about recoverable data problems. Nil arguments
// select DefaultRegistry and a null logger.
func NewCodec(registry *Registry, logger hclog.Logger) *Codec {
	if registry == nil {
		registry = DefaultRegistry
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Codec{registry: registry, logger: logger}
}

var defaultCodec = NewCodec(nil, nil)

// Encode converts n to a record using the default codec.
func Encode(n NamedColor) Record {
	return defaultCodec.Encode(n)
}

// Decode reconstructs a NamedColor from r using the default codec.
func Decode(r Record) (NamedColor, error) {
	return defaultCodec.Decode(r)
}

// Registry returns the registry the codec resolves system colours with.
func (c *Codec) Registry() *Registry {
	return c.registry
}

// Encode selects the record shape from n's creation method. Colours without
// explicit metadata are recorded as a system colour when one matches within
// colour.ChannelTolerance, and as a hex snapshot otherwise.
func (c *Codec) Encode(n NamedColor) Record {
	rec := Record{Name: ptr(n.name), ID: n.id}

	switch m := n.method.(type) {
	case HexLiteral:
		rec.Encoding = EncodingHexString
		rec.HexString = ptr(m.Hex)

	case SystemColor:
		rec.Encoding = EncodingSystemColor
		rec.SystemColorName = ptr(m.Name)

	case MixedColors:
		rec.Encoding = EncodingMixedColors
		rec.BaseHexString = ptr(m.BaseHex)
		rec.MixHexString = ptr(m.MixHex)
		rec.MixFraction = ptr(m.Fraction)
		rec.ColorSpace = ptr(m.Space.String())

	case IntensityScaled:
		rec.Encoding = EncodingColorWithIntensity
		rec.Intensity = ptr(m.Intensity.String())
		switch {
		case m.BaseName != "":
			rec.BaseSystemColorName = ptr(m.BaseName)
		case m.BaseHex != "":
			rec.BaseColorHex = ptr(m.BaseHex)
		default:
			if sys, ok := c.registry.LookupByValue(m.Base, colour.ChannelTolerance); ok {
				rec.BaseSystemColorName = ptr(sys)
			} else {
				rec.BaseColorHex = ptr(colour.ColorToHexAlpha(m.Base))
			}
		}

	default:
		c.inferInto(&rec, n.color)
	}

	return rec
}

// inferInto fills rec for a colour whose creation method carries no
// encodable metadata.
func (c *Codec) inferInto(rec *Record, v colour.Value) {
	if sys, ok := c.registry.LookupByValue(v, colour.ChannelTolerance); ok {
		rec.Encoding = EncodingSystemColor
		rec.SystemColorName = ptr(sys)
		return
	}
	rec.Encoding = EncodingHexString
	rec.HexString = ptr(colour.ColorToHexAlpha(v))
}

// Decode reconstructs the colour and creation method recorded in r.
//
// Unparsable hex strings and unknown system colour names resolve to
// colour.Clear without failing. An empty name is valid. A missing or null
// name, a missing encoding or a
// missing required field returns a *DecodeError wrapping
// ErrMalformedRecord; an unrecognised encoding wraps ErrUnknownEncoding.
func (c *Codec) Decode(r Record) (NamedColor, error) {
	if r.Encoding == "" {
		return NamedColor{}, malformed("", "encoding")
	}
	if !r.Encoding.Known() {
		return NamedColor{}, unknownEncoding(r.Encoding)
	}
	if r.Name == nil {
		return NamedColor{}, malformed(r.Encoding, "name")
	}

	switch name := *r.Name; r.Encoding {
	case EncodingHexString:
		return c.decodeHex(name, r)
	case EncodingSystemColor:
		return c.decodeSystem(name, r)
	case EncodingMixedColors:
		return c.decodeMixed(name, r)
	default:
		return c.decodeIntensity(name, r)
	}
}

func (c *Codec) decodeHex(name string, r Record) (NamedColor, error) {
	if r.HexString == nil {
		return NamedColor{}, malformed(r.Encoding, "hexString")
	}
	hex := *r.HexString
	v, ok := colour.HexToColor(hex)
	if !ok {
		c.logger.Warn("invalid hex colour, using clear", "name", name, "hex", hex)
	}
	return newNamedColor(name, r.ID, v, HexLiteral{Hex: hex}), nil
}

func (c *Codec) decodeSystem(name string, r Record) (NamedColor, error) {
	if r.SystemColorName == nil {
		return NamedColor{}, malformed(r.Encoding, "systemColorName")
	}
	system := *r.SystemColorName
	c.checkSystemName(name, system)
	return fromSystemColor(c.registry, name, r.ID, system), nil
}

func (c *Codec) decodeMixed(name string, r Record) (NamedColor, error) {
	switch {
	case r.BaseHexString == nil:
		return NamedColor{}, malformed(r.Encoding, "baseHexString")
	case r.MixHexString == nil:
		return NamedColor{}, malformed(r.Encoding, "mixHexString")
	case r.MixFraction == nil:
		return NamedColor{}, malformed(r.Encoding, "mixFraction")
	}

	space := colour.SpacePerceptual
	if r.ColorSpace != nil {
		var ok bool
		if space, ok = colour.ParseSpace(*r.ColorSpace); !ok {
			c.logger.Debug("unknown colour space, using perceptual", "name", name, "space", *r.ColorSpace)
		}
	}

	for _, hex := range []string{*r.BaseHexString, *r.MixHexString} {
		if _, ok := colour.HexToColor(hex); !ok {
			c.logger.Warn("invalid hex colour in mix, using clear", "name", name, "hex", hex)
		}
	}

	return fromMixHex(name, r.ID, *r.BaseHexString, *r.MixHexString, *r.MixFraction, space), nil
}

func (c *Codec) decodeIntensity(name string, r Record) (NamedColor, error) {
	if r.Intensity == nil {
		return NamedColor{}, malformed(r.Encoding, "intensity")
	}
	intensity, err := ParseIntensity(*r.Intensity)
	if err != nil {
		return NamedColor{}, malformed(r.Encoding, "intensity")
	}

	switch {
	case r.BaseSystemColorName != nil && *r.BaseSystemColorName != "":
		system := *r.BaseSystemColorName
		c.checkSystemName(name, system)
		return fromSystemIntensity(c.registry, name, r.ID, system, intensity), nil

	case r.BaseColorHex != nil && *r.BaseColorHex != "":
		hex := *r.BaseColorHex
		if _, ok := colour.HexToColor(hex); !ok {
			c.logger.Warn("invalid base hex colour, using clear", "name", name, "hex", hex)
		}
		return fromHexIntensity(name, r.ID, hex, intensity), nil

	default:
		return NamedColor{}, malformed(r.Encoding, "baseSystemColorName|baseColorHex")
	}
}

func (c *Codec) checkSystemName(colourName, systemName string) {
	if _, ok := c.registry.LookupByName(systemName); !ok {
		c.logger.Warn("unknown system colour, using clear", "name", colourName, "system", systemName)
	}
}
