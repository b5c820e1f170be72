package swatch

import (
	"fmt"
)

// Intensity is a named opacity level applied to a base colour.
// Levels are ordered from most to least opaque.
type Intensity int

const (
	IntensityPrimary Intensity = iota
	IntensitySecondary
	IntensityTertiary
	IntensityQuaternary
	IntensityQuinary
)

var intensityNames = [...]string{"primary", "secondary", "tertiary", "quaternary", "quinary"}

var intensityOpacities = [...]float64{1.0, 0.8, 0.6, 0.4, 0.2}

// Intensities returns every level in order of decreasing opacity.
func Intensities() []Intensity {
	return []Intensity{
		IntensityPrimary,
		IntensitySecondary,
		IntensityTertiary,
		IntensityQuaternary,
		IntensityQuinary,
	}
}

// Valid reports whether i is one of the five defined levels.
func (i Intensity) Valid() bool {
	return i >= IntensityPrimary && i <= IntensityQuinary
}

// Opacity returns the alpha multiplier for the level.
func (i Intensity) Opacity() float64 {
	if !i.Valid() {
		return 1.0
	}
	return intensityOpacities[i]
}

// String returns the wire name of the level.
func (i Intensity) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Intensity(%d)", int(i))
	}
	return intensityNames[i]
}

// ParseIntensity parses a level name as produced by String.
func ParseIntensity(s string) (Intensity, error) {
	for i, name := range intensityNames {
		if name == s {
			return Intensity(i), nil
		}
	}
	return IntensityPrimary, fmt.Errorf("unknown intensity: %q", s)
}
