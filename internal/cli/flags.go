package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatchbook/pkg/colour"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

// spaceValue is a pflag.Value for colour.Space.
type spaceValue struct {
	space *colour.Space
}

var _ pflag.Value = (*spaceValue)(nil)

func newSpaceValue(def colour.Space, p *colour.Space) *spaceValue {
	*p = def
	return &spaceValue{space: p}
}

func (v *spaceValue) String() string {
	if v.space == nil {
		return colour.SpacePerceptual.String()
	}
	return v.space.String()
}

func (v *spaceValue) Set(s string) error {
	space, ok := colour.ParseSpace(s)
	if !ok {
		return fmt.Errorf("invalid colour space %q (valid: device, perceptual)", s)
	}
	*v.space = space
	return nil
}

func (v *spaceValue) Type() string {
	return "space"
}

// intensityValue is a pflag.Value for swatch.Intensity.
type intensityValue struct {
	intensity *swatch.Intensity
}

var _ pflag.Value = (*intensityValue)(nil)

func newIntensityValue(def swatch.Intensity, p *swatch.Intensity) *intensityValue {
	*p = def
	return &intensityValue{intensity: p}
}

func (v *intensityValue) String() string {
	if v.intensity == nil {
		return swatch.IntensityPrimary.String()
	}
	return v.intensity.String()
}

func (v *intensityValue) Set(s string) error {
	i, err := swatch.ParseIntensity(s)
	if err != nil {
		return fmt.Errorf("%w (valid: primary, secondary, tertiary, quaternary, quinary)", err)
	}
	*v.intensity = i
	return nil
}

func (v *intensityValue) Type() string {
	return "intensity"
}
