package cli

import (
	"fmt"

	"github.com/jmylchreest/swatchbook/pkg/colour"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

// describeMethod renders a creation method for display.
func describeMethod(m swatch.CreationMethod) string {
	switch m := m.(type) {
	case swatch.HexLiteral:
		return "hex " + m.Hex
	case swatch.SystemColor:
		return "system " + m.Name
	case swatch.MixedColors:
		return fmt.Sprintf("mix %s + %s @ %.2f (%s)", m.BaseHex, m.MixHex, m.Fraction, m.Space)
	case swatch.IntensityScaled:
		base := m.BaseName
		if base == "" {
			base = m.BaseHex
		}
		if base == "" {
			base = colour.ColorToHexAlpha(m.Base)
		}
		return fmt.Sprintf("%s of %s", m.Intensity, base)
	default:
		return "direct"
	}
}

// shortID trims an id for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}

// colourTable builds the standard listing table for colours.
func colourTable(colours []swatch.NamedColor, preview bool) *Table {
	table := NewTable([]string{"NAME", "HEX", "ALPHA", "METHOD", "ID"})
	table.SetColumnMaxWidth(0, 32)
	if preview {
		table.EnableSwatches(previewWidth)
	}

	for _, c := range colours {
		row := []string{
			c.Name(),
			c.Hex(),
			fmt.Sprintf("%.2f", c.Color().A),
			describeMethod(c.Method()),
			shortID(c.ID()),
		}
		if preview {
			table.AddSwatchRow(colour.Preview(c.Color(), previewWidth), row)
		} else {
			table.AddRow(row)
		}
	}
	return table
}

const previewWidth = 6
