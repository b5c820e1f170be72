package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchbook/pkg/colour"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

func newAddCmd(a *app) *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a colour to the library",
		Long: `Add a named colour to the library.

Each subcommand records a different creation method, which is preserved
when the library is exported.

Examples:
  # A hex literal
  swatchbook add hex "Brand Red" "#E63946"

  # A colour value; recorded as a system colour when it matches one
  swatchbook add colour "Sky" skyblue

  # A system colour by name
  swatchbook add system "Warning" orange

  # A mix of two colours
  swatchbook add mix "Dusk" "#FF8000" "#330099" --fraction 0.4 --space perceptual

  # A base colour at reduced intensity
  swatchbook add intensity "Muted Accent" accent --intensity tertiary`,
	}

	addCmd.AddCommand(newAddHexCmd(a))
	addCmd.AddCommand(newAddColourCmd(a))
	addCmd.AddCommand(newAddSystemCmd(a))
	addCmd.AddCommand(newAddMixCmd(a))
	addCmd.AddCommand(newAddIntensityCmd(a))

	return addCmd
}

func newAddHexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hex <name> <#RRGGBB[AA]>",
		Short: "Add a colour from a hex string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := colour.HexToColor(args[1]); !ok {
				return fmt.Errorf("invalid hex colour: %q (expected #RRGGBB or #RRGGBBAA)", args[1])
			}
			return a.addColour(cmd, swatch.FromHex(args[0], args[1]))
		},
	}
}

func newAddColourCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "colour <name> <colour>",
		Aliases: []string{"color"},
		Short:   "Add a colour value (hex or CSS colour name)",
		Long: `Add a colour value. The value may be a hex string or a CSS colour name.
Values that match a system colour are recorded as that system colour.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := colour.ParseColour(args[1])
			if err != nil {
				return err
			}
			return a.addColour(cmd, swatch.FromColor(args[0], v))
		},
	}
}

func newAddSystemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "system <name> <system-colour>",
		Short: "Add a system colour by name",
		Long:  `Add a system colour by name. Run "swatchbook registry" to list them.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			system := strings.ToLower(args[1])
			if _, ok := a.codec.Registry().LookupByName(system); !ok {
				return fmt.Errorf("unknown system colour: %q", args[1])
			}
			return a.addColour(cmd, swatch.FromSystemColor(args[0], system))
		},
	}
}

func newAddMixCmd(a *app) *cobra.Command {
	var (
		fraction float64
		space    colour.Space
	)

	mixCmd := &cobra.Command{
		Use:   "mix <name> <base> <mix>",
		Short: "Add a mix of two colours",
		Long: `Add a colour made by blending <base> towards <mix>. A fraction of 0 gives
the base colour and 1 gives the mix colour. Both colours may be hex strings
or CSS colour names.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := colour.ParseColour(args[1])
			if err != nil {
				return fmt.Errorf("invalid base colour: %w", err)
			}
			mix, err := colour.ParseColour(args[2])
			if err != nil {
				return fmt.Errorf("invalid mix colour: %w", err)
			}
			if fraction < 0 || fraction > 1 {
				return fmt.Errorf("fraction must be between 0 and 1, got %g", fraction)
			}
			if !cmd.Flags().Changed("space") {
				space = a.cfg.Space()
			}
			return a.addColour(cmd, swatch.FromMix(args[0], base, mix, fraction, space))
		},
	}

	mixCmd.Flags().Float64VarP(&fraction, "fraction", "f", 0.5, "blend fraction between 0 and 1")
	mixCmd.Flags().Var(newSpaceValue(colour.SpacePerceptual, &space), "space", "mixing space (device, perceptual; default from config)")

	return mixCmd
}

func newAddIntensityCmd(a *app) *cobra.Command {
	var intensity swatch.Intensity

	intensityCmd := &cobra.Command{
		Use:   "intensity <name> <base>",
		Short: "Add a base colour at a reduced intensity",
		Long: `Add a base colour with an intensity's opacity applied.

<base> may be a system colour name, a hex string or a CSS colour name.
Intensities: primary (100%), secondary (80%), tertiary (60%),
quaternary (40%), quinary (20%).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, base := args[0], args[1]

			if _, ok := a.codec.Registry().LookupByName(strings.ToLower(base)); ok {
				return a.addColour(cmd, swatch.FromSystemIntensity(name, strings.ToLower(base), intensity))
			}

			v, err := colour.ParseColour(base)
			if err != nil {
				return fmt.Errorf("invalid base colour: %w", err)
			}
			return a.addColour(cmd, swatch.FromIntensity(name, v, intensity))
		},
	}

	intensityCmd.Flags().VarP(newIntensityValue(swatch.IntensitySecondary, &intensity), "intensity", "i", "intensity level")

	return intensityCmd
}

// addColour adds n to the library and saves it.
func (a *app) addColour(cmd *cobra.Command, n swatch.NamedColor) error {
	lib, err := a.loadLibrary()
	if err != nil {
		return err
	}
	if err := lib.Add(n); err != nil {
		return err
	}
	if err := a.saveLibrary(lib); err != nil {
		return err
	}

	a.printf(cmd, "Added %q %s (%s)\n", n.Name(), n.Hex(), describeMethod(n.Method()))
	return nil
}
