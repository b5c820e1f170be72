package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchbook/pkg/colour"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List colours in the library",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := a.loadLibrary()
			if err != nil {
				return err
			}

			if lib.Len() == 0 {
				a.printf(cmd, "Library %s is empty\n", a.cfg.Library)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), colourTable(lib.Colours(), a.showPreview(cmd)).Render())
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Show a colour and its encoded record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.loadLibrary()
			if err != nil {
				return err
			}

			n, ok := lib.Find(args[0])
			if !ok {
				return fmt.Errorf("colour not found: %s", args[0])
			}

			data, err := a.codec.Marshal(n)
			if err != nil {
				return err
			}

			c := n.Color()
			out := cmd.OutOrStdout()
			if a.showPreview(cmd) {
				fmt.Fprintln(out, colour.PreviewWithText(c, n.Hex(), 16))
			}
			fmt.Fprintf(out, "Name:     %s\n", n.Name())
			fmt.Fprintf(out, "ID:       %s\n", n.ID())
			fmt.Fprintf(out, "Colour:   %s (alpha %.3f)\n", n.Hex(), c.A)
			fmt.Fprintf(out, "Channels: %.4f %.4f %.4f %.4f\n", c.R, c.G, c.B, c.A)
			fmt.Fprintf(out, "Method:   %s\n", describeMethod(n.Method()))
			fmt.Fprintf(out, "Contrast: %.2f on white, %.2f on black\n",
				colour.ContrastRatio(c, colour.RGBA(1, 1, 1, 1)),
				colour.ContrastRatio(c, colour.RGBA(0, 0, 0, 1)))
			fmt.Fprintf(out, "Record:   %s\n", data)
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name|id>",
		Aliases: []string{"rm"},
		Short:   "Remove a colour from the library",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.loadLibrary()
			if err != nil {
				return err
			}

			removed, err := lib.Remove(args[0])
			if err != nil {
				return err
			}
			if err := a.saveLibrary(lib); err != nil {
				return err
			}

			a.printf(cmd, "Removed %q %s\n", removed.Name(), removed.Hex())
			return nil
		},
	}
}

func newRegistryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "List the system colours",
		Long: `List the system colours in lookup order. A colour value that matches
several entries within tolerance resolves to the first one listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			preview := a.showPreview(cmd)

			table := NewTable([]string{"NAME", "HEX", "ALPHA"})
			if preview {
				table.EnableSwatches(previewWidth)
			}
			for _, e := range a.codec.Registry().Entries() {
				row := []string{e.Name, colour.ColorToHex(e.Value), fmt.Sprintf("%.2f", e.Value.A)}
				if preview {
					table.AddSwatchRow(colour.Preview(e.Value, previewWidth), row)
				} else {
					table.AddRow(row)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}
