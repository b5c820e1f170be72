package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatchbook/internal/library"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import colours from a document",
		Long: `Import colours from a JSON document (optionally .gz or .xz compressed).
Colours already in the library are skipped. If any record in the document
is invalid nothing is imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := library.ReadDocument(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			lib, err := a.loadLibrary()
			if err != nil {
				return err
			}

			result, err := lib.Import(data)
			if err != nil {
				return errors.New(decodeFailureMessage(err))
			}
			if result.Added > 0 {
				if err := a.saveLibrary(lib); err != nil {
					return err
				}
			}

			a.printf(cmd, "Imported %s (%s skipped)\n",
				plural(result.Added, "new colour", "new colours"),
				plural(result.Duplicates, "duplicate", "duplicates"))
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the library to a document",
		Long: `Export every colour to a JSON document. The file extension selects
compression (.json, .json.gz, .json.xz). Without a file, or with "-", the
document is written to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.loadLibrary()
			if err != nil {
				return err
			}

			data, err := lib.Export()
			if err != nil {
				return err
			}

			if len(args) == 0 || args[0] == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if err := library.WriteDocument(args[0], data); err != nil {
				return err
			}
			a.printf(cmd, "Exported %s to %s\n", plural(lib.Len(), "colour", "colours"), args[0])
			return nil
		},
	}
}

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [name|id...]",
		Short: "Print the encoded records of library colours",
		Long: `Print the wire records of the given colours. A single colour is printed
as one envelope; several colours, or the whole library when no names are
given, are printed as an array.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.loadLibrary()
			if err != nil {
				return err
			}

			colours := lib.Colours()
			if len(args) > 0 {
				colours = colours[:0:0]
				for _, key := range args {
					n, ok := lib.Find(key)
					if !ok {
						return fmt.Errorf("colour not found: %s", key)
					}
					colours = append(colours, n)
				}
			}

			var data []byte
			if len(args) == 1 {
				data, err = a.codec.Marshal(colours[0])
			} else {
				data, err = a.codec.MarshalAll(colours)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a colour document without importing it",
		Long: `Decode a colour document and list what it contains. Reads stdin when no
file, or "-", is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = library.ReadDocument(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}

			colours, err := a.codec.UnmarshalAll(data)
			if err != nil {
				return errors.New(decodeFailureMessage(err))
			}

			fmt.Fprint(cmd.OutOrStdout(), colourTable(colours, a.showPreview(cmd)).Render())
			return nil
		},
	}
}

// decodeFailureMessage turns a decode error into a single readable line.
func decodeFailureMessage(err error) string {
	var de *swatch.DecodeError
	switch {
	case errors.Is(err, swatch.ErrUnknownEncoding) && errors.As(err, &de):
		return fmt.Sprintf("the document uses an unsupported colour encoding %q", de.Encoding)
	case errors.Is(err, swatch.ErrMalformedRecord) && errors.As(err, &de):
		return fmt.Sprintf("the document contains an incomplete colour record (missing %s)", de.Field)
	default:
		return fmt.Sprintf("the document could not be read: %v", err)
	}
}
