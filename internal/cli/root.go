package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatchbook/internal/config"
	"github.com/jmylchreest/swatchbook/internal/library"
	"github.com/jmylchreest/swatchbook/internal/logging"
	"github.com/jmylchreest/swatchbook/internal/version"
	"github.com/jmylchreest/swatchbook/pkg/swatch"
)

// app holds state shared by every command in one invocation.
type app struct {
	// Global flags.
	configPath string
	library    string
	preview    string
	verbose    bool
	quiet      bool

	// Resolved in PersistentPreRunE.
	cfg    config.Config
	logger hclog.Logger
	codec  *swatch.Codec
}

// NewRootCmd builds the swatchbook command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "swatchbook",
		Short: "A library of named colours that remember how they were made",
		Long: `Swatchbook keeps a library of named colours. Each colour records how it
was created (a hex literal, a system colour, a mix of two colours, or a
base colour at a reduced intensity) and is exported to JSON in a form that
preserves that recipe, not just the final RGBA value.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: "+config.DefaultPath()+")")
	flags.StringVarP(&a.library, "library", "l", "", "library document (.json, .json.gz or .json.xz)")
	flags.StringVar(&a.preview, "preview", "", "colour previews (auto, always, never)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newRemoveCmd(a))
	rootCmd.AddCommand(newImportCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newEncodeCmd(a))
	rootCmd.AddCommand(newDecodeCmd(a))
	rootCmd.AddCommand(newRegistryCmd(a))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration, logging and the codec for this invocation.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.NewBuilder().
		WithFile(a.configPath).
		WithEnvConfig().
		WithOverride(func(c *config.Config) {
			if a.library != "" {
				c.Library = a.library
			}
			if a.preview != "" {
				c.Preview = config.PreviewMode(a.preview)
			}
		}).
		Build()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New("swatchbook", logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		Quiet:   a.quiet,
		Output:  cmd.ErrOrStderr(),
	})
	a.codec = swatch.NewCodec(nil, a.logger.Named("codec"))

	a.logger.Debug("configuration resolved", "library", cfg.Library, "preview", cfg.Preview)
	return nil
}

func (a *app) loadLibrary() (*library.Library, error) {
	return library.Load(a.cfg.Library, a.codec, a.logger.Named("library"))
}

func (a *app) saveLibrary(lib *library.Library) error {
	return lib.Save(a.cfg.Library)
}

// showPreview reports whether colour blocks should be written to cmd's output.
func (a *app) showPreview(cmd *cobra.Command) bool {
	switch a.cfg.Preview {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printf writes to the command's output unless --quiet is set.
func (a *app) printf(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
