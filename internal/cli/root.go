package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/makky/internal/version"
	"github.com/arthur-debert/makky/pkg/config"
	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/arthur-debert/makky/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globals holds the values of the persistent flags and the configuration
// loaded from them
type globals struct {
	verbosity  int
	dryRun     bool
	configFile string

	cfg *config.Config
}

// config loads the configuration on first use. Commands that do not need
// it (version, completion) never fail on a broken config file.
func (g *globals) config() (*config.Config, error) {
	if g.cfg != nil {
		return g.cfg, nil
	}
	cfg, err := config.Load(config.LoadOptions{ConfigFile: g.configFile})
	if err != nil {
		return nil, err
	}
	g.cfg = cfg
	return cfg, nil
}

// optionalConfig is config for settings that have a usable default. A
// configuration that fails to load is logged and nil is returned, so that
// fully specified commands keep working.
func (g *globals) optionalConfig() *config.Config {
	cfg, err := g.config()
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring configuration, using defaults")
		return nil
	}
	return cfg
}

// printer builds a printer for cmd. An empty format falls back to
// output.format, then to auto.
func (g *globals) printer(cmd *cobra.Command, format string) (*ui.Printer, error) {
	if format == "" {
		if cfg := g.optionalConfig(); cfg != nil {
			format = cfg.Output.Format
		}
	}
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrBadFormat)
	}
	return ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), f), nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "makky",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newLinkCmd(g))
	rootCmd.AddCommand(newUnlinkCmd(g))
	rootCmd.AddCommand(newRegisterCmd(g))
	rootCmd.AddCommand(newStatusCmd(g))
	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// Execute runs makky with args and returns the process exit code. A failure
// is reported as a single "Error: ..." line on stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Command failed")
		ui.NewPrinter(stdout, stderr, ui.FormatAuto).Error(err)
		return 1
	}
	return 0
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    `Print detailed version information including commit hash and build date`,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}
