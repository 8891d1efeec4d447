package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arthur-debert/makky/pkg/commands"
	"github.com/spf13/cobra"
)

func newWatchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "watch [metadata-path] [target-root]",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadataPath, targetRoot, err := g.location(args)
			if err != nil {
				return err
			}
			var debounce time.Duration
			if cfg := g.optionalConfig(); cfg != nil {
				debounce = cfg.Watch.Debounce
			}
			printer, err := g.printer(cmd, "")
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return commands.Watch(ctx, commands.WatchOptions{
				MetadataPath: metadataPath,
				Debounce:     debounce,
				Run: func() error {
					_, err := commands.Link(commands.LinkOptions{
						MetadataPath: metadataPath,
						TargetRoot:   targetRoot,
						DryRun:       g.dryRun,
						ShowActions:  g.verbosity > 0,
						Reporter:     printer,
					})
					return err
				},
				OnError: printer.Error,
				OnReady: func() {
					printer.Message(MsgWatching, metadataPath)
				},
			})
		},
	}
}
