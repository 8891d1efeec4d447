package cli

import (
	"github.com/arthur-debert/makky/pkg/commands"
	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd(g *globals) *cobra.Command {
	var (
		format string
		check  bool
	)

	cmd := &cobra.Command{
		Use:     "status [metadata-path] [target-root]",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadataPath, targetRoot, err := g.location(args)
			if err != nil {
				return err
			}
			printer, err := g.printer(cmd, format)
			if err != nil {
				return err
			}

			report, err := commands.Status(commands.StatusOptions{
				MetadataPath: metadataPath,
				TargetRoot:   targetRoot,
			})
			if err != nil {
				return err
			}
			if err := printer.Status(*report); err != nil {
				return err
			}

			if check && !report.Healthy() {
				counts := report.Counts()
				return errors.Newf(errors.ErrStatusUnhealthy, MsgErrUnhealthy,
					counts[ui.StatusConflict]+counts[ui.StatusError]).
					WithDetail("conflict", counts[ui.StatusConflict]).
					WithDetail("error", counts[ui.StatusError])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)
	return cmd
}
