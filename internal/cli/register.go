package cli

import (
	"github.com/arthur-debert/makky/pkg/commands"
	"github.com/spf13/cobra"
)

func newRegisterCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "register <metadata-path> <source> <target>",
		Short:   MsgRegisterShort,
		Long:    MsgRegisterLong,
		Example: MsgRegisterExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := commands.Register(commands.RegisterOptions{
				MetadataPath: args[0],
				Source:       args[1],
				Target:       args[2],
				DryRun:       g.dryRun,
			}); err != nil {
				return err
			}

			if g.dryRun {
				printer, err := g.printer(cmd, "")
				if err != nil {
					return err
				}
				printer.Entry(MsgVerbWouldRegister, args[1], args[2])
				printer.Message(MsgDryRunNotice)
			}
			return nil
		},
	}
}
