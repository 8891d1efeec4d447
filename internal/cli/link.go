package cli

import (
	"github.com/arthur-debert/makky/pkg/commands"
	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/spf13/cobra"
)

// location resolves the optional [metadata-path] [target-root] arguments,
// falling back to the configuration for whatever is missing
func (g *globals) location(args []string) (metadataPath, targetRoot string, err error) {
	if len(args) > 0 {
		metadataPath = args[0]
	}
	if len(args) > 1 {
		targetRoot = args[1]
	}
	if metadataPath != "" && targetRoot != "" {
		return metadataPath, targetRoot, nil
	}

	cfg, err := g.config()
	if err != nil {
		return "", "", err
	}
	if metadataPath == "" {
		metadataPath = cfg.Metadata.Path
	}
	if targetRoot == "" {
		targetRoot = cfg.Link.TargetRoot
	}

	if metadataPath == "" {
		return "", "", errors.New(errors.ErrInvalidInput, MsgErrNoMetadata)
	}
	if targetRoot == "" {
		return "", "", errors.New(errors.ErrInvalidInput, MsgErrNoTargetRoot)
	}
	return metadataPath, targetRoot, nil
}

func newLinkCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "link [metadata-path] [target-root]",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.reconcile(cmd, args, false)
		},
	}
}

func newUnlinkCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "unlink [metadata-path] [target-root]",
		Short:   MsgUnlinkShort,
		Long:    MsgUnlinkLong,
		Example: MsgUnlinkExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.reconcile(cmd, args, true)
		},
	}
}

// reconcile runs link or unlink for the resolved location
func (g *globals) reconcile(cmd *cobra.Command, args []string, remove bool) error {
	logger := logging.GetLogger("cli." + cmd.Name())

	metadataPath, targetRoot, err := g.location(args)
	if err != nil {
		return err
	}
	printer, err := g.printer(cmd, "")
	if err != nil {
		return err
	}

	logger.Info().
		Str("metadata", metadataPath).
		Str("targetRoot", targetRoot).
		Bool("dryRun", g.dryRun).
		Msg("Reconciling entries")

	opts := commands.LinkOptions{
		MetadataPath: metadataPath,
		TargetRoot:   targetRoot,
		DryRun:       g.dryRun,
		ShowActions:  g.verbosity > 0,
		Reporter:     printer,
	}

	var result *commands.Result
	if remove {
		result, err = commands.Unlink(opts)
	} else {
		result, err = commands.Link(opts)
	}
	if err != nil {
		return err
	}

	if result.DryRun {
		printer.Message(MsgDryRunNotice)
	}
	return nil
}
