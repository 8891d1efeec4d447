package unlink

import (
	"github.com/arthur-debert/makky/pkg/commands/internal"
	"github.com/arthur-debert/makky/pkg/logging"
)

// Options defines the options for the Unlink command.
type Options = internal.Options

// Unlink removes the links declared in the metadata file. Only symlinks
// resolving into an entry's source are removed; directories created by
// link stay.
func Unlink(opts Options) (*internal.Result, error) {
	log := logging.GetLogger("commands.unlink")
	log.Debug().Str("command", "Unlink").Msg("Executing command")

	result, err := internal.Reconcile(internal.ModeUnlink, opts)
	if err != nil {
		log.Error().Err(err).Msg("Unlink failed")
		return result, err
	}

	log.Info().Str("command", "Unlink").Msg("Command finished")
	return result, nil
}
