package link

import (
	"github.com/arthur-debert/makky/pkg/commands/internal"
	"github.com/arthur-debert/makky/pkg/logging"
)

// Options defines the options for the Link command.
type Options = internal.Options

// Result is what Link did.
type Result = internal.Result

// Link creates every link declared in the metadata file under the target
// root. Nothing is touched unless every entry validates.
func Link(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "Link").Msg("Executing command")

	result, err := internal.Reconcile(internal.ModeLink, opts)
	if err != nil {
		log.Error().Err(err).Msg("Link failed")
		return result, err
	}

	log.Info().Str("command", "Link").Msg("Command finished")
	return result, nil
}
