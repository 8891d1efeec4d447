package register

import (
	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/filesystem"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/arthur-debert/makky/pkg/metadata"
)

// Options defines the options for the Register command.
type Options struct {
	MetadataPath string
	// Source must be absolute; it does not have to exist yet
	Source string
	// Target is relative to whatever target root link is later run with
	Target string
	// DryRun validates the entry without writing it
	DryRun bool
	// FS defaults to the OS filesystem
	FS filesystem.FS
}

// Register appends a new entry to the metadata file
func Register(opts Options) error {
	log := logging.GetLogger("commands.register")
	log.Debug().Str("command", "Register").Msg("Executing command")

	entry, err := metadata.CreateNewEntry(opts.Source, opts.Target)
	if err != nil {
		return errors.Wrap(err, errors.ErrRegisterCreate, "register: create new entry")
	}

	if opts.DryRun {
		log.Info().
			Str("source", entry.Source()).
			Str("target", entry.Target()).
			Msg("Dry run, entry not written")
		return nil
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if err := metadata.NewStore(fsys).WriteEntry(opts.MetadataPath, entry); err != nil {
		return errors.Wrap(err, errors.ErrRegisterWrite, "register: write new entry")
	}

	log.Info().
		Str("source", entry.Source()).
		Str("target", entry.Target()).
		Msg("Entry registered")
	return nil
}
