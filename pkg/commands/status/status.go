package status

import (
	"path/filepath"

	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/filesystem"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/arthur-debert/makky/pkg/metadata"
	"github.com/arthur-debert/makky/pkg/symlink"
	"github.com/arthur-debert/makky/pkg/ui"
)

// Options defines the options for the Status command.
type Options struct {
	MetadataPath string
	TargetRoot   string
	// FS defaults to the OS filesystem
	FS filesystem.FS
}

// Status inspects every entry and reports what link would do with it.
// Unlike link, invalid entries do not fail the whole report; each is shown
// with the reason it would be rejected.
func Status(opts Options) (*ui.StatusReport, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "Status").Msg("Executing command")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	store := metadata.NewStore(fsys)

	if err := store.CheckTargetRoot(opts.TargetRoot); err != nil {
		return nil, errors.Wrap(err, errors.ErrLinkReadMetadata, "status: read metadata")
	}
	pairs, err := store.ReadPairs(opts.MetadataPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLinkReadMetadata, "status: read metadata")
	}

	report := &ui.StatusReport{
		MetadataPath: opts.MetadataPath,
		TargetRoot:   opts.TargetRoot,
	}
	reconciler := symlink.NewReconciler(fsys, symlink.Options{})
	duplicates := metadata.DuplicateTargets(pairs)

	for i, pair := range pairs {
		line := ui.EntryStatus{
			Source: pair.Source(),
			Target: filepath.Join(opts.TargetRoot, pair.Target()),
		}

		if dupErr, ok := duplicates[i]; ok {
			line.Status = ui.StatusConflict
			line.Detail = dupErr.Error()
			report.Entries = append(report.Entries, line)
			continue
		}

		entry, err := store.BuildEntry(pair, opts.TargetRoot)
		if err != nil {
			line.Status = ui.StatusError
			if errors.IsErrorCode(err, errors.ErrEntryTargetExists) {
				line.Status = ui.StatusConflict
			}
			line.Detail = err.Error()
			report.Entries = append(report.Entries, line)
			continue
		}

		line.Status, line.Detail = inspect(reconciler, entry)
		report.Entries = append(report.Entries, line)
	}

	log.Info().
		Str("command", "Status").
		Int("entries", len(report.Entries)).
		Msg("Command finished")
	return report, nil
}

func inspect(r *symlink.Reconciler, entry metadata.Entry) (ui.Status, string) {
	state, err := r.Inspect(entry.SourcePath, entry.TargetPath)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrTargetOccupied) {
			return ui.StatusConflict, err.Error()
		}
		return ui.StatusError, err.Error()
	}

	switch state.Kind {
	case symlink.StateEquals:
		return ui.StatusLinked, ""
	case symlink.StateVacantFile:
		if state.TargetExists {
			return ui.StatusStale, "links elsewhere"
		}
		return ui.StatusPending, ""
	case symlink.StateVacantDirectory:
		if state.TargetExists {
			return ui.StatusMerged, "existing directory"
		}
		return ui.StatusPending, ""
	}
	return ui.StatusError, "unknown state " + state.Kind.String()
}
