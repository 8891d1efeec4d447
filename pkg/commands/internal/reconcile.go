package internal

import (
	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/filesystem"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/arthur-debert/makky/pkg/metadata"
	"github.com/arthur-debert/makky/pkg/symlink"
)

// Reporter receives progress of link and unlink. *ui.Printer implements it.
type Reporter interface {
	Entry(verb, source, target string)
	Action(kind, source, target string, dryRun bool)
}

// Mode selects what Reconcile does with each entry
type Mode int

const (
	ModeLink Mode = iota
	ModeUnlink
)

func (m Mode) verb() string {
	if m == ModeUnlink {
		return "Removing symlink"
	}
	return "Creating symlink"
}

// Options is shared by link and unlink
type Options struct {
	MetadataPath string
	TargetRoot   string

	// DryRun reports what would change without touching the target root
	DryRun bool

	// ShowActions reports every filesystem change, not just one line per
	// entry. Always on in dry-run mode.
	ShowActions bool

	// FS defaults to the OS filesystem
	FS filesystem.FS

	// Reporter, if set, receives progress
	Reporter Reporter
}

// Result lists the entries processed and the actions taken, in order
type Result struct {
	Entries []metadata.Entry
	Actions []symlink.Action
	DryRun  bool
}

// Reconcile reads and validates all entries, then creates or removes them
// one at a time. It stops at the first failing entry; entries already
// handled stay as they are.
func Reconcile(mode Mode, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.reconcile").With().
		Str("metadata", opts.MetadataPath).
		Str("targetRoot", opts.TargetRoot).
		Bool("dryRun", opts.DryRun).
		Logger()
	done := logging.LogOperationStart(logger, mode.verb())
	defer done()

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	entries, err := metadata.NewStore(fsys).ReadEntries(opts.MetadataPath, opts.TargetRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrLinkReadMetadata, "link: read metadata")
	}

	result := &Result{DryRun: opts.DryRun}
	reconciler := symlink.NewReconciler(fsys, symlink.Options{
		DryRun: opts.DryRun,
		Observer: func(action symlink.Action) {
			result.Actions = append(result.Actions, action)
			if opts.Reporter != nil && (opts.ShowActions || opts.DryRun) {
				opts.Reporter.Action(action.Kind.String(), action.Source, action.Target, action.DryRun)
			}
		},
	})

	for _, entry := range entries {
		if opts.Reporter != nil {
			opts.Reporter.Entry(mode.verb(), entry.SourcePath, entry.TargetPath)
		}

		switch mode {
		case ModeLink:
			if err := reconciler.Create(entry.SourcePath, entry.TargetPath); err != nil {
				return result, errors.Wrapf(err, errors.ErrLinkCreate, "link: create %s -> %s",
					entry.SourcePath, entry.TargetPath)
			}
		case ModeUnlink:
			if err := reconciler.Remove(entry.SourcePath, entry.TargetPath); err != nil {
				return result, errors.Wrapf(err, errors.ErrLinkRemove, "link: remove %s -> %s",
					entry.SourcePath, entry.TargetPath)
			}
		}
		result.Entries = append(result.Entries, entry)
	}

	logger.Info().
		Int("entries", len(result.Entries)).
		Int("actions", len(result.Actions)).
		Msg("Reconciliation finished")
	return result, nil
}
