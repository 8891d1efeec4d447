package symlink

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/filesystem"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/arthur-debert/makky/pkg/paths"
	"github.com/rs/zerolog"
)

// Options configures a Reconciler
type Options struct {
	// DryRun reports actions without performing them
	DryRun bool

	// Observer, if set, is called for each action
	Observer Observer
}

// Reconciler creates and removes links between absolute source and target
// paths
type Reconciler struct {
	fs       filesystem.FS
	dryRun   bool
	observer Observer
	logger   zerolog.Logger
}

// NewReconciler creates a reconciler working through fsys
func NewReconciler(fsys filesystem.FS, opts Options) *Reconciler {
	return &Reconciler{
		fs:       fsys,
		dryRun:   opts.DryRun,
		observer: opts.Observer,
		logger:   logging.GetLogger("symlink").With().Bool("dry_run", opts.DryRun).Logger(),
	}
}

// Inspect classifies source and target without changing anything. An
// occupied target is returned as an ErrTargetOccupied error.
func (r *Reconciler) Inspect(source, target string) (State, error) {
	sourceKind := r.pathKind(source)
	relation, err := r.relate(source, target)
	if err != nil {
		return State{}, err
	}

	kind, exists, ok := classify(sourceKind, relation)
	r.logger.Debug().
		Str("source", source).
		Str("target", target).
		Stringer("source_kind", sourceKind).
		Stringer("relation", relation).
		Msg("Classified target")
	if !ok {
		return State{}, errors.Newf(errors.ErrTargetOccupied, "target occupied: %s", target).
			WithDetail("target", target).
			WithDetail("relation", relation.String())
	}

	return State{Kind: kind, Source: source, Target: target, TargetExists: exists}, nil
}

// Create makes target a link to source. A file source becomes a single
// symlink; a directory source becomes a real directory whose children are
// created recursively.
func (r *Reconciler) Create(source, target string) error {
	state, err := r.Inspect(source, target)
	if err != nil {
		return err
	}

	switch state.Kind {
	case StateEquals:
		return nil
	case StateVacantFile:
		if state.TargetExists {
			if err := r.unlink(state.Source, state.Target); err != nil {
				return err
			}
		}
		return r.createFile(state.Source, state.Target)
	case StateVacantDirectory:
		return r.createDirectory(state.Source, state.Target, state.TargetExists)
	}
	return nil
}

// Remove undoes Create. Only symlinks resolving into the source tree are
// removed; foreign files and every directory stay in place.
func (r *Reconciler) Remove(source, target string) error {
	state, err := r.Inspect(source, target)
	if err != nil {
		return err
	}

	switch state.Kind {
	case StateEquals:
		return r.unlink(source, target)
	case StateVacantFile:
		if state.TargetExists {
			return r.unlink(source, target)
		}
	case StateVacantDirectory:
		return r.removeDirectoryEntries(source, target)
	}
	return nil
}

func (r *Reconciler) createDirectory(source, target string, exists bool) error {
	if !exists {
		r.notify(Action{Kind: ActionCreateDirectory, Target: target})
		if !r.dryRun {
			if err := r.fs.MkdirAll(target, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrCreateTargetDirectory, "create target directory: %s", target)
			}
		}
	}

	children, err := r.readDir(source)
	if err != nil {
		return err
	}
	for _, child := range children {
		name := child.Name()
		if err := r.Create(filepath.Join(source, name), filepath.Join(target, name)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) createFile(source, target string) error {
	parent := filepath.Dir(target)
	if _, err := r.fs.Stat(parent); err != nil && !r.dryRun {
		if err := r.fs.MkdirAll(parent, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrCreateParent, "create parent directory for %s", target)
		}
	}

	r.notify(Action{Kind: ActionCreateLink, Source: source, Target: target})
	if r.dryRun {
		return nil
	}
	if err := r.fs.Symlink(source, target); err != nil {
		return errors.Wrapf(err, errors.ErrCreateSymlink, "create new symlink: %s -> %s", source, target)
	}
	return nil
}

func (r *Reconciler) unlink(source, target string) error {
	r.notify(Action{Kind: ActionRemoveLink, Source: source, Target: target})
	if r.dryRun {
		return nil
	}
	if err := r.fs.Remove(target); err != nil {
		return errors.Wrapf(err, errors.ErrUnlink, "unlink: %s", target)
	}
	return nil
}

// removeDirectoryEntries walks an existing target directory. Symlinks that
// resolve under source are removed, and real subdirectories are descended
// when source has a directory of the same name.
func (r *Reconciler) removeDirectoryEntries(source, target string) error {
	if _, err := r.fs.Lstat(target); err != nil {
		return nil
	}

	children, err := r.readDir(target)
	if err != nil {
		return err
	}

	resolvedSource, err := r.fs.EvalSymlinks(source)
	if err != nil {
		resolvedSource = source
	}

	for _, child := range children {
		childTarget := filepath.Join(target, child.Name())
		info, err := r.fs.Lstat(childTarget)
		if err != nil {
			continue
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			resolved, err := r.fs.EvalSymlinks(childTarget)
			if err != nil {
				return errors.Wrapf(err, errors.ErrCanonicalizeTarget, "canonicalize target: %s", childTarget)
			}
			if !paths.IsWithin(source, resolved) && !paths.IsWithin(resolvedSource, resolved) {
				r.logger.Debug().Str("target", childTarget).Str("resolved", resolved).Msg("Leaving foreign symlink")
				continue
			}
			if err := r.Remove(resolved, childTarget); err != nil {
				return err
			}
		case info.IsDir():
			childSource := filepath.Join(source, child.Name())
			if r.pathKind(childSource) != KindDirectory {
				continue
			}
			if err := r.removeDirectoryEntries(childSource, childTarget); err != nil {
				return err
			}
		}
	}
	return nil
}

// relate classifies target relative to source. A target that cannot be
// stat'ed counts as absent; the mutation that follows reports the failure.
// A symlink that cannot be resolved, dangling ones included, is an error.
func (r *Reconciler) relate(source, target string) (TargetRelation, error) {
	info, err := r.fs.Lstat(target)
	if err != nil {
		return TargetRelation{Relation: NotPresent}, nil
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		kind := KindFile
		if info.IsDir() {
			kind = KindDirectory
		}
		return TargetRelation{Relation: Occupied, Kind: kind}, nil
	}

	resolved, err := r.fs.EvalSymlinks(target)
	if err != nil {
		return TargetRelation{}, errors.Wrapf(err, errors.ErrCanonicalizeTarget, "canonicalize target: %s", target)
	}
	if r.resolvesTo(resolved, source) {
		return TargetRelation{Relation: Equals}, nil
	}
	return TargetRelation{Relation: PointsTo, Kind: r.pathKind(resolved)}, nil
}

// resolvesTo compares a resolved target with source as given and, when it
// resolves, with source's own resolution
func (r *Reconciler) resolvesTo(resolved, source string) bool {
	if resolved == filepath.Clean(source) {
		return true
	}
	if resolvedSource, err := r.fs.EvalSymlinks(source); err == nil {
		return resolved == resolvedSource
	}
	return false
}

func (r *Reconciler) pathKind(path string) PathKind {
	if info, err := r.fs.Stat(path); err == nil && info.IsDir() {
		return KindDirectory
	}
	return KindFile
}

func (r *Reconciler) readDir(path string) ([]fs.DirEntry, error) {
	entries, err := r.fs.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrReadDirectory, "read directory: %s", path)
	}
	return entries, nil
}

func (r *Reconciler) notify(action Action) {
	action.DryRun = r.dryRun
	event := r.logger.Info()
	if r.dryRun {
		event = r.logger.Debug()
	}
	event.Stringer("action", action.Kind).
		Str("source", action.Source).
		Str("target", action.Target).
		Msg("Reconciling")
	if r.observer != nil {
		r.observer(action)
	}
}
