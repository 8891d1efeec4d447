package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when Options.Debounce is zero
const DefaultDebounce = 300 * time.Millisecond

// Options defines the options for the Watch command.
type Options struct {
	MetadataPath string

	// Debounce is how long the file must stay quiet before Run is called
	Debounce time.Duration

	// Run is called once at start and after every settled change
	Run func() error

	// OnError, if set, receives errors returned by Run. Watching continues.
	OnError func(error)

	// OnReady, if set, is called once the watcher is in place and the
	// initial run is done
	OnReady func()
}

// Watch calls opts.Run whenever the metadata file changes until ctx is
// cancelled. Runs never overlap. The containing directory is watched so
// that editors replacing the file by rename are noticed too.
func Watch(ctx context.Context, opts Options) error {
	logger := logging.GetLogger("commands.watch").With().
		Str("metadata", opts.MetadataPath).
		Logger()

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	target, err := filepath.Abs(opts.MetadataPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "watch: %s", opts.MetadataPath)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "watch: create watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "watch: %s", filepath.Dir(target))
	}

	run := func() {
		if err := opts.Run(); err != nil {
			logger.Warn().Err(err).Msg("Run failed")
			if opts.OnError != nil {
				opts.OnError(err)
			}
		}
	}

	run()
	logger.Info().Dur("debounce", debounce).Msg("Watching for changes")
	if opts.OnReady != nil {
		opts.OnReady()
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerC = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info().Msg("Watcher stopped")
			return nil

		case <-timerC:
			logger.Debug().Msg("Metadata changed")
			run()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Trace().Str("op", ev.Op.String()).Msg("Event")
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(watchErr).Msg("Watcher error")
		}
	}
}
