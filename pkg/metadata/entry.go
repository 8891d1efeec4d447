package metadata

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/makky/pkg/errors"
)

// NewEntry is a raw entry about to be registered. The source is an
// absolute path and the target is relative; neither has to exist.
type NewEntry struct {
	source string
	target string
}

// CreateNewEntry validates the shape of a raw entry without touching the
// filesystem.
func CreateNewEntry(source, target string) (NewEntry, error) {
	if !filepath.IsAbs(source) {
		return NewEntry{}, errors.Newf(errors.ErrNewEntrySourceNotAbsolute,
			"new entry: source is not an absolute path: %s", source).
			WithDetail("source", source)
	}
	if filepath.IsAbs(target) {
		return NewEntry{}, errors.Newf(errors.ErrNewEntryTargetIsAbsolute,
			"new entry: target must be a relative path: %s", target).
			WithDetail("target", target)
	}
	return NewEntry{source: source, target: target}, nil
}

func (e NewEntry) Source() string { return e.source }

func (e NewEntry) Target() string { return e.target }

func (e NewEntry) serialize() string {
	return fmt.Sprintf("%s\n%s\n", e.source, e.target)
}

// Entry is a validated link ready for reconciliation. TargetPath is the
// stored relative target joined onto the target root.
type Entry struct {
	SourcePath string
	TargetPath string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s", e.SourcePath, e.TargetPath)
}
