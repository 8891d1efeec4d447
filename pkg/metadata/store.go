package metadata

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/filesystem"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/rs/zerolog"
)

// maxLineSize bounds a single metadata line; paths are far shorter.
const maxLineSize = 1024 * 1024

// Store reads and appends entries of metadata files
type Store struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// NewStore creates a Store working through the given filesystem
func NewStore(fsys filesystem.FS) *Store {
	return &Store{
		fs:     fsys,
		logger: logging.GetLogger("metadata"),
	}
}

// WriteEntry appends the entry to the metadata file using the OS filesystem
func WriteEntry(metadataPath string, entry NewEntry) error {
	return NewStore(filesystem.NewOS()).WriteEntry(metadataPath, entry)
}

// ReadEntries reads and validates all entries using the OS filesystem
func ReadEntries(metadataPath, targetRoot string) ([]Entry, error) {
	return NewStore(filesystem.NewOS()).ReadEntries(metadataPath, targetRoot)
}

// WriteEntry appends the source and target lines of entry to the metadata
// file, creating it if needed. Nothing is validated here.
func (s *Store) WriteEntry(metadataPath string, entry NewEntry) error {
	file, err := s.fs.OpenFile(metadataPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, errors.ErrOpenMetadata, "open metadata").
			WithDetail("path", metadataPath)
	}

	if _, err := file.Write([]byte(entry.serialize())); err != nil {
		_ = file.Close()
		return errors.Wrap(err, errors.ErrWriteEntry, "write new entry")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, errors.ErrWriteEntry, "write new entry")
	}

	s.logger.Debug().
		Str("metadata", metadataPath).
		Str("source", entry.source).
		Str("target", entry.target).
		Msg("Entry registered")
	return nil
}

// ReadEntries parses the metadata file and validates every entry against
// targetRoot.
//
// An invalid target root, an unreadable file or a malformed line pairing
// fail immediately. Entry validation errors are collected over the whole
// file and returned as one *errors.Aggregate; in that case no entries are
// returned at all.
func (s *Store) ReadEntries(metadataPath, targetRoot string) ([]Entry, error) {
	if err := s.CheckTargetRoot(targetRoot); err != nil {
		return nil, err
	}

	pairs, err := s.ReadPairs(metadataPath)
	if err != nil {
		return nil, err
	}

	var (
		entries []Entry
		errs    []error
	)
	duplicates := DuplicateTargets(pairs)
	for i, pair := range pairs {
		if dupErr, ok := duplicates[i]; ok {
			errs = append(errs, dupErr)
			continue
		}

		entry, err := s.BuildEntry(pair, targetRoot)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entries = append(entries, entry)
	}

	if agg := errors.NewAggregate(errors.ErrParseEntries, "parse entries", errs); agg != nil {
		s.logger.Debug().Int("errors", len(errs)).Msg("Metadata entries rejected")
		return nil, agg
	}

	s.logger.Debug().
		Str("metadata", metadataPath).
		Str("targetRoot", targetRoot).
		Int("entries", len(entries)).
		Msg("Metadata entries read")
	return entries, nil
}

// CheckTargetRoot requires an absolute path to an existing directory
func (s *Store) CheckTargetRoot(targetRoot string) error {
	if !filepath.IsAbs(targetRoot) {
		return errors.Newf(errors.ErrTargetRootNotAbsolute,
			"target root is not an absolute path: %s", targetRoot)
	}
	if info, err := s.fs.Stat(targetRoot); err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrTargetRootNotDirectory,
			"target root is not a directory: %s", targetRoot)
	}
	return nil
}

// ReadPairs returns the raw source/target pairs in file order without
// validating them. Only an unreadable file or a malformed pairing fails.
func (s *Store) ReadPairs(metadataPath string) ([]NewEntry, error) {
	file, err := s.fs.OpenFile(metadataPath, os.O_RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOpenMetadata, "open metadata").
			WithDetail("path", metadataPath)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	p := &pairParser{scanner: scanner}

	var pairs []NewEntry
	for {
		source, target, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return pairs, nil
		}
		pairs = append(pairs, NewEntry{source: source, target: target})
	}
}

// DuplicateTargets returns, for each pair whose raw target string was
// already claimed by an earlier pair, the error ReadEntries reports for it
// keyed by position
func DuplicateTargets(pairs []NewEntry) map[int]error {
	dups := make(map[int]error)
	seen := make(map[string]struct{})
	for i, pair := range pairs {
		if _, ok := seen[pair.target]; ok {
			dups[i] = duplicateError(pair)
			continue
		}
		seen[pair.target] = struct{}{}
	}
	return dups
}

func duplicateError(pair NewEntry) error {
	return errors.Newf(errors.ErrEntryTargetDuplicate,
		"entry: target duplicate: %s -> %s", pair.source, pair.target).
		WithDetail("source", pair.source).
		WithDetail("target", pair.target)
}

// BuildEntry checks that the source exists and that the target is not an
// existing regular file. Directories and symlinks of any kind at the target
// are left for the reconciler to judge.
func (s *Store) BuildEntry(pair NewEntry, targetRoot string) (Entry, error) {
	source, target := pair.source, pair.target
	if _, err := s.fs.Stat(source); err != nil {
		return Entry{}, errors.Newf(errors.ErrEntrySourceNotExists,
			"entry: source not exists: %s", source).
			WithDetail("source", source)
	}

	targetPath := filepath.Join(targetRoot, target)
	if info, err := s.fs.Lstat(targetPath); err == nil && isRegularFile(info) {
		return Entry{}, errors.Newf(errors.ErrEntryTargetExists,
			"entry: target already exists: %s", targetPath).
			WithDetail("target", targetPath)
	}

	return Entry{SourcePath: source, TargetPath: targetPath}, nil
}

func isRegularFile(info fs.FileInfo) bool {
	return info.Mode()&fs.ModeSymlink == 0 && info.Mode().IsRegular()
}

// pairParser yields (source, target) line pairs
type pairParser struct {
	scanner *bufio.Scanner
}

// next returns the next pair. ok is false once the input is exhausted
// cleanly; read failures and a source line without a target are errors.
func (p *pairParser) next() (source, target string, ok bool, err error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", "", false, errors.Wrap(err, errors.ErrParseEntrySource, "parse entry source")
		}
		return "", "", false, nil
	}
	source = p.scanner.Text()
	if !utf8.ValidString(source) {
		return "", "", false, errors.Wrap(errInvalidUTF8, errors.ErrParseEntrySource, "parse entry source")
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", "", false, errors.Wrap(err, errors.ErrParseEntryTarget, "parse entry target")
		}
		return "", "", false, errors.New(errors.ErrParseEntryTargetMissing, "parse entry target: missing")
	}
	target = p.scanner.Text()
	if !utf8.ValidString(target) {
		return "", "", false, errors.Wrap(errInvalidUTF8, errors.ErrParseEntryTarget, "parse entry target")
	}
	return source, target, true, nil
}

// errInvalidUTF8 is the read error for a line that is not valid UTF-8
var errInvalidUTF8 = errors.New(errors.ErrInvalidInput, "stream did not contain valid UTF-8")
