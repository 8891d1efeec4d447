package testutil

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/makky/pkg/filesystem"
)

// Operation names understood by FaultyFS
const (
	OpStat         = "stat"
	OpLstat        = "lstat"
	OpEvalSymlinks = "evalsymlinks"
	OpReadDir      = "readdir"
	OpMkdirAll     = "mkdirall"
	OpSymlink      = "symlink"
	OpRemove       = "remove"
	OpOpenFile     = "openfile"
)

// FaultyFS wraps a filesystem and fails selected operations on selected
// paths. Everything else is passed through.
type FaultyFS struct {
	filesystem.FS
	faults map[string]error
}

// NewFaultyFS wraps base
func NewFaultyFS(base filesystem.FS) *FaultyFS {
	return &FaultyFS{FS: base, faults: make(map[string]error)}
}

// FailOn makes op on path return err
func (f *FaultyFS) FailOn(op, path string, err error) *FaultyFS {
	f.faults[op+":"+filepath.Clean(path)] = err
	return f
}

func (f *FaultyFS) fault(op, path string) error {
	return f.faults[op+":"+filepath.Clean(path)]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpLstat, name); err != nil {
		return nil, err
	}
	return f.FS.Lstat(name)
}

func (f *FaultyFS) EvalSymlinks(path string) (string, error) {
	if err := f.fault(OpEvalSymlinks, path); err != nil {
		return "", err
	}
	return f.FS.EvalSymlinks(path)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault(OpMkdirAll, path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) Symlink(oldname, newname string) error {
	if err := f.fault(OpSymlink, newname); err != nil {
		return err
	}
	return f.FS.Symlink(oldname, newname)
}

func (f *FaultyFS) Remove(name string) error {
	if err := f.fault(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FaultyFS) OpenFile(name string, flag int, perm fs.FileMode) (filesystem.File, error) {
	if err := f.fault(OpOpenFile, name); err != nil {
		return nil, err
	}
	return f.FS.OpenFile(name, flag, perm)
}

var _ filesystem.FS = (*FaultyFS)(nil)
