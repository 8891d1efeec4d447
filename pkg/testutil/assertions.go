package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// AssertSymlinkTo checks that link is a symlink whose fully resolved target
// is source
func AssertSymlinkTo(t *testing.T, link, source string) {
	t.Helper()

	info, err := os.Lstat(link)
	if err != nil {
		t.Errorf("Expected symlink at %s: %v", link, err)
		return
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("Expected %s to be a symlink, got mode %v", link, info.Mode())
		return
	}

	resolved, err := filepath.EvalSymlinks(link)
	if err != nil {
		t.Errorf("Failed to resolve %s: %v", link, err)
		return
	}
	if resolved != source {
		t.Errorf("Symlink %s resolves to %s, want %s", link, resolved, source)
	}
}

// AssertRealDir checks that path is a directory and not a symlink
func AssertRealDir(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("Expected directory at %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a real directory, got mode %v", path, info.Mode())
	}
}

// AssertNotExists checks that nothing, not even a dangling symlink, is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Lstat(path); err == nil {
		t.Errorf("Expected %s to not exist", path)
	} else if !os.IsNotExist(err) {
		t.Errorf("Unexpected error checking %s: %v", path, err)
	}
}

// AssertFileContent checks the content read through path
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("Failed to read %s: %v", path, err)
		return
	}
	if string(data) != expected {
		t.Errorf("Content of %s = %q, want %q", path, string(data), expected)
	}
}

// SnapshotTree records every path under root with its kind and, for
// symlinks, the raw link target. Two equal snapshots mean the tree did
// not change.
func SnapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	snapshot := make(map[string]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			dest, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snapshot[rel] = "link:" + dest
		case info.IsDir():
			snapshot[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snapshot[rel] = "file:" + string(data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	return snapshot
}
