// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Isolated on-disk environments for metadata and reconciler tests

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/makky/pkg/filesystem"
)

// TestEnvironment provides a temp directory split into a sources area, a
// target root and a metadata file path
type TestEnvironment struct {
	// Root is the temp directory everything lives in
	Root string

	// SourceDir holds the files and directories entries point at
	SourceDir string

	// TargetRoot is the directory links are created under
	TargetRoot string

	// MetadataPath is where the metadata file is written
	MetadataPath string

	FS filesystem.FS

	t *testing.T
}

// NewTestEnvironment creates a new isolated test environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	// Resolve the temp dir itself so expectations compare against fully
	// resolved paths on systems where TMPDIR is a symlink.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &TestEnvironment{
		Root:         root,
		SourceDir:    filepath.Join(root, "sources"),
		TargetRoot:   filepath.Join(root, "target"),
		MetadataPath: filepath.Join(root, "makky.metadata"),
		FS:           filesystem.NewOS(),
		t:            t,
	}

	for _, dir := range []string{env.SourceDir, env.TargetRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// Keep logs of code under test out of the user's state directory
	t.Setenv("MAKKY_STATE_DIR", filepath.Join(root, "state"))
	t.Setenv("MAKKY_CONFIG_DIR", filepath.Join(root, "config"))

	return env
}

// Source returns the absolute path of rel inside the sources area
func (env *TestEnvironment) Source(rel string) string {
	return filepath.Join(env.SourceDir, rel)
}

// Target returns the absolute path of rel inside the target root
func (env *TestEnvironment) Target(rel string) string {
	return filepath.Join(env.TargetRoot, rel)
}

// WithSources creates tree inside the sources area
func (env *TestEnvironment) WithSources(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.SourceDir, tree)
}

// WithTargets creates tree inside the target root
func (env *TestEnvironment) WithTargets(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.TargetRoot, tree)
}

// Symlink creates a symlink at the absolute path link pointing to source,
// creating parent directories as needed
func (env *TestEnvironment) Symlink(source, link string) {
	env.t.Helper()
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil {
		env.t.Fatalf("Failed to create parent of %s: %v", link, err)
	}
	if err := os.Symlink(source, link); err != nil {
		env.t.Fatalf("Failed to create symlink %s -> %s: %v", link, source, err)
	}
}

// AppendMetadata writes a raw source/target pair to the metadata file
// without any validation, the same way registering does
func (env *TestEnvironment) AppendMetadata(source, target string) {
	env.t.Helper()
	f, err := os.OpenFile(env.MetadataPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		env.t.Fatalf("Failed to open metadata: %v", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\n%s\n", source, target); err != nil {
		env.t.Fatalf("Failed to write metadata: %v", err)
	}
}

// WriteMetadata replaces the metadata file with raw content
func (env *TestEnvironment) WriteMetadata(content string) {
	env.t.Helper()
	if err := os.WriteFile(env.MetadataPath, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write metadata: %v", err)
	}
}

// CreateFileTree materializes tree under base
func CreateFileTree(t *testing.T, base string, tree FileTree) {
	t.Helper()

	for name, node := range tree {
		path := filepath.Join(base, name)
		switch v := node.(type) {
		case string:
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", path, err)
			}
			if err := os.WriteFile(path, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", path, err)
			}
		case FileTree:
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			CreateFileTree(t, path, v)
		default:
			t.Fatalf("Unsupported file tree node %T at %s", node, path)
		}
	}
}
