// Package testutil provides utilities for testing makky components.
//
// Key components:
//   - TestEnvironment: an isolated temp directory holding sources, a target
//     root and a metadata file
//   - FileTree: declarative setup of nested files and directories
//   - FaultyFS: a filesystem.FS wrapper that fails chosen operations
//   - Assert* helpers for symlink and directory expectations
//
// Tests run against the real filesystem: symlink resolution is exactly
// what is under test, so there is no in-memory variant.
package testutil
