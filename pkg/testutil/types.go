package testutil

// FileTree represents a nested file structure for declarative test setup.
// Values are either a string (file content) or a nested FileTree
// (directory).
type FileTree map[string]interface{}
