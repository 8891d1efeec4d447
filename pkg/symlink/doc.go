// Package symlink reconciles a desired link between a source and a target
// path with what is currently on disk.
//
// Every call first classifies the pair. The kind of the source (directory
// or file, following links) is combined with the relation of the target
// (absent, already the desired link, a link elsewhere, or a real file or
// directory) into a State, or a refusal when the target holds data that is
// not ours to replace.
//
// Creating links a file source directly and mirrors a directory source as
// a real directory whose children are reconciled one by one, so an
// existing directory at the target is merged rather than replaced.
// Removing walks the same classification and only ever unlinks symlinks
// that resolve into the source tree. Directories are never removed.
//
// Occupied targets are hard errors. Any I/O failure aborts the walk on the
// spot; work already done is not rolled back, and running the same
// operation again picks up where it stopped.
package symlink
