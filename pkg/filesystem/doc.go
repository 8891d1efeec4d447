// Package filesystem provides the filesystem abstraction used by makky.
//
// The metadata store and the link reconciler only touch the disk through
// the FS interface, so tests can inject failures at a single operation
// while still working against a real temporary directory.
package filesystem
