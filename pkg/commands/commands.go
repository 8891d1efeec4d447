// Package commands provides high-level command implementations for makky.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the metadata store and link reconciler.
//
// Each command is implemented in its own subdirectory:
//   - link/     - Link command
//   - unlink/   - Unlink command
//   - register/ - Register command
//   - status/   - Status command
//   - watch/    - Watch command
//   - internal/ - Shared reconciliation loop
//
// This file re-exports the command functions so callers need a single
// import.
package commands

import (
	"context"

	"github.com/arthur-debert/makky/pkg/commands/link"
	"github.com/arthur-debert/makky/pkg/commands/register"
	"github.com/arthur-debert/makky/pkg/commands/status"
	"github.com/arthur-debert/makky/pkg/commands/unlink"
	"github.com/arthur-debert/makky/pkg/commands/watch"
	"github.com/arthur-debert/makky/pkg/ui"
)

// Link creates the links declared in a metadata file.
type LinkOptions = link.Options

// Result is returned by Link and Unlink.
type Result = link.Result

func Link(opts LinkOptions) (*Result, error) {
	return link.Link(opts)
}

// Unlink removes the links declared in a metadata file.
type UnlinkOptions = unlink.Options

func Unlink(opts UnlinkOptions) (*Result, error) {
	return unlink.Unlink(opts)
}

// Register appends an entry to a metadata file.
type RegisterOptions = register.Options

func Register(opts RegisterOptions) error {
	return register.Register(opts)
}

// Status reports the state of every entry without changing anything.
type StatusOptions = status.Options

func Status(opts StatusOptions) (*ui.StatusReport, error) {
	return status.Status(opts)
}

// Watch re-runs a callback whenever the metadata file changes.
type WatchOptions = watch.Options

func Watch(ctx context.Context, opts WatchOptions) error {
	return watch.Watch(ctx, opts)
}
