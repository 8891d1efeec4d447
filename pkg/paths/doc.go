// Package paths provides centralized path handling for makky.
//
// # Environment Variables
//
//   - MAKKY_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/makky)
//   - MAKKY_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/makky)
//
// The config directory holds config.toml, the optional makky.env file and
// the default makky.metadata file. The state directory holds makky.log.
package paths
