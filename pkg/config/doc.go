// Package config loads makky's configuration.
//
// Values are layered, later layers winning:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. the user config file, --config or $XDG_CONFIG_HOME/makky/config.toml
//  3. $XDG_CONFIG_HOME/makky/makky.env, dotenv syntax
//  4. MAKKY_* environment variables
//
// Environment keys map onto config keys by lowercasing and turning the
// first underscore into a dot, so MAKKY_LINK_TARGET_ROOT sets
// link.target_root. Only known keys are read.
package config
