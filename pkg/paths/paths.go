package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvMakkyConfigDir overrides the XDG config directory for makky
	EnvMakkyConfigDir = "MAKKY_CONFIG_DIR"

	// EnvMakkyStateDir overrides the XDG state directory for makky
	EnvMakkyStateDir = "MAKKY_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// MakkyDirName is the directory name for makky-specific files
	MakkyDirName = "makky"

	// MetadataFileName is the name of the default metadata file
	MetadataFileName = "makky.metadata"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// EnvFileName is the name of the optional dotenv file
	EnvFileName = "makky.env"

	// LogFileName is the name of the log file
	LogFileName = "makky.log"
)

// Paths provides the locations makky reads from and writes to
type Paths interface {
	ConfigDir() string
	StateDir() string
	MetadataPath() string
	ConfigPath() string
	EnvFilePath() string
	LogFilePath() string
}

// paths provides centralized path management for makky
type paths struct {
	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string
}

// New creates a new Paths instance, honoring MAKKY_* overrides before the
// XDG defaults.
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvMakkyConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, MakkyDirName)
	}

	if stateDir := os.Getenv(EnvMakkyStateDir); stateDir != "" {
		p.xdgState = ExpandHome(stateDir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.xdgState = filepath.Join(stateHome, MakkyDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, MakkyDirName)
	}

	return p
}

func (p *paths) ConfigDir() string { return p.xdgConfig }

func (p *paths) StateDir() string { return p.xdgState }

// MetadataPath returns the default metadata file used when no path is
// given on the command line or in the configuration.
func (p *paths) MetadataPath() string {
	return filepath.Join(p.xdgConfig, MetadataFileName)
}

func (p *paths) ConfigPath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) EnvFilePath() string {
	return filepath.Join(p.xdgConfig, EnvFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir := os.Getenv(EnvHome)
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return path
		}
	}

	if path == "~" {
		return homeDir
	}
	return filepath.Join(homeDir, path[2:])
}

// IsWithin reports whether path equals root or lies underneath it. The
// comparison is component-wise, so /a/bc is not within /a/b.
func IsWithin(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if path == root {
		return true
	}
	if root == string(filepath.Separator) {
		return strings.HasPrefix(path, root)
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
