package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the effective makky configuration
type Config struct {
	Metadata MetadataConfig `koanf:"metadata"`
	Link     LinkConfig     `koanf:"link"`
	Output   OutputConfig   `koanf:"output"`
	Watch    WatchConfig    `koanf:"watch"`
}

// MetadataConfig locates the metadata file
type MetadataConfig struct {
	Path string `koanf:"path"`
}

// LinkConfig holds defaults for link, unlink, status and watch
type LinkConfig struct {
	TargetRoot string `koanf:"target_root"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `koanf:"format"`
}

// WatchConfig controls the watch command
type WatchConfig struct {
	// Debounce is how long the metadata file has to stay quiet before a
	// change triggers a new link run
	Debounce time.Duration `koanf:"debounce"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Watch.Validate()
}

// Validate validates the metadata configuration.
func (c *MetadataConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(FormatAuto, FormatTerm, FormatText, FormatYAML)),
	)
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
	)
}

// tomlDocument mirrors Config with TOML-friendly field types
type tomlDocument struct {
	Metadata struct {
		Path string `toml:"path"`
	} `toml:"metadata"`
	Link struct {
		TargetRoot string `toml:"target_root"`
	} `toml:"link"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
	Watch struct {
		Debounce string `toml:"debounce"`
	} `toml:"watch"`
}

// TOML renders the configuration in the user config file format
func (c *Config) TOML() ([]byte, error) {
	var doc tomlDocument
	doc.Metadata.Path = c.Metadata.Path
	doc.Link.TargetRoot = c.Link.TargetRoot
	doc.Output.Format = c.Output.Format
	doc.Watch.Debounce = c.Watch.Debounce.String()
	return toml.Marshal(doc)
}
