package config

import (
	_ "embed"

	"github.com/knadh/koanf/parsers/toml"
)

//go:embed embedded/defaults.toml
var defaultsTOML []byte

// DefaultContent returns the built-in defaults as a TOML document, suitable
// as a starting point for a config file
func DefaultContent() string {
	return string(defaultsTOML)
}

// defaultsProvider feeds the embedded defaults to koanf. It satisfies
// koanf.Provider both ways: ReadBytes for use with a parser and Read for
// use without one.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return defaultsTOML, nil
}

func (defaultsProvider) Read() (map[string]interface{}, error) {
	return toml.Parser().Unmarshal(defaultsTOML)
}
