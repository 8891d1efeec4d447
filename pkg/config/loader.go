package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/makky/pkg/errors"
	"github.com/arthur-debert/makky/pkg/logging"
	"github.com/arthur-debert/makky/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "MAKKY_"

var knownKeys = map[string]struct{}{
	"metadata.path":    {},
	"link.target_root": {},
	"output.format":    {},
	"watch.debounce":   {},
}

// LoadOptions selects where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string

	// Paths provides the default locations; paths.New() when nil
	Paths paths.Paths
}

// Load builds the effective configuration from all layers and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	p := opts.Paths
	if p == nil {
		p = paths.New()
	}

	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(defaultsProvider{}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "load defaults")
	}

	// 2. User config file
	configFile := p.ConfigPath()
	if opts.ConfigFile != "" {
		configFile = paths.ExpandHome(opts.ConfigFile)
		if _, err := os.Stat(configFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "load config file %s", configFile)
		}
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "load config file %s", configFile)
		}
		logger.Debug().Str("path", configFile).Msg("Loaded config file")
	}

	// 3. Dotenv file, below the real environment
	envFile := p.EnvFilePath()
	if _, err := os.Stat(envFile); err == nil {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "load env file %s", envFile)
		}
		if err := k.Load(confmap.Provider(dotenvToConfig(values), "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "load env file %s", envFile)
		}
		logger.Debug().Str("path", envFile).Int("keys", len(values)).Msg("Loaded env file")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "load environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "decode configuration")
	}

	postProcess(&cfg, p)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	logger.Debug().
		Str("metadata", cfg.Metadata.Path).
		Str("targetRoot", cfg.Link.TargetRoot).
		Str("format", cfg.Output.Format).
		Dur("debounce", cfg.Watch.Debounce).
		Msg("Configuration loaded")
	return &cfg, nil
}

func postProcess(cfg *Config, p paths.Paths) {
	if cfg.Metadata.Path == "" {
		cfg.Metadata.Path = p.MetadataPath()
	}
	cfg.Metadata.Path = paths.ExpandHome(cfg.Metadata.Path)
	cfg.Link.TargetRoot = paths.ExpandHome(cfg.Link.TargetRoot)
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
}

// envKey maps MAKKY_LINK_TARGET_ROOT to link.target_root. Unknown
// variables are skipped.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = strings.Replace(key, "_", ".", 1)
	if _, ok := knownKeys[key]; !ok {
		return ""
	}
	return key
}

func dotenvToConfig(values map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for name, value := range values {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if key := envKey(name); key != "" {
			out[key] = value
		}
	}
	return out
}
