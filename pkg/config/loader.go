package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/arthur-debert/pihello/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix starts every environment variable pihello reads.
const EnvPrefix = "PIHELLO_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Options selects the layers Load reads.
type Options struct {
	// ConfigFile replaces the default user file. It must exist.
	ConfigFile string
	// Overrides holds flag values keyed by dotted config key.
	Overrides map[string]interface{}
}

// DefaultConfigFile returns the user configuration path.
func DefaultConfigFile() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "pihello", "config.toml")
}

// DefaultsTOML returns the embedded defaults, comments included.
func DefaultsTOML() string {
	return string(defaultConfig)
}

// Load reads every configuration layer and returns the decoded result.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	sources = append(sources, "defaults")

	// 2. User file
	path, required := opts.ConfigFile, true
	if path == "" {
		path, required = DefaultConfigFile(), false
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, path)
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
			WithDetail("path", path)
	} else {
		logger.Debug().Str("path", path).Msg("no user config")
	}

	// 3. Environment
	var fromEnv bool
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		fromEnv = true
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if fromEnv {
		sources = append(sources, "env")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
		sources = append(sources, "flags")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Sources = sources
	logger.Debug().Strs("sources", sources).Msg("configuration loaded")
	return &cfg, nil
}
