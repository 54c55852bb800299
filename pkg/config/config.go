package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/confex/pkg/errors"
	"github.com/arthur-debert/confex/pkg/logging"
)

const (
	// EnvPrefix starts every environment variable read as configuration.
	// CONFEX_LOG_VERBOSITY maps to log.verbosity.
	EnvPrefix = "CONFEX_"

	// UserConfigFile is the user file path relative to the XDG config home
	UserConfigFile = "confex/config.toml"
)

// Config is the resolved confex configuration
type Config struct {
	Dialect   string    `koanf:"dialect"`
	Format    string    `koanf:"format"`
	Separator string    `koanf:"separator"`
	Log       LogConfig `koanf:"log"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// Options selects the sources Load reads on top of the defaults
type Options struct {
	// Path of the user file. Empty means the XDG location, which may be
	// missing. An explicit path must exist.
	Path string

	// Flags holds command-line overrides keyed like the file, e.g.
	// "log.verbosity". Only set flags belong here.
	Flags map[string]interface{}
}

// Load merges defaults < user file < environment < flags
func Load(opts Options) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User file
	path, err := userConfigPath(opts.Path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				unescapeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Dialect = strings.ToLower(strings.TrimSpace(cfg.Dialect))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	log.Debug().
		Str("dialect", cfg.Dialect).
		Str("format", cfg.Format).
		Int("verbosity", cfg.Log.Verbosity).
		Msg("Configuration resolved")
	return &cfg, nil
}

// UserConfigPath returns the default user file location. The file may not
// exist.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, UserConfigFile)
}

func userConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	path, err := xdg.SearchConfigFile(UserConfigFile)
	if err != nil {
		return "", nil
	}
	return path, nil
}

// envKey maps CONFEX_LOG_VERBOSITY to log.verbosity
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

// unescapeHookFunc turns the two-character sequence \n into a newline in
// string values, so CONFEX_SEPARATOR and --separator can spell one.
func unescapeHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.String {
			return data, nil
		}
		return strings.ReplaceAll(data.(string), `\n`, "\n"), nil
	}
}
