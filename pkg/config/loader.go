package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/logging"
	"github.com/arthur-debert/docgen/pkg/paths"
)

var log = logging.GetLogger("config")

// envPrefix namespaces the environment variables the loader reads.
const envPrefix = "DOCGEN_"

// Load reads the runtime configuration from all sources in precedence
// order: embedded defaults, then an optional docgen.toml, then DOCGEN_*
// environment variables.
func Load() (*Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides applies explicit settings on top of every other source.
// Flag-driven commands use it so flags win over files and environment, e.g.
//
//	config.LoadWithOverrides(map[string]interface{}{"server.listen": addr})
func LoadWithOverrides(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultsTOML}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. Optional config file
	if path, ok := findConfigFile(); ok {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		log.Debug().Str("path", path).Msg("Loaded runtime configuration file")
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(envPrefix, ".", envKeyToPath), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Explicit overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return unmarshal(k)
}

// loadDefaults parses only the embedded defaults, ignoring files and
// environment. Default() builds on it.
func loadDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultsTOML}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
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
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// findConfigFile returns the first docgen.toml that exists, preferring the
// XDG config directory over the working directory.
func findConfigFile() (string, bool) {
	candidates := []string{
		paths.ConfigFilePath(),
		paths.ConfigFileName,
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// envKeyToPath maps DOCGEN_RENDER_DEFAULT_TEMPLATE to render.default_template.
// Only the first underscore separates section from setting; settings keep
// their own underscores.
func envKeyToPath(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	parts := strings.SplitN(key, "_", 2)
	if len(parts) == 2 {
		return parts[0] + "." + parts[1]
	}
	return key
}
