package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	scnerrors "github.com/skysort/sceneryctl/pkg/errors"
	"github.com/skysort/sceneryctl/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration: embedded defaults, then the
// user config file if present, then SCENERYCTL_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, scnerrors.Wrap(err, scnerrors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. User config file, if it exists
	cfgPath := paths.ConfigFile()
	if _, err := os.Stat(cfgPath); err == nil {
		if err := k.Load(file.Provider(cfgPath), toml.Parser()); err != nil {
			return nil, scnerrors.Wrapf(err, scnerrors.ErrConfigParse, "failed to parse %s", cfgPath)
		}
	}

	// 3. Environment overrides: SCENERYCTL_BACKEND_ADDRESS -> backend.address
	if err := k.Load(env.Provider("SCENERYCTL_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "SCENERYCTL_")
		s = strings.ToLower(s)
		return strings.Replace(s, "_", ".", 1)
	}), nil); err != nil {
		return nil, scnerrors.Wrap(err, scnerrors.ErrConfigLoad, "failed to load environment overrides")
	}

	// Environment values arrive as strings; weak typing lets them fill
	// integer fields like backend.timeout_ms.
	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			Squash:           true,
		},
	}); err != nil {
		return nil, scnerrors.Wrap(err, scnerrors.ErrConfigLoad, "failed to decode configuration")
	}
	return cfg, nil
}
