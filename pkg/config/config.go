// Package config loads sceneryctl's layered configuration: embedded
// defaults, then the user config file, then SCENERYCTL_* environment
// overrides. Values are read once at startup and accessed through the
// global Get().
package config

import (
	"strings"

	"github.com/skysort/sceneryctl/pkg/types"
)

// Engine holds configuration for the load-order engine itself.
type Engine struct {
	// AutogenPrefix marks backend-generated exclusion packages. The
	// naming convention belongs to the backend, so it is injected here
	// instead of being hard-coded in the conflict resolver.
	AutogenPrefix string `koanf:"autogen_prefix" toml:"autogen_prefix"`

	// DebounceMs is the trailing debounce window for conflict
	// recomputes during rapid mutation bursts.
	DebounceMs int `koanf:"debounce_ms" toml:"debounce_ms"`
}

// Backend holds connection settings for the manager backend service.
type Backend struct {
	Address   string `koanf:"address" toml:"address"`
	TimeoutMs int    `koanf:"timeout_ms" toml:"timeout_ms"`
}

// Output holds terminal output settings.
type Output struct {
	// Color is one of auto, always, never
	Color string `koanf:"color" toml:"color"`
}

// Config is the root configuration structure.
type Config struct {
	Engine  Engine  `koanf:"engine" toml:"engine"`
	Backend Backend `koanf:"backend" toml:"backend"`
	Output  Output  `koanf:"output" toml:"output"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		Engine: Engine{
			AutogenPrefix: "zz_autogen_",
			DebounceMs:    150,
		},
		Backend: Backend{
			Address:   "http://127.0.0.1:43110",
			TimeoutMs: 10000,
		},
		Output: Output{
			Color: "auto",
		},
	}
}

// AutoGenPredicate builds the injected auto-generated check from the
// configured prefix. An empty prefix disables the classification.
func (e Engine) AutoGenPredicate() types.AutoGenPredicate {
	prefix := e.AutogenPrefix
	return func(folderName string) bool {
		return prefix != "" && strings.HasPrefix(folderName, prefix)
	}
}
