package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	scnerrors "github.com/skysort/sceneryctl/pkg/errors"
)

const starterHeader = `# sceneryctl configuration.
# Every key is optional; unset keys fall back to built-in defaults.
# Environment variables of the form SCENERYCTL_BACKEND_ADDRESS take
# precedence over this file.

`

// WriteStarter writes a commented starter config file with the current
// defaults to path. Refuses to overwrite an existing file.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return scnerrors.Newf(scnerrors.ErrInvalidInput, "config file already exists at %s", path)
	}

	body, err := toml.Marshal(Default())
	if err != nil {
		return scnerrors.Wrap(err, scnerrors.ErrInternal, "failed to render starter config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return scnerrors.Wrapf(err, scnerrors.ErrConfigLoad, "failed to create %s", filepath.Dir(path))
	}

	content := append([]byte(starterHeader), body...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return scnerrors.Wrapf(err, scnerrors.ErrConfigLoad, "failed to write %s", path)
	}
	return nil
}
