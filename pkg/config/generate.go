package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/snowland-wm/snowland/pkg/errors"
)

// WriteConfig marshals cfg as TOML to the given path, creating parent
// directories. Used by `snowland genconfig` to seed a user config file.
func WriteConfig(cfg *Config, path string) error {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}

	return nil
}
