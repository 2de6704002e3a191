// Package config loads the optional pathlib.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/pgavlin/pathlib"
	"github.com/pgavlin/pathlib/util"
)

// FileName is the name of the configuration file. Load looks for it in the
// working directory first, then under the user's home directory.
const FileName = "pathlib.toml"

type Config struct {
	// Exclude holds glob patterns for paths that walk should skip.
	Exclude []string `toml:"exclude,omitempty"`

	// Color controls colorized output: "auto", "always", or "never".
	Color string `toml:"color,omitempty"`
}

// Load returns the configuration from the first pathlib.toml found, or a
// zero configuration if there is none.
func Load() (*Config, error) {
	dirs := make([]*pathlib.Path, 0, 2)
	if cwd, err := pathlib.Cwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := pathlib.Home(); err == nil {
		dirs = append(dirs, home)
	}

	for _, dir := range dirs {
		path := dir.Join(FileName)
		ok, err := path.Exists()
		if err != nil {
			return nil, err
		}
		if ok {
			return LoadFile(path.String())
		}
	}
	return &Config{}, nil
}

func LoadFile(path string) (*Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	c, err := LoadBytes(contents)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	return c, nil
}

func LoadBytes(contents []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(contents, &c); err != nil {
		return nil, err
	}

	var errs []error
	if _, err := util.CompileGlobs(c.Exclude); err != nil {
		errs = append(errs, fmt.Errorf("invalid exclude pattern: %w", err))
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("invalid color mode %q", c.Color))
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}

	return &c, nil
}
