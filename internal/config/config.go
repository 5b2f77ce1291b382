// Package config loads the optional per-user configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/doit/internal/store"
)

const fileName = "config.yaml"

// Config holds user preferences. Every field is optional; flags
// override config, and $DOIT_DATA_DIR overrides DataDir.
type Config struct {
	Theme         string `yaml:"theme"`          // classic | neon | mono
	Store         string `yaml:"store"`          // bolt | json
	DataDir       string `yaml:"data_dir"`       // overrides ~/.doit
	DefaultFilter string `yaml:"default_filter"` // all | active | completed
	Namespace     string `yaml:"namespace"`      // record namespace in the store
}

// Path returns the config file location. The file always lives in the
// default data dir; its own data_dir field only moves the task store.
func Path() (string, error) {
	dir, err := store.DataDir("")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the config file. A missing file is not an error and
// yields the zero Config.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}
