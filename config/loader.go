package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/presstools/core/errors"
)

// configNames are the file names probed in each directory, in priority order.
var configNames = []string{"press.yml", "press.yaml", "press.toml"}

// Load reads and validates a configuration file. The format is chosen by
// extension: .toml is parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read configuration")
	}

	cfg := Default()
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration").
				WithDetail("path", path)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration").
				WithDetail("path", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile walks up from dir looking for a configuration file.
func FindConfigFile(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to resolve directory")
	}

	for {
		for _, name := range configNames {
			candidate := filepath.Join(current, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.ConfigNotFound(dir)
		}
		current = parent
	}
}

// LoadOrDefault loads the configuration found at or above dir, falling back
// to defaults when no file exists. Parse and validation failures still
// propagate: a broken file should not be silently ignored.
func LoadOrDefault(dir string) (*Config, error) {
	path, err := FindConfigFile(dir)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(path)
}
