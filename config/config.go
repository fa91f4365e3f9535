package config

import (
	"os"
	"path/filepath"

	"github.com/presstools/core/errors"
	"github.com/presstools/core/logging"
)

// Config is the top-level press.yml structure: where the managed tools live,
// which site they operate on, and what every child process should inherit.
type Config struct {
	PHP     PHPConfig         `yaml:"php" toml:"php"`
	WPCLI   WPCLIConfig       `yaml:"wpcli" toml:"wpcli"`
	Site    SiteConfig        `yaml:"site" toml:"site"`
	Git     GitConfig         `yaml:"git" toml:"git"`
	Env     map[string]string `yaml:"env,omitempty" toml:"env,omitempty"`
	Logging logging.Config    `yaml:"logging,omitempty" toml:"logging,omitempty"`
}

// PHPConfig locates the PHP interpreter used to run WP-CLI.
type PHPConfig struct {
	// Binary is the PHP executable, either an absolute path or a name
	// resolved via PATH. Defaults to "php".
	Binary string `yaml:"binary" toml:"binary"`
}

// WPCLIConfig locates the WP-CLI phar.
type WPCLIConfig struct {
	Phar string `yaml:"phar" toml:"phar"`
}

// SiteConfig identifies the WordPress installation being managed.
type SiteConfig struct {
	// Root is the directory every command executes in.
	Root string `yaml:"root" toml:"root"`
}

// GitConfig holds git-specific settings.
type GitConfig struct {
	// SSHKey, when set, is injected into every git invocation via
	// GIT_SSH_COMMAND so pushes and pulls use that identity.
	SSHKey string `yaml:"ssh_key,omitempty" toml:"ssh_key,omitempty"`
}

// Default returns the configuration used when no press.yml exists.
func Default() *Config {
	return &Config{
		PHP: PHPConfig{Binary: "php"},
	}
}

// Validate checks the configuration for values that would break execution.
func (c *Config) Validate() error {
	if c.Site.Root != "" {
		if !filepath.IsAbs(c.Site.Root) {
			return errors.ConfigInvalid("site.root must be an absolute path")
		}
	}
	if c.Git.SSHKey != "" && !filepath.IsAbs(c.Git.SSHKey) {
		return errors.ConfigInvalid("git.ssh_key must be an absolute path")
	}
	for key := range c.Env {
		if key == "" {
			return errors.ConfigInvalid("env contains an empty variable name")
		}
	}
	return nil
}

// WorkDir returns the directory executions run in: the configured site root,
// or the current directory when no site is configured.
func (c *Config) WorkDir() string {
	if c.Site.Root != "" {
		return c.Site.Root
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// PHPBinary returns the configured PHP executable, defaulting to "php".
func (c *Config) PHPBinary() string {
	if c.PHP.Binary != "" {
		return c.PHP.Binary
	}
	return "php"
}
