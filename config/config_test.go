package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presstools/core/errors"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "press.yml", `
php:
  binary: /usr/local/bin/php
wpcli:
  phar: /opt/wp-cli/wp-cli.phar
site:
  root: /var/www/example
git:
  ssh_key: /home/admin/.ssh/deploy_key
env:
  PATH: /opt/tools/bin:/usr/bin
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/php", cfg.PHP.Binary)
	assert.Equal(t, "/opt/wp-cli/wp-cli.phar", cfg.WPCLI.Phar)
	assert.Equal(t, "/var/www/example", cfg.Site.Root)
	assert.Equal(t, "/home/admin/.ssh/deploy_key", cfg.Git.SSHKey)
	assert.Equal(t, "/opt/tools/bin:/usr/bin", cfg.Env["PATH"])
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "press.toml", `
[php]
binary = "/usr/bin/php"

[wpcli]
phar = "/opt/wp-cli.phar"

[site]
root = "/srv/www"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/php", cfg.PHP.Binary)
	assert.Equal(t, "/srv/www", cfg.Site.Root)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "press.yml"))
		assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "press.yml", "php: [unclosed")
		_, err := Load(path)
		assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	})

	t.Run("relative site root", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "press.yml", "site:\n  root: www/site\n")
		_, err := Load(path)
		assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	})
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "press.yml", "php:\n  binary: php\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "press.yml"), found)
}

func TestFindConfigFileNotFound(t *testing.T) {
	_, err := FindConfigFile(t.TempDir())
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("no file returns defaults", func(t *testing.T) {
		cfg, err := LoadOrDefault(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "php", cfg.PHPBinary())
		assert.Empty(t, cfg.WPCLI.Phar)
	})

	t.Run("broken file still fails", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "press.yml", "::::")
		_, err := LoadOrDefault(dir)
		assert.Error(t, err)
	})
}

func TestWorkDir(t *testing.T) {
	cfg := &Config{Site: SiteConfig{Root: "/var/www/site"}}
	assert.Equal(t, "/var/www/site", cfg.WorkDir())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, Default().WorkDir())
}
