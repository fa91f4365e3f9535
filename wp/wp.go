// Package wp renders WP-CLI invocations and routes them through the shell
// facade. Commands run the phar through the configured PHP interpreter with
// an explicit --path so they work from any working directory layout.
package wp

import (
	"strings"

	"github.com/presstools/core/config"
	"github.com/presstools/core/shell"
)

// Client builds and executes WP-CLI command lines.
type Client struct {
	sh   *shell.Shell
	php  string
	phar string
	root string
}

// NewClient creates a client from the shared configuration.
func NewClient(sh *shell.Shell, cfg *config.Config) *Client {
	return &Client{
		sh:   sh,
		php:  cfg.PHPBinary(),
		phar: cfg.WPCLI.Phar,
		root: cfg.Site.Root,
	}
}

// Run executes one WP-CLI command, e.g. Run("plugin", "list").
func (c *Client) Run(args ...string) (*shell.Result, error) {
	parts := []string{c.php, c.phar}
	if c.root != "" {
		parts = append(parts, "--path="+c.root)
	}
	parts = append(parts, args...)
	return c.sh.Execute(strings.Join(parts, " "))
}
