package wp

import (
	"github.com/presstools/core/shell"
)

// CoreVersion reports the installed WordPress version.
type CoreVersion struct {
	WP *Client
}

func (c *CoreVersion) Execute() (*shell.Result, error) {
	return c.WP.Run("core", "version")
}

// CoreUpdate updates WordPress core to the latest release.
type CoreUpdate struct {
	WP *Client
}

func (c *CoreUpdate) Execute() (*shell.Result, error) {
	return c.WP.Run("core", "update")
}

// PluginList lists installed plugins.
type PluginList struct {
	WP *Client
}

func (c *PluginList) Execute() (*shell.Result, error) {
	return c.WP.Run("plugin", "list")
}

// PluginActivate activates one plugin by slug.
type PluginActivate struct {
	WP     *Client
	Plugin string `mapstructure:"plugin"`
}

func (c *PluginActivate) Execute() (*shell.Result, error) {
	return c.WP.Run("plugin", "activate", c.Plugin)
}

// PluginDeactivate deactivates one plugin by slug.
type PluginDeactivate struct {
	WP     *Client
	Plugin string `mapstructure:"plugin"`
}

func (c *PluginDeactivate) Execute() (*shell.Result, error) {
	return c.WP.Run("plugin", "deactivate", c.Plugin)
}

// ThemeList lists installed themes.
type ThemeList struct {
	WP *Client
}

func (c *ThemeList) Execute() (*shell.Result, error) {
	return c.WP.Run("theme", "list")
}

// UserList lists site users.
type UserList struct {
	WP *Client
}

func (c *UserList) Execute() (*shell.Result, error) {
	return c.WP.Run("user", "list")
}

// DBExport dumps the site database to a file.
type DBExport struct {
	WP   *Client
	File string `mapstructure:"file"`
}

func (c *DBExport) Execute() (*shell.Result, error) {
	return c.WP.Run("db", "export", c.File)
}

// SearchReplace rewrites a string across the database, typically a domain
// after migrating a site.
type SearchReplace struct {
	WP  *Client
	Old string `mapstructure:"old"`
	New string `mapstructure:"new"`
}

func (c *SearchReplace) Execute() (*shell.Result, error) {
	return c.WP.Run("search-replace", c.Old, c.New)
}

// MaintenanceMode toggles the site maintenance page.
type MaintenanceMode struct {
	WP *Client
	On bool `mapstructure:"on"`
}

func (c *MaintenanceMode) Execute() (*shell.Result, error) {
	mode := "deactivate"
	if c.On {
		mode = "activate"
	}
	return c.WP.Run("maintenance-mode", mode)
}
