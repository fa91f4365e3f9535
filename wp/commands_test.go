package wp

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presstools/core/config"
	"github.com/presstools/core/errors"
	"github.com/presstools/core/logging"
	"github.com/presstools/core/registry"
	"github.com/presstools/core/shell"
)

// recordingExecutor captures the argv of every launched process and replaces
// it with a no-op binary.
type recordingExecutor struct {
	calls [][]string
}

func (r *recordingExecutor) Command(name string, args ...string) *exec.Cmd {
	r.calls = append(r.calls, append([]string{name}, args...))
	return exec.Command("true")
}

func testContext(t *testing.T) (*registry.Context, *recordingExecutor) {
	t.Helper()
	rec := &recordingExecutor{}
	cfg := &config.Config{
		PHP:   config.PHPConfig{Binary: "php"},
		WPCLI: config.WPCLIConfig{Phar: "/opt/wp-cli.phar"},
		Site:  config.SiteConfig{Root: "/var/www/site"},
	}
	ctx := &registry.Context{
		Shell:  shell.New(t.TempDir(), shell.WithExecutor(rec)),
		Config: cfg,
		Log:    logging.NewLogger("wp-test"),
	}
	return ctx, rec
}

func TestClientRunArgv(t *testing.T) {
	ctx, rec := testContext(t)
	client := NewClient(ctx.Shell, ctx.Config)

	_, err := client.Run("plugin", "list")
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t,
		[]string{"php", "/opt/wp-cli.phar", "--path=/var/www/site", "plugin", "list"},
		rec.calls[0])
}

func TestClientOmitsPathWithoutSiteRoot(t *testing.T) {
	rec := &recordingExecutor{}
	cfg := &config.Config{WPCLI: config.WPCLIConfig{Phar: "/opt/wp-cli.phar"}}
	client := NewClient(shell.New(t.TempDir(), shell.WithExecutor(rec)), cfg)

	_, err := client.Run("core", "version")
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, []string{"php", "/opt/wp-cli.phar", "core", "version"}, rec.calls[0])
}

func TestRegisteredCommands(t *testing.T) {
	ctx, _ := testContext(t)
	reg := registry.New(logging.NewLogger("wp-test"))
	Register(reg)

	expected := []string{
		"core-update", "core-version", "db-export", "maintenance-mode",
		"plugin-activate", "plugin-deactivate", "plugin-list",
		"search-replace", "theme-list", "user-list",
	}
	assert.Equal(t, expected, reg.Names())

	// Parameterless command dispatch end to end.
	cmd, err := reg.Create("core-version", ctx, nil)
	require.NoError(t, err)
	_, err = cmd.Execute()
	require.NoError(t, err)
}

func TestPluginActivateArgv(t *testing.T) {
	ctx, rec := testContext(t)
	reg := registry.New(logging.NewLogger("wp-test"))
	Register(reg)

	cmd, err := reg.Create("plugin-activate", ctx, registry.Params{"plugin": "akismet"})
	require.NoError(t, err)
	_, err = cmd.Execute()
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t,
		[]string{"php", "/opt/wp-cli.phar", "--path=/var/www/site", "plugin", "activate", "akismet"},
		rec.calls[0])
}

func TestPluginActivateRequiresPlugin(t *testing.T) {
	ctx, _ := testContext(t)
	reg := registry.New(logging.NewLogger("wp-test"))
	Register(reg)

	_, err := reg.Create("plugin-activate", ctx, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeParamsInvalid))
}

func TestSearchReplaceParams(t *testing.T) {
	ctx, rec := testContext(t)
	reg := registry.New(logging.NewLogger("wp-test"))
	Register(reg)

	cmd, err := reg.Create("search-replace", ctx, registry.Params{
		"old": "http://old.example",
		"new": "http://new.example",
	})
	require.NoError(t, err)
	_, err = cmd.Execute()
	require.NoError(t, err)

	require.Len(t, rec.calls, 1)
	assert.Equal(t,
		[]string{"php", "/opt/wp-cli.phar", "--path=/var/www/site",
			"search-replace", "http://old.example", "http://new.example"},
		rec.calls[0])

	_, err = reg.Create("search-replace", ctx, registry.Params{"old": "a"})
	assert.True(t, errors.Is(err, errors.ErrCodeParamsInvalid))
}

func TestMaintenanceModeToggle(t *testing.T) {
	ctx, rec := testContext(t)
	reg := registry.New(logging.NewLogger("wp-test"))
	Register(reg)

	cmd, err := reg.Create("maintenance-mode", ctx, registry.Params{"on": "true"})
	require.NoError(t, err)
	_, err = cmd.Execute()
	require.NoError(t, err)

	cmd, err = reg.Create("maintenance-mode", ctx, nil)
	require.NoError(t, err)
	_, err = cmd.Execute()
	require.NoError(t, err)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, "activate", rec.calls[0][len(rec.calls[0])-1])
	assert.Equal(t, "deactivate", rec.calls[1][len(rec.calls[1])-1])
}
