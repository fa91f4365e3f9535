package git

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
	"github.com/presstools/core/testutil"
)

// recordingExecutor captures every created command so argv and environment
// can be inspected after execution.
type recordingExecutor struct {
	cmds []*exec.Cmd
}

func (r *recordingExecutor) Command(name string, args ...string) *exec.Cmd {
	cmd := exec.Command("true")
	// Keep the requested argv; Path stays the no-op binary.
	cmd.Args = append([]string{name}, args...)
	r.cmds = append(r.cmds, cmd)
	return cmd
}

func newRecordedClient(t *testing.T, cfg *config.Config) (*Client, *recordingExecutor) {
	t.Helper()
	rec := &recordingExecutor{}
	sh := shell.New(t.TempDir(), shell.WithExecutor(rec))
	return NewClient(sh, cfg), rec
}

func TestCloneArgv(t *testing.T) {
	client, rec := newRecordedClient(t, &config.Config{})

	_, err := client.Clone("git@github.com:example/site.git")
	require.NoError(t, err)

	require.Len(t, rec.cmds, 1)
	assert.Equal(t,
		[]string{"git", "clone", "git@github.com:example/site.git"},
		rec.cmds[0].Args)
}

func TestSSHKeyOverlay(t *testing.T) {
	cfg := &config.Config{Git: config.GitConfig{SSHKey: "/home/admin/.ssh/deploy_key"}}
	client, rec := newRecordedClient(t, cfg)

	_, err := client.Pull()
	require.NoError(t, err)

	require.Len(t, rec.cmds, 1)
	assert.Contains(t, rec.cmds[0].Env,
		"GIT_SSH_COMMAND=ssh -i /home/admin/.ssh/deploy_key -o IdentitiesOnly=yes")
}

func TestNoOverlayWithoutKey(t *testing.T) {
	client, rec := newRecordedClient(t, &config.Config{})

	_, err := client.Status()
	require.NoError(t, err)

	require.Len(t, rec.cmds, 1)
	for _, kv := range rec.cmds[0].Env {
		assert.NotContains(t, kv, "GIT_SSH_COMMAND=")
	}
}

func TestRegisteredCommands(t *testing.T) {
	reg := registry.New(logging.NewLogger("git-test"))
	Register(reg)

	expected := []string{"git-clone", "git-commit", "git-log", "git-pull", "git-push", "git-status"}
	assert.Equal(t, expected, reg.Names())

	_, err := reg.Create("git-clone", &registry.Context{}, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeParamsInvalid))
}

func TestCommitRequiresMessage(t *testing.T) {
	reg := registry.New(logging.NewLogger("git-test"))
	Register(reg)

	_, err := reg.Create("git-commit", &registry.Context{}, registry.Params{})
	assert.True(t, errors.Is(err, errors.ErrCodeParamsInvalid))
}

func TestAgainstRealRepository(t *testing.T) {
	testutil.RequireBinary(t, "git")

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)

	sh := shell.New(dir)
	client := NewClient(sh, &config.Config{})

	t.Run("current branch", func(t *testing.T) {
		branch, err := client.CurrentBranch()
		require.NoError(t, err)
		assert.NotEmpty(t, branch)
	})

	t.Run("clean status", func(t *testing.T) {
		res, err := client.Status()
		require.NoError(t, err)
		assert.True(t, res.Successful())
		assert.Empty(t, res.Stdout)
	})

	t.Run("log after commit", func(t *testing.T) {
		res, err := client.Log(5)
		require.NoError(t, err)
		require.True(t, res.Successful())
		assert.Len(t, res.StdoutLines(), 1)
	})
}
