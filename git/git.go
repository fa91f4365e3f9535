// Package git drives the git CLI through the shell facade. All operations
// run in the shell's working directory, which is expected to be the site
// root under version control.
package git

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/presstools/core/config"
	"github.com/presstools/core/shell"
)

// Client runs git commands with the configured SSH identity.
type Client struct {
	sh     *shell.Shell
	sshKey string
}

// NewClient creates a client from the shared configuration.
func NewClient(sh *shell.Shell, cfg *config.Config) *Client {
	return &Client{sh: sh, sshKey: cfg.Git.SSHKey}
}

// run executes one git command with the SSH overlay applied.
func (c *Client) run(args ...string) (*shell.Result, error) {
	line := "git " + strings.Join(args, " ")
	return c.sh.ExecuteEnv(line, c.env())
}

// env returns the environment overlay injected into every git invocation.
// With a configured SSH key, GIT_SSH_COMMAND pins git to that identity.
func (c *Client) env() map[string]string {
	if c.sshKey == "" {
		return nil
	}
	return map[string]string{
		"GIT_SSH_COMMAND": fmt.Sprintf("ssh -i %s -o IdentitiesOnly=yes", c.sshKey),
	}
}

// Clone clones a repository into the working directory.
func (c *Client) Clone(url string) (*shell.Result, error) {
	return c.run("clone", url)
}

// Status reports the working tree status.
func (c *Client) Status() (*shell.Result, error) {
	return c.run("status", "--porcelain")
}

// Add stages a path.
func (c *Client) Add(path string) (*shell.Result, error) {
	return c.run("add", path)
}

// Commit records staged changes. The message is carried on the normal
// command line, so it is subject to whitespace tokenization: a multi-word
// message reaches git as separate arguments. Callers wanting exact messages
// should keep them to a single token.
func (c *Client) Commit(message string) (*shell.Result, error) {
	return c.run("commit", "-m", message)
}

// Pull fetches and integrates from the default remote.
func (c *Client) Pull() (*shell.Result, error) {
	return c.run("pull")
}

// Push updates the default remote.
func (c *Client) Push() (*shell.Result, error) {
	return c.run("push")
}

// Log returns the last n commits, one line each.
func (c *Client) Log(n int) (*shell.Result, error) {
	if n <= 0 {
		n = 10
	}
	return c.run("log", "--oneline", "-n", strconv.Itoa(n))
}

// CurrentBranch returns the checked-out branch name.
func (c *Client) CurrentBranch() (string, error) {
	res, err := c.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}
