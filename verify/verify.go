// Package verify answers "is tool X usable here" through chains of cheap
// probes. Each probe runs the target with a version or identity flag through
// the shell facade; any captured stderr means the tool is not usable. Checks
// are gated: verifying WP-CLI first verifies the PHP interpreter, verifying
// the site directory first verifies WP-CLI. Every failure is a distinct typed
// error so callers can render a precise message. Results are never cached;
// every call re-verifies.
package verify

import (
	"strings"

	"github.com/presstools/core/config"
	"github.com/presstools/core/errors"
	"github.com/presstools/core/shell"
)

// Verifier runs dependency checks against one shell and configuration.
type Verifier struct {
	sh  *shell.Shell
	cfg *config.Config
}

// New creates a Verifier bound to the given shell and configuration.
func New(sh *shell.Shell, cfg *config.Config) *Verifier {
	return &Verifier{sh: sh, cfg: cfg}
}

// PHP verifies the configured PHP interpreter: it must be configured and
// `php --version` must run with a clean stderr.
func (v *Verifier) PHP() error {
	if v.cfg.PHP.Binary == "" {
		return errors.PHPNotConfigured()
	}
	res, err := v.sh.Execute(v.cfg.PHP.Binary + " --version")
	if err != nil {
		return errors.PHPNotRunnable(err.Error())
	}
	if !res.Successful() {
		return errors.PHPNotRunnable(res.Stderr)
	}
	return nil
}

// WPCLI verifies the WP-CLI phar. Requires a usable PHP interpreter first.
func (v *Verifier) WPCLI() error {
	if err := v.PHP(); err != nil {
		return err
	}
	if v.cfg.WPCLI.Phar == "" {
		return errors.WPCLINotConfigured()
	}
	res, err := v.sh.Execute(v.cfg.PHP.Binary + " " + v.cfg.WPCLI.Phar + " --version")
	if err != nil {
		return errors.WPCLINotRunnable(err.Error())
	}
	if !res.Successful() {
		return errors.WPCLINotRunnable(res.Stderr)
	}
	return nil
}

// WordPressDir verifies that the site root holds a usable WordPress
// installation. Requires usable WP-CLI first.
func (v *Verifier) WordPressDir() error {
	if err := v.WPCLI(); err != nil {
		return err
	}
	line := strings.Join([]string{
		v.cfg.PHP.Binary,
		v.cfg.WPCLI.Phar,
		"--path=" + v.cfg.WorkDir(),
		"core", "is-installed",
	}, " ")
	res, err := v.sh.Execute(line)
	if err != nil {
		return errors.NotWordPressDir(v.cfg.WorkDir())
	}
	if !res.Successful() {
		return errors.NotWordPressDir(v.cfg.WorkDir())
	}
	return nil
}

// Git verifies that the git binary runs.
func (v *Verifier) Git() error {
	res, err := v.sh.Execute("git --version")
	if err != nil {
		return errors.GitNotInstalled(err.Error())
	}
	if !res.Successful() {
		return errors.GitNotInstalled(res.Stderr)
	}
	return nil
}

// GitRepo verifies that the working directory is inside a git repository.
// Requires a usable git binary first.
func (v *Verifier) GitRepo() error {
	if err := v.Git(); err != nil {
		return err
	}
	res, err := v.sh.Execute("git rev-parse --git-dir")
	if err != nil {
		return errors.NotGitRepo(v.sh.WorkDir())
	}
	if !res.Successful() {
		return errors.NotGitRepo(v.sh.WorkDir())
	}
	return nil
}

// Check pairs a human-readable name with one verification probe.
type Check struct {
	Name string
	Run  func() error
}

// Checks returns the full verification chain in dependency order, for callers
// that render a report (the doctor command).
func (v *Verifier) Checks() []Check {
	return []Check{
		{Name: "PHP interpreter", Run: v.PHP},
		{Name: "WP-CLI", Run: v.WPCLI},
		{Name: "WordPress installation", Run: v.WordPressDir},
		{Name: "git", Run: v.Git},
		{Name: "git repository", Run: v.GitRepo},
	}
}
