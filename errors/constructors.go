package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *PressError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PressError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// EmptyCommandLine creates an error for a command line that sanitized away to nothing
func EmptyCommandLine(raw string) *PressError {
	return New(ErrCodeEmptyCommandLine, "command line is empty after sanitization").
		WithDetail("raw", raw)
}

// LaunchFailed creates an error for a process that could not be started
func LaunchFailed(binary string, err error) *PressError {
	return Wrap(err, ErrCodeLaunchFailed, fmt.Sprintf("failed to start '%s'", binary)).
		WithDetail("binary", binary)
}

// CommandUnknown creates an error for an unregistered command name
func CommandUnknown(name string) *PressError {
	return New(ErrCodeCommandUnknown, fmt.Sprintf("unknown command: %s", name)).
		WithDetail("command", name)
}

// ParamsInvalid creates an error for a missing or mistyped command parameter
func ParamsInvalid(command, param string) *PressError {
	return New(ErrCodeParamsInvalid,
		fmt.Sprintf("command '%s' requires parameter '%s'", command, param)).
		WithDetail("command", command).
		WithDetail("param", param)
}

// ParamsDecodeFailed wraps a parameter bag decoding failure
func ParamsDecodeFailed(command string, err error) *PressError {
	return Wrap(err, ErrCodeParamsInvalid,
		fmt.Sprintf("invalid parameters for command '%s'", command)).
		WithDetail("command", command)
}

// PHPNotConfigured creates an error for a missing PHP binary setting
func PHPNotConfigured() *PressError {
	return New(ErrCodePHPNotConfigured, "PHP binary is not configured")
}

// PHPNotRunnable creates an error for a PHP binary that does not run cleanly
func PHPNotRunnable(stderr string) *PressError {
	return New(ErrCodePHPNotRunnable, "PHP binary is configured but not runnable").
		WithDetail("stderr", stderr)
}

// WPCLINotConfigured creates an error for a missing WP-CLI phar setting
func WPCLINotConfigured() *PressError {
	return New(ErrCodeWPCLINotConfigured, "WP-CLI phar path is not configured")
}

// WPCLINotRunnable creates an error for a WP-CLI phar that does not run cleanly
func WPCLINotRunnable(stderr string) *PressError {
	return New(ErrCodeWPCLINotRunnable, "WP-CLI is configured but not runnable").
		WithDetail("stderr", stderr)
}

// NotWordPressDir creates an error for a site root without a WordPress installation
func NotWordPressDir(path string) *PressError {
	return New(ErrCodeNotWordPressDir,
		fmt.Sprintf("'%s' does not contain a usable WordPress installation", path)).
		WithDetail("path", path)
}

// GitNotInstalled creates an error for a git binary that is missing or broken
func GitNotInstalled(stderr string) *PressError {
	return New(ErrCodeGitNotInstalled, "git is not installed or not runnable").
		WithDetail("stderr", stderr)
}

// NotGitRepo creates an error for a directory that is not a git repository
func NotGitRepo(path string) *PressError {
	return New(ErrCodeNotGitRepo, fmt.Sprintf("'%s' is not a git repository", path)).
		WithDetail("path", path)
}

// StopTimeout creates an error for a process that ignored graceful termination
func StopTimeout(pid int) *PressError {
	return New(ErrCodeStopTimeout,
		fmt.Sprintf("process %d ignored termination signal and was killed", pid)).
		WithDetail("pid", pid)
}
