package shell

import (
	"os/exec"
)

// Executor creates exec.Cmd instances. This abstraction allows for dependency
// injection, enabling test-specific command creation logic (e.g., routing
// invocations to a helper process) without modifying production code.
type Executor interface {
	// Command creates a new exec.Cmd instance for the given binary and arguments.
	Command(name string, args ...string) *exec.Cmd
}

// RealExecutor is the production implementation of the Executor interface,
// which uses the standard os/exec package to create commands.
type RealExecutor struct{}

// Command creates a standard exec.Cmd.
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}
