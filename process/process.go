package process

import (
	"os"
	"syscall"
)

// IsAlive checks if a process with the given PID is still running.
// It uses a signal-sending method that works on Unix-like systems (macOS, Linux).
func IsAlive(pid int) bool {
	// PID 0 or less is invalid.
	if pid <= 0 {
		return false
	}

	// Find the process. This doesn't fail on Unix if the process doesn't exist.
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false // Should not happen on Unix-like systems.
	}

	// On Unix, sending signal 0 checks for existence without delivering a signal.
	// nil means alive with permission; EPERM means alive without permission;
	// ESRCH means the process is gone.
	err = proc.Signal(syscall.Signal(0))
	return err == nil || os.IsPermission(err)
}
