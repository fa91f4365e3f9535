package errors

import (
	"fmt"
	"testing"
)

func TestPressError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeCommandUnknown, "unknown command")
	if err.Code != ErrCodeCommandUnknown {
		t.Errorf("expected code %s, got %s", ErrCodeCommandUnknown, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeLaunchFailed, "launch failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeLaunchFailed) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeCommandUnknown) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("command", "plugin-activate").WithDetail("attempt", 1)
	if detailed.Details["command"] != "plugin-activate" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	// Test CommandUnknown
	err := CommandUnknown("db-import")
	if err.Code != ErrCodeCommandUnknown {
		t.Errorf("expected code %s, got %s", ErrCodeCommandUnknown, err.Code)
	}
	if err.Details["command"] != "db-import" {
		t.Error("CommandUnknown should include command detail")
	}

	// Test LaunchFailed
	cause := fmt.Errorf("no such file or directory")
	err = LaunchFailed("wp-cli.phar", cause)
	if err.Code != ErrCodeLaunchFailed {
		t.Errorf("expected code %s, got %s", ErrCodeLaunchFailed, err.Code)
	}
	if err.Details["binary"] != "wp-cli.phar" {
		t.Error("LaunchFailed should include binary detail")
	}
	if err.Unwrap() != cause {
		t.Error("LaunchFailed should preserve the cause")
	}

	// Test ParamsInvalid
	err = ParamsInvalid("search-replace", "old")
	if err.Code != ErrCodeParamsInvalid {
		t.Errorf("expected code %s, got %s", ErrCodeParamsInvalid, err.Code)
	}
	if err.Details["param"] != "old" {
		t.Error("ParamsInvalid should include param detail")
	}

	// Test verification constructors are distinguishable
	if GetCode(PHPNotConfigured()) == GetCode(PHPNotRunnable("boom")) {
		t.Error("configured and runnable failures must carry distinct codes")
	}
}
