package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Execution engine errors
	ErrCodeEmptyCommandLine ErrorCode = "EMPTY_COMMAND_LINE"
	ErrCodeLaunchFailed     ErrorCode = "LAUNCH_FAILED"
	ErrCodeStopTimeout      ErrorCode = "STOP_TIMEOUT"

	// Command dispatch errors
	ErrCodeCommandUnknown ErrorCode = "COMMAND_UNKNOWN"
	ErrCodeParamsInvalid  ErrorCode = "PARAMS_INVALID"

	// Dependency verification errors
	ErrCodePHPNotConfigured   ErrorCode = "PHP_NOT_CONFIGURED"
	ErrCodePHPNotRunnable     ErrorCode = "PHP_NOT_RUNNABLE"
	ErrCodeWPCLINotConfigured ErrorCode = "WPCLI_NOT_CONFIGURED"
	ErrCodeWPCLINotRunnable   ErrorCode = "WPCLI_NOT_RUNNABLE"
	ErrCodeNotWordPressDir    ErrorCode = "NOT_WORDPRESS_DIR"
	ErrCodeGitNotInstalled    ErrorCode = "GIT_NOT_INSTALLED"
	ErrCodeNotGitRepo         ErrorCode = "NOT_GIT_REPO"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// PressError represents a structured error with context
type PressError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *PressError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PressError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *PressError) WithDetail(key string, value interface{}) *PressError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *PressError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new PressError
func New(code ErrorCode, message string) *PressError {
	return &PressError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PressError
func Wrap(err error, code ErrorCode, message string) *PressError {
	return &PressError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific PressError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return GetCode(err) == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	pressErr, ok := err.(*PressError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return pressErr.Code
}
