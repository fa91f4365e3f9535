package cli

import (
	"fmt"
	"os"

	"github.com/presstools/core/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a press.yml in your site directory.\n")
		return err

	case errors.ErrCodeCommandUnknown:
		if pressErr, ok := err.(*errors.PressError); ok {
			fmt.Fprintf(os.Stderr, "❌ Unknown command '%s'\n", pressErr.Details["command"])
		}
		fmt.Fprintf(os.Stderr, "Run 'pressctl list' to see available commands.\n")
		return err

	case errors.ErrCodeParamsInvalid:
		if pressErr, ok := err.(*errors.PressError); ok {
			fmt.Fprintf(os.Stderr, "❌ %s\n", pressErr.Message)
		}
		fmt.Fprintf(os.Stderr, "Pass parameters with --param key=value.\n")
		return err

	case errors.ErrCodeLaunchFailed:
		if pressErr, ok := err.(*errors.PressError); ok {
			fmt.Fprintf(os.Stderr, "❌ Could not start '%s'. Is it installed and on PATH?\n",
				pressErr.Details["binary"])
		}
		return err

	case errors.ErrCodePHPNotConfigured, errors.ErrCodePHPNotRunnable:
		fmt.Fprintf(os.Stderr, "❌ PHP is not usable. Set php.binary in press.yml to a working interpreter.\n")
		return err

	case errors.ErrCodeWPCLINotConfigured, errors.ErrCodeWPCLINotRunnable:
		fmt.Fprintf(os.Stderr, "❌ WP-CLI is not usable. Set wpcli.phar in press.yml to the wp-cli.phar path.\n")
		return err

	case errors.ErrCodeNotWordPressDir:
		fmt.Fprintf(os.Stderr, "❌ The site root does not contain a WordPress installation.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if pressErr, ok := err.(*errors.PressError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", pressErr.ToJSON())
			}
		}
		return err
	}
}
