package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the pressctl command tree.
func NewRootCmd() *cobra.Command {
	root := NewStandardCommand(
		"pressctl",
		"Manage a WordPress site by driving wp-cli and git",
	)

	root.AddCommand(newRunCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())

	return root
}
