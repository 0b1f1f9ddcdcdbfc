// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// envVars lists the environment variables that override the config file.
var envVars = []string{"UXM_OUTPUT", "UXM_MODE", "UXM_LINK_TARGET", "UXM_LOG_LEVEL", "UXM_LOG_FILE"}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage uxm configuration",
		Long:  `Commands for viewing and clearing uxm configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
