package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/config"
)

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the uxm configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  uxm config clear`,
		Annotations: map[string]string{cmdutil.SkipConfigCheck: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := cmdutil.EnvFromContext(cmd.Context())
			configPath := env.ConfigPath
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}
			return runClear(configPath, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runClear(configPath string, w io.Writer) error {
	err := os.Remove(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	if os.IsNotExist(err) {
		_, _ = green.Fprintf(w, "✓ No config file to remove\n")
	} else {
		_, _ = green.Fprintf(w, "✓ Configuration cleared from %s\n", configPath)
	}

	// Check if env vars are set
	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		_, _ = dim.Fprintf(w, "\nNote: Environment variables will still be used: %v\n", activeVars)
	}

	return nil
}
