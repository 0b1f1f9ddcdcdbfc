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

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current uxm configuration with source indicators.`,
		Example: `  # Show current config
  uxm config show`,
		Annotations: map[string]string{cmdutil.SkipConfigCheck: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := cmdutil.EnvFromContext(cmd.Context())
			configPath := env.ConfigPath
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}
			return runShow(configPath, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, w io.Writer) error {
	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar, fallback string) {
		_, _ = bold.Fprintf(w, "%-12s", label+":")
		if value == "" {
			if fallback == "" {
				_, _ = dim.Fprintln(w, "-")
				return
			}
			_, _ = fmt.Fprint(w, fallback)
			_, _ = dim.Fprintln(w, "  (source: default)")
			return
		}

		_, _ = fmt.Fprint(w, value)

		// Determine source
		source := "config"
		if v := os.Getenv(envVar); v != "" && v == value {
			source = envVar
		} else if fileErr != nil || fileValue != value {
			source = "-"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	defaults := &config.Config{}
	defaults.ApplyDefaults()

	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "UXM_OUTPUT", defaults.OutputFormat)
	printField("Mode", cfg.Mode, fileCfg.Mode, "UXM_MODE", defaults.Mode)
	printField("Link target", cfg.LinkTarget, fileCfg.LinkTarget, "UXM_LINK_TARGET", defaults.LinkTarget)
	printField("Log level", cfg.LogLevel, fileCfg.LogLevel, "UXM_LOG_LEVEL", defaults.LogLevel)
	printField("Log file", cfg.LogFile, fileCfg.LogFile, "UXM_LOG_FILE", "")

	_, _ = fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
