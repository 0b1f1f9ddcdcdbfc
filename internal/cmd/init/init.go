// Package init provides the init command for uxm.
package init

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/config"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/view"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/menu"
)

type initOptions struct {
	mode       string
	output     string
	linkTarget string
	defaults   bool
	force      bool
	configPath string
	out        io.Writer

	// confirm and fill are the interactive steps; tests replace them.
	confirm func(path string) (bool, error)
	fill    func(cfg *config.Config) error
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{
		confirm: confirmOverwrite,
		fill:    func(cfg *config.Config) error { return newInitForm(cfg).Run() },
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize uxm configuration",
		Long: `Initialize uxm with your preferred defaults.

This command will guide you through choosing the default output format,
build mode, link target and logging. The configuration will be saved to
~/.config/uxm/config.yml.`,
		Example: `  # Interactive setup
  uxm init

  # Pre-populate the build mode
  uxm init --mode options

  # Write the defaults without prompting
  uxm init --defaults --force`,
		Annotations: map[string]string{cmdutil.SkipConfigCheck: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath = cmdutil.EnvFromContext(cmd.Context()).ConfigPath
			if opts.configPath == "" {
				opts.configPath = config.DefaultConfigPath()
			}
			opts.out = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Default build mode: flat, context, options")
	cmd.Flags().StringVar(&opts.output, "default-output", "", "Default output format")
	cmd.Flags().StringVar(&opts.linkTarget, "link-target", "", "Navigation target for message links")
	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "Skip the form and save defaults plus any flags given")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration without asking")

	return cmd
}

func runInit(opts *initOptions) error {
	// Check if config already exists
	if _, err := os.Stat(opts.configPath); err == nil && !opts.force {
		overwrite, err := opts.confirm(opts.configPath)
		if err != nil {
			return err
		}
		if !overwrite {
			_, _ = fmt.Fprintln(opts.out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		OutputFormat: opts.output,
		Mode:         opts.mode,
		LinkTarget:   opts.linkTarget,
	}
	cfg.ApplyDefaults()

	if !opts.defaults {
		if err := opts.fill(cfg); err != nil {
			return err
		}
	}

	return saveConfig(cfg, opts.configPath, opts.out)
}

// saveConfig validates and writes cfg, then prints the next steps.
func saveConfig(cfg *config.Config, path string, w io.Writer) error {
	cfg.LinkTarget = strings.TrimSpace(cfg.LinkTarget)
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\nConfiguration saved to %s\n", path)
	_, _ = fmt.Fprintln(w, "\nYou're all set! Try running:")
	_, _ = fmt.Fprintln(w, "  uxm build --text 'File\\n* Save\\n* Open'")
	_, _ = fmt.Fprintln(w, "  uxm message --text 'Read link(the docs | https://example.com)'")

	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Configuration already exists").
		Description(fmt.Sprintf("Overwrite %s?", path)).
		Value(&overwrite).
		Run()
	return overwrite, err
}

// newInitForm builds the setup form bound to cfg.
func newInitForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for command output").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&cfg.OutputFormat),

			huh.NewSelect[string]().
				Title("Build mode").
				Description("flat lists, context menus or selectable option menus").
				Options(huh.NewOptions(menu.ModeNames()...)...).
				Value(&cfg.Mode),

			huh.NewInput().
				Title("Link target").
				Description("Navigation context message links open in").
				Placeholder(cfg.LinkTarget).
				Value(&cfg.LinkTarget).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("link target is required")
					}
					if strings.ContainsAny(strings.TrimSpace(s), " \t") {
						return fmt.Errorf("link target must not contain spaces")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Description("none, normal (warnings on stderr) or debug").
				Options(huh.NewOptions(logging.Levels()...)...).
				Value(&cfg.LogLevel),

			huh.NewInput().
				Title("Log file (optional)").
				Description("Also append log records to this file").
				Placeholder("~/.local/state/uxm/uxm.log").
				Value(&cfg.LogFile),
		),
	)
}
