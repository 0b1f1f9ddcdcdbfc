// Package root provides the root command for the uxm CLI.
package root

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/build"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/completion"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/configcmd"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/importcmd"
	initcmd "github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/init"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/message"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/pick"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/steps"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/tokenize"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/version"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/view"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/menu"
)

// NewCmdRoot creates the root command for uxm.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uxm",
		Short: "Turn line markup into menu, list and message models",
		Long: `uxm turns the line markup typed into design-tool properties into the
item models of lists, menus and messages.

Each line is an item. icon(name) and link(label | href) markers add icons
and links, "divider" or "----" draws a rule, and "*" marks a child under a
header.

Get started by running: uxm build --text 'File\n* Save\n* Open'`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return cmdutil.Setup(cmd) },
		PersistentPostRun: func(cmd *cobra.Command, _ []string) { cmdutil.Teardown(cmd) },
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/uxm/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: "+strings.Join(view.ValidFormats(), ", "))
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("log-level", "", "log level: "+strings.Join(logging.Levels(), ", "))

	// Set version template
	cmd.SetVersionTemplate(version.Info() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(tokenize.NewCmdTokenize())
	cmd.AddCommand(build.NewCmdBuild())
	cmd.AddCommand(message.NewCmdMessage())
	cmd.AddCommand(steps.NewCmdSteps())
	cmd.AddCommand(pick.NewCmdPick())
	cmd.AddCommand(importcmd.NewCmdImport())
	cmd.AddCommand(completion.NewCmdCompletion())

	completion.RegisterFlagValues(cmd, map[string][]string{
		"output":         view.ValidFormats(),
		"default-output": view.ValidFormats(),
		"mode":           menu.ModeNames(),
		"log-level":      logging.Levels(),
		"format":         message.RenderFormats(),
		"from":           importcmd.Froms(),
	})

	return cmd
}
