// Package message provides the message command.
package message

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/markup"
)

// Render formats for message units.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatPlain    = "plain"
)

var renderers = map[string]func([]markup.Unit) string{
	FormatHTML:     markup.RenderHTML,
	FormatMarkdown: markup.RenderMarkdown,
	FormatPlain:    markup.RenderPlain,
}

// RenderFormats returns the accepted --format values.
func RenderFormats() []string {
	return []string{FormatHTML, FormatMarkdown, FormatPlain}
}

type messageOptions struct {
	text   string
	target string
	format string
	files  []string
	in     io.Reader
	out    io.Writer
}

// messageOutput is the structured result for one message.
type messageOutput struct {
	Source   string        `json:"source" yaml:"source"`
	Units    []markup.Unit `json:"units" yaml:"units"`
	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewCmdMessage creates the message command.
func NewCmdMessage() *cobra.Command {
	opts := &messageOptions{}

	cmd := &cobra.Command{
		Use:   "message [file...]",
		Short: "Render a free-text message with inline icons and links",
		Long: `Render a free-text message such as a banner or tooltip.

The whole input is one message. icon(name) and link(label | href) markers
become icon and link units, everything else is literal text. Every unit gets
its own display key. Links with a destination open in the link target.`,
		Example: `  # Render a message as HTML
  uxm message --text "icon(Info) Read link(the docs | https://example.com)"

  # Render as markdown with a custom link target
  uxm message notice.txt --format markdown --target _blank

  # Show the units as JSON
  uxm message --text "Saved icon(Accept)" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runMessage(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Message text instead of files or stdin")
	cmd.Flags().StringVar(&opts.target, "target", "", "Navigation target for links (default from config)")
	cmd.Flags().StringVar(&opts.format, "format", FormatHTML, "Render format: html, markdown, plain")

	return cmd
}

func runMessage(cmd *cobra.Command, opts *messageOptions) error {
	env := cmdutil.EnvFromContext(cmd.Context())
	log := logging.FromContext(cmd.Context())

	render, ok := renderers[strings.ToLower(opts.format)]
	if !ok {
		return fmt.Errorf("invalid render format %q: must be one of %s", opts.format, strings.Join(RenderFormats(), ", "))
	}

	target := opts.target
	if target == "" {
		target = env.Config.LinkTarget
	}

	inputs, readErr := cmdutil.ReadInputs(opts.text, opts.files, opts.in)
	if len(inputs) == 0 {
		return readErr
	}

	results := make([]messageOutput, 0, len(inputs))
	for _, input := range inputs {
		units, warnings := markup.MessageWithWarnings(input.Text, markup.MessageOptions{LinkTarget: target})
		logging.LogWarnings(log, input.Source, warnings)
		log.Debug("Mapped message", zap.String("source", input.Source), zap.Int("units", len(units)))
		results = append(results, messageOutput{Source: input.Source, Units: units, Warnings: warnings})
	}

	renderer := env.Renderer(opts.out)
	if renderer.IsStructured() {
		var err error
		if len(results) == 1 {
			err = renderer.RenderData(results[0].Units)
		} else {
			err = renderer.RenderData(results)
		}
		if err != nil {
			return err
		}
		return readErr
	}

	for _, r := range results {
		renderer.RenderText(render(r.Units))
	}
	return readErr
}
