// Package build provides the build command.
package build

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/view"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/menu"
)

type buildOptions struct {
	text     string
	mode     string
	filter   string
	fallback string
	width    int
	files    []string
	in       io.Reader
	out      io.Writer
}

// sourceOutput is the structured result for one input when several are built.
type sourceOutput struct {
	Source   string      `json:"source" yaml:"source"`
	Mode     string      `json:"mode" yaml:"mode"`
	Items    []menu.Item `json:"items" yaml:"items"`
	Warnings []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build [file...]",
		Short: "Build menu items from line markup",
		Long: `Build the item model of a list or menu from line markup.

Modes:
  flat     plain items and dividers only; a single comma-joined line is a list
  context  grouped context menu: headers, children and dividers
  options  grouped selectable option menu (dropdowns, choice groups)

In the grouped modes a line starting with "*" is a child. When any line uses
it, every other line is a header. Keys are the 1-based line number, with
"header_" or "divider_" prepended for headers and dividers.`,
		Example: `  # Build a context menu
  printf 'File\n* icon(Save) Save\n* Open\ndivider\nHelp' | uxm build --mode context

  # Build a flat list from a comma-joined line
  uxm build --mode flat --text 'Yes, No, "Maybe, later"'

  # Draw the menu, keeping only items matching "sav"
  uxm build menu.txt --filter sav -o menu`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Markup text to build instead of files or stdin")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Build mode: flat, context, options (default from config)")
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Keep only items fuzzy-matching this query")
	cmd.Flags().StringVar(&opts.fallback, "fallback", "", "Label of a single item to emit when nothing is built")
	cmd.Flags().IntVarP(&opts.width, "width", "w", view.DefaultMenuWidth, "Width of the menu output format")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	env := cmdutil.EnvFromContext(cmd.Context())
	log := logging.FromContext(cmd.Context())

	modeName := opts.mode
	if modeName == "" {
		modeName = env.Config.Mode
	}
	mode, err := menu.ParseMode(modeName)
	if err != nil {
		return err
	}

	inputs, readErr := cmdutil.ReadInputs(opts.text, opts.files, opts.in)
	if len(inputs) == 0 {
		return readErr
	}

	results := make([]sourceOutput, 0, len(inputs))
	for _, input := range inputs {
		res := menu.Analyze(input.Text, mode)
		logging.LogWarnings(log, input.Source, res.Warnings)

		items := res.Items
		if opts.filter != "" {
			items = menu.Filter(items, opts.filter)
		}
		if opts.fallback != "" {
			items = menu.WithFallback(items, opts.fallback)
		}

		log.Debug("Built items",
			zap.String("source", input.Source),
			zap.String("mode", mode.String()),
			zap.Int("items", len(items)))

		results = append(results, sourceOutput{
			Source:   input.Source,
			Mode:     mode.String(),
			Items:    items,
			Warnings: res.Warnings,
		})
	}

	if err := render(env.Renderer(opts.out), results, opts.width); err != nil {
		return err
	}
	return readErr
}

func render(renderer *view.Renderer, results []sourceOutput, width int) error {
	if renderer.IsStructured() {
		if len(results) == 1 {
			return renderer.RenderData(results[0].Items)
		}
		return renderer.RenderData(results)
	}

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				renderer.RenderText("")
			}
			renderer.RenderText("# " + r.Source)
		}

		if renderer.Format() == view.FormatMenu {
			renderer.RenderMenu(r.Items, width)
			continue
		}

		if len(r.Items) == 0 {
			renderer.RenderText("No items.")
			continue
		}

		headers := []string{"KEY", "ROLE", "ICON", "TEXT", "TYPE"}
		rows := make([][]string, 0, len(r.Items))
		for _, it := range r.Items {
			itemType := ""
			if it.ItemType != "" {
				itemType = fmt.Sprintf("%s (%s)", it.ItemType, strconv.Itoa(it.ItemType.Ordinal()))
			}
			rows = append(rows, []string{
				it.Key,
				string(it.Role),
				it.IconName,
				view.Truncate(it.Text, 60),
				itemType,
			})
		}
		renderer.RenderTable(headers, rows)
	}
	return nil
}
