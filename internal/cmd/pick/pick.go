// Package pick provides the pick command.
package pick

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/menu"
)

// chooser asks the user to pick one of the options and returns its value.
type chooser func(title string, options []huh.Option[string]) (string, error)

type pickOptions struct {
	text     string
	mode     string
	filter   string
	selected int
	static   bool
	files    []string
	in       io.Reader
	out      io.Writer
	choose   chooser
}

// pickOutput is the structured result of a pick.
type pickOutput struct {
	Selected int        `json:"selected" yaml:"selected"`
	Item     *menu.Item `json:"item" yaml:"item"`
}

// NewCmdPick creates the pick command.
func NewCmdPick() *cobra.Command {
	opts := &pickOptions{choose: selectPrompt}

	cmd := &cobra.Command{
		Use:   "pick [file]",
		Short: "Pick an item from a menu",
		Long: `Build a menu and pick one of its selectable items.

Without --select an interactive prompt lists the plain and child items.
With --select the 1-based line number is clamped into range, where 0 means
no item is selected.`,
		Example: `  # Pick interactively
  uxm pick menu.txt

  # Resolve line 3 without prompting
  uxm pick menu.txt --select 3 -o json

  # Pick from the items matching "open"
  uxm pick menu.txt --filter open`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			opts.static = cmd.Flags().Changed("select")
			return runPick(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Markup text instead of a file or stdin")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Build mode: flat, context, options (default from config)")
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Offer only items fuzzy-matching this query")
	cmd.Flags().IntVarP(&opts.selected, "select", "s", 0, "1-based line to select without prompting")

	return cmd
}

func runPick(cmd *cobra.Command, opts *pickOptions) error {
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

	inputs, err := cmdutil.ReadInputs(opts.text, opts.files, opts.in)
	if err != nil {
		return err
	}
	input := inputs[0]

	res := menu.Analyze(input.Text, mode)
	logging.LogWarnings(log, input.Source, res.Warnings)

	items := res.Items
	if opts.filter != "" {
		items = menu.Filter(items, opts.filter)
	}

	var (
		selected int
		item     *menu.Item
	)
	if opts.static {
		selected = menu.ClampSelection(opts.selected, maxPosition(items), menu.AllowNone)
		if it, ok := menu.ItemAt(items, selected); ok && it.IsSelectable() {
			item = &it
		}
	} else {
		item, err = prompt(items, opts.choose)
		if err != nil {
			return err
		}
		if item != nil {
			selected = item.Position
		}
	}

	log.Debug("Picked item", zap.Int("selected", selected), zap.Bool("found", item != nil))

	renderer := env.Renderer(opts.out)
	if renderer.IsStructured() {
		return renderer.RenderData(pickOutput{Selected: selected, Item: item})
	}
	if item == nil {
		renderer.RenderText("No item selected.")
		return nil
	}
	renderer.RenderKeyValue("Selected", selectionLabel(selected))
	renderer.RenderKeyValue("Key", item.Key)
	renderer.RenderKeyValue("Text", item.Text)
	if item.IconName != "" {
		renderer.RenderKeyValue("Icon", item.IconName)
	}
	return nil
}

// prompt offers the selectable items through choose.
func prompt(items []menu.Item, choose chooser) (*menu.Item, error) {
	selectable := menu.Selectable(items)
	if len(selectable) == 0 {
		return nil, errors.New("no selectable items")
	}

	options := make([]huh.Option[string], 0, len(selectable))
	for _, it := range selectable {
		options = append(options, huh.NewOption(optionLabel(it), it.Key))
	}

	key, err := choose("Pick an item", options)
	if err != nil {
		return nil, fmt.Errorf("failed to pick item: %w", err)
	}
	for _, it := range selectable {
		if it.Key == key {
			return &it, nil
		}
	}
	return nil, nil
}

// optionLabel renders an item for the prompt, indenting children.
func optionLabel(it menu.Item) string {
	var parts []string
	if it.IconName != "" {
		parts = append(parts, "["+it.IconName+"]")
	}
	if it.Text != "" {
		parts = append(parts, it.Text)
	}
	label := strings.Join(parts, " ")
	if it.Role == menu.RoleChild {
		label = "  " + label
	}
	return label
}

// maxPosition is the highest line ordinal among items.
func maxPosition(items []menu.Item) int {
	highest := 0
	for _, it := range items {
		if it.Position > highest {
			highest = it.Position
		}
	}
	return highest
}

func selectPrompt(title string, options []huh.Option[string]) (string, error) {
	var value string
	err := huh.NewSelect[string]().
		Title(title).
		Description("Use arrows to move, / to filter, enter to pick").
		Options(options...).
		Filtering(true).
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}
	return value, nil
}

// selectionLabel renders a selection index, where 0 means none.
func selectionLabel(selected int) string {
	if selected == 0 {
		return "none"
	}
	return strconv.Itoa(selected)
}
