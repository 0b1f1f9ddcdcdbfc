// Package steps provides the steps command.
package steps

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/menu"
)

type stepsOptions struct {
	text     string
	selected int
	files    []string
	in       io.Reader
	out      io.Writer
}

// NewCmdSteps creates the steps command.
func NewCmdSteps() *cobra.Command {
	opts := &stepsOptions{}

	cmd := &cobra.Command{
		Use:   "steps [file]",
		Short: "Build wizard steps from a list",
		Long: `Build wizard steps from a flat list.

Each line is one step written as "Name | Heading". The heading defaults to
the name. Dividers are skipped. With --select the current step is clamped
into range: a wizard always has one step selected.`,
		Example: `  # List the steps of a wizard
  printf 'Account | Create your account\nProfile\nDone' | uxm steps

  # Show the current step
  uxm steps wizard.txt --select 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runSteps(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Step list instead of a file or stdin")
	cmd.Flags().IntVarP(&opts.selected, "select", "s", 0, "1-based step to show as current")

	return cmd
}

func runSteps(cmd *cobra.Command, opts *stepsOptions) error {
	env := cmdutil.EnvFromContext(cmd.Context())
	log := logging.FromContext(cmd.Context())

	inputs, err := cmdutil.ReadInputs(opts.text, opts.files, opts.in)
	if err != nil {
		return err
	}
	input := inputs[0]

	res := menu.Analyze(input.Text, menu.Mode{})
	logging.LogWarnings(log, input.Source, res.Warnings)

	steps := menu.ParseSteps(input.Text)
	log.Debug("Parsed steps", zap.String("source", input.Source), zap.Int("steps", len(steps)))

	renderer := env.Renderer(opts.out)

	if cmd.Flags().Changed("select") || opts.selected != 0 {
		current := menu.ClampSelection(opts.selected, len(steps), menu.RequireOne)
		if current == 0 {
			renderer.RenderText("No steps.")
			return nil
		}
		step := steps[current-1]
		if renderer.IsStructured() {
			return renderer.RenderData(step)
		}
		renderer.RenderKeyValue("Step", fmt.Sprintf("%d of %d", current, len(steps)))
		renderer.RenderKeyValue("Name", step.Name)
		renderer.RenderKeyValue("Heading", step.Heading)
		if step.IconName != "" {
			renderer.RenderKeyValue("Icon", step.IconName)
		}
		return nil
	}

	if renderer.IsStructured() {
		return renderer.RenderData(steps)
	}

	if len(steps) == 0 {
		renderer.RenderText("No steps.")
		return nil
	}

	headers := []string{"STEP", "NAME", "HEADING"}
	rows := make([][]string, 0, len(steps))
	for i, s := range steps {
		rows = append(rows, []string{strconv.Itoa(i + 1), s.Name, s.Heading})
	}
	renderer.RenderTable(headers, rows)
	return nil
}
