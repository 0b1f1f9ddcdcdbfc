// Package tokenize provides the tokenize command.
package tokenize

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/markup"
)

type tokenizeOptions struct {
	text    string
	message bool
	files   []string
	in      io.Reader
	out     io.Writer
}

// lineOutput is the structured form of one tokenized line.
type lineOutput struct {
	Source    string            `json:"source" yaml:"source"`
	Line      int               `json:"line" yaml:"line"`
	Kind      markup.LineKind   `json:"kind" yaml:"kind"`
	Fragments []markup.Fragment `json:"fragments,omitempty" yaml:"fragments,omitempty"`
	Warnings  []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewCmdTokenize creates the tokenize command.
func NewCmdTokenize() *cobra.Command {
	opts := &tokenizeOptions{}

	cmd := &cobra.Command{
		Use:   "tokenize [file...]",
		Short: "Show how line markup is tokenized",
		Long: `Tokenize line markup and show the fragments of every line.

Each non-blank line is parsed on its own: icon(name) and link(label | href)
markers become icon and link fragments, the rest becomes text. Lines equal to
"divider" or starting with four dashes are dividers.

With --message the whole input is tokenized as one free-text message and
dividers are not recognized.`,
		Example: `  # Tokenize a single line
  uxm tokenize --text "icon(Home) Home"

  # Tokenize a file as JSON
  uxm tokenize menu.txt -o json

  # Tokenize a banner message from stdin
  echo "Read link(the docs | https://example.com) first" | uxm tokenize --message`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runTokenize(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Markup text to tokenize instead of files or stdin")
	cmd.Flags().BoolVarP(&opts.message, "message", "m", false, "Tokenize the whole input as one message")

	return cmd
}

func runTokenize(cmd *cobra.Command, opts *tokenizeOptions) error {
	env := cmdutil.EnvFromContext(cmd.Context())
	log := logging.FromContext(cmd.Context())

	inputs, readErr := cmdutil.ReadInputs(opts.text, opts.files, opts.in)
	if len(inputs) == 0 {
		return readErr
	}

	var results []lineOutput
	for _, input := range inputs {
		results = append(results, tokenizeInput(input, opts.message)...)
	}
	for _, r := range results {
		logging.LogWarnings(log, fmt.Sprintf("%s:%d", r.Source, r.Line), r.Warnings)
	}

	renderer := env.Renderer(opts.out)
	if renderer.IsStructured() {
		if results == nil {
			results = []lineOutput{}
		}
		if err := renderer.RenderData(results); err != nil {
			return err
		}
		return readErr
	}

	headers := []string{"LINE", "KIND", "FRAGMENTS"}
	if len(inputs) > 1 {
		headers = append([]string{"SOURCE"}, headers...)
	}
	var rows [][]string
	for _, r := range results {
		row := []string{strconv.Itoa(r.Line), r.Kind.String(), describeFragments(r.Fragments)}
		if len(inputs) > 1 {
			row = append([]string{r.Source}, row...)
		}
		rows = append(rows, row)
	}
	renderer.RenderTable(headers, rows)

	return readErr
}

// tokenizeInput tokenizes every non-blank line, or the whole text as a message.
func tokenizeInput(input cmdutil.Input, message bool) []lineOutput {
	if message {
		if strings.TrimSpace(input.Text) == "" {
			return nil
		}
		res := markup.ParseMessage(input.Text)
		return []lineOutput{{
			Source:    input.Source,
			Line:      1,
			Kind:      res.Line.Kind,
			Fragments: res.Line.Fragments,
			Warnings:  res.Warnings,
		}}
	}

	var out []lineOutput
	for i, line := range markup.SplitLines(input.Text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		res := markup.ParseLine(line)
		out = append(out, lineOutput{
			Source:    input.Source,
			Line:      i + 1,
			Kind:      res.Line.Kind,
			Fragments: res.Line.Fragments,
			Warnings:  res.Warnings,
		})
	}
	return out
}

// describeFragments renders fragments as "kind:value" pairs for table output.
func describeFragments(fragments []markup.Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		switch f.Kind {
		case markup.FragmentIcon:
			parts = append(parts, "icon:"+f.IconName)
		case markup.FragmentLink:
			if f.Href == "" {
				parts = append(parts, fmt.Sprintf("link:%q", f.Text))
			} else {
				parts = append(parts, fmt.Sprintf("link:%q->%s", f.Text, f.Href))
			}
		default:
			parts = append(parts, fmt.Sprintf("text:%q", f.Text))
		}
	}
	return strings.Join(parts, " ")
}
