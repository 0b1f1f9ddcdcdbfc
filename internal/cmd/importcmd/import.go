// Package importcmd provides the import command.
package importcmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/markup"
)

// Source document formats.
const (
	FromMarkdown = "markdown"
	FromHTML     = "html"
)

// Froms returns the accepted --from values.
func Froms() []string {
	return []string{FromMarkdown, FromHTML}
}

type importOptions struct {
	text  string
	from  string
	files []string
	in    io.Reader
	out   io.Writer
}

// importOutput is the structured result for one converted document.
type importOutput struct {
	Source string `json:"source" yaml:"source"`
	From   string `json:"from" yaml:"from"`
	Text   string `json:"text" yaml:"text"`
}

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Convert markdown or HTML lists into line markup",
		Long: `Convert a markdown or HTML document into line markup.

List items, paragraph lines and headings become lines. Nested list items
become "*" child lines and horizontal rules become dividers. Links become
link(label | href) and images become icon(alt).

The source format is taken from --from, or from the file extension
(.html and .htm are HTML, everything else is markdown).`,
		Example: `  # Convert a markdown outline
  uxm import outline.md

  # Convert HTML from stdin and build a menu from it
  curl -s https://example.com/nav.html | uxm import --from html | uxm build`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			opts.in = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runImport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Document text instead of files or stdin")
	cmd.Flags().StringVar(&opts.from, "from", "", "Source format: markdown, html (default from file extension)")

	return cmd
}

func runImport(cmd *cobra.Command, opts *importOptions) error {
	env := cmdutil.EnvFromContext(cmd.Context())
	log := logging.FromContext(cmd.Context())

	if opts.from != "" && !validFrom(opts.from) {
		return fmt.Errorf("invalid source format %q: must be one of %s", opts.from, strings.Join(Froms(), ", "))
	}

	inputs, readErr := cmdutil.ReadInputs(opts.text, opts.files, opts.in)
	if len(inputs) == 0 {
		return readErr
	}

	results := make([]importOutput, 0, len(inputs))
	for _, input := range inputs {
		from := detectFrom(opts.from, input.Source)
		text, err := convert(from, input.Text)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", input.Source, err)
		}
		log.Debug("Imported document",
			zap.String("source", input.Source),
			zap.String("from", from),
			zap.Int("lines", len(markup.SplitLines(text))))
		results = append(results, importOutput{Source: input.Source, From: from, Text: text})
	}

	renderer := env.Renderer(opts.out)
	if renderer.IsStructured() {
		var err error
		if len(results) == 1 {
			err = renderer.RenderData(results[0])
		} else {
			err = renderer.RenderData(results)
		}
		if err != nil {
			return err
		}
		return readErr
	}

	for _, r := range results {
		if r.Text != "" {
			renderer.RenderText(r.Text)
		}
	}
	return readErr
}

func validFrom(from string) bool {
	for _, f := range Froms() {
		if strings.EqualFold(f, from) {
			return true
		}
	}
	return false
}

// detectFrom resolves the source format from the flag or the file extension.
func detectFrom(flag, source string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".html", ".htm":
		return FromHTML
	}
	return FromMarkdown
}

func convert(from, text string) (string, error) {
	if from == FromHTML {
		return markup.FromHTML(text)
	}
	return markup.FromMarkdown([]byte(text)), nil
}
