// Package view provides output formatting for uxm commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/menu"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
	FormatYAML  Format = "yaml"
	FormatMenu  Format = "menu"
)

// DefaultMenuWidth is the menu width used when the caller does not set one.
const DefaultMenuWidth = 40

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain), string(FormatYAML), string(FormatMenu)}
}

// ValidateFormat checks that format is one of ValidFormats. Empty means the default.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q: must be one of %s", format, strings.Join(ValidFormats(), ", "))
}

// Renderer renders data in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// RenderTable renders data as a table.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	switch r.format {
	case FormatJSON:
		r.renderTableAsJSON(headers, rows)
		return
	case FormatYAML:
		r.renderTableAsYAML(headers, rows)
		return
	case FormatPlain:
		r.renderTableAsPlain(headers, rows)
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range rows {
		for i, val := range row {
			if i < len(widths) && ansi.StringWidth(val) > widths[i] {
				widths[i] = ansi.StringWidth(val)
			}
		}
	}

	// Print header
	bold := color.New(color.Bold)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(r.writer, "  ")
		}
		bold.Fprint(r.writer, pad(h, widths[i], i == len(headers)-1))
	}
	fmt.Fprintln(r.writer)

	// Print rows
	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "  ")
			}
			if i < len(widths) {
				val = pad(val, widths[i], i == len(row)-1)
			}
			fmt.Fprint(r.writer, val)
		}
		fmt.Fprintln(r.writer)
	}
}

// pad right-pads s to width display cells unless it is the last column.
func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func (r *Renderer) tableRecords(headers []string, rows [][]string) []map[string]string {
	var result []map[string]string
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}
	return result
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	data, _ := json.MarshalIndent(r.tableRecords(headers, rows), "", "  ")
	fmt.Fprintln(r.writer, string(data))
}

func (r *Renderer) renderTableAsYAML(headers []string, rows [][]string) {
	records := r.tableRecords(headers, rows)
	if records == nil {
		records = []map[string]string{}
	}
	_ = r.RenderYAML(records)
}

func (r *Renderer) renderTableAsPlain(headers []string, rows [][]string) {
	for _, row := range rows {
		for i, val := range row {
			if i > 0 {
				fmt.Fprint(r.writer, "\t")
			}
			fmt.Fprint(r.writer, val)
		}
		fmt.Fprintln(r.writer)
	}
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

// RenderYAML renders an object as YAML.
func (r *Renderer) RenderYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprint(r.writer, string(data))
	return nil
}

// RenderData renders an object as YAML when the format is yaml, as JSON otherwise.
func (r *Renderer) RenderData(v interface{}) error {
	if r.format == FormatYAML {
		return r.RenderYAML(v)
	}
	return r.RenderJSON(v)
}

// IsStructured reports whether the format is a machine-readable encoding.
func (r *Renderer) IsStructured() bool {
	return r.format == FormatJSON || r.format == FormatYAML
}

// RenderText renders plain text.
func (r *Renderer) RenderText(text string) {
	fmt.Fprintln(r.writer, text)
}

// RenderKeyValue renders a key-value pair.
func (r *Renderer) RenderKeyValue(key, value string) {
	switch r.format {
	case FormatJSON:
		fmt.Fprintf(r.writer, `{"%s": "%s"}`+"\n", key, value)
		return
	case FormatYAML:
		_ = r.RenderYAML(map[string]string{key: value})
		return
	}
	bold := color.New(color.Bold)
	bold.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Warning prints a warning message.
func (r *Renderer) Warning(msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintln(r.writer, "! "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}

var (
	menuHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	menuItemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	menuKeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	menuIconStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	menuDividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// RenderMenu draws items the way a menu shows them: headers in bold,
// children indented under their header, dividers as a rule.
// Labels are truncated to width display cells.
func (r *Renderer) RenderMenu(items []menu.Item, width int) {
	if width <= 0 {
		width = DefaultMenuWidth
	}
	for _, it := range items {
		fmt.Fprintln(r.writer, r.menuLine(it, width))
	}
}

func (r *Renderer) menuLine(it menu.Item, width int) string {
	if it.Role == menu.RoleDivider {
		return r.style(menuDividerStyle, strings.Repeat("─", width))
	}

	indent := ""
	if it.Role == menu.RoleChild {
		indent = "  "
	}

	var sb strings.Builder
	if it.IconName != "" {
		sb.WriteString(r.style(menuIconStyle, "["+it.IconName+"]"))
		if it.Text != "" {
			sb.WriteString(" ")
		}
	}

	if it.Role == menu.RoleHeader {
		sb.WriteString(r.style(menuHeaderStyle, it.Text))
		return TruncateWidth(indent+sb.String(), width)
	}

	sb.WriteString(r.style(menuItemStyle, it.Text))
	key := r.style(menuKeyStyle, fmt.Sprintf("%3s ", it.Key))
	return TruncateWidth(key+indent+sb.String(), width)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor || color.NoColor {
		return text
	}
	return s.Render(text)
}

// Truncate truncates a string to the specified length.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// TruncateWidth truncates s to width display cells, keeping ANSI styling intact.
func TruncateWidth(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
