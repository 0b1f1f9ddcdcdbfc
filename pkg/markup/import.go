// import.go converts markdown and HTML documents into line markup.
package markup

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// mdParser is a pre-configured goldmark instance for list import.
var mdParser = goldmark.New()

// FromMarkdown converts a markdown document into raw item text:
//   - top-level list items, paragraph lines and headings become lines
//   - nested list items become "* " child lines (one level only)
//   - thematic breaks become divider lines
//   - links become link(label | href), images become icon(alt)
func FromMarkdown(markdown []byte) string {
	if len(markdown) == 0 {
		return ""
	}

	reader := text.NewReader(markdown)
	doc := mdParser.Parser().Parse(reader)

	c := &mdImporter{source: markdown}
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		c.convertBlock(child)
	}
	return strings.Join(c.lines, "\n")
}

// FromHTML converts an HTML fragment to markdown and then into raw item text.
func FromHTML(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}
	return FromMarkdown([]byte(markdown)), nil
}

// mdImporter holds state during AST conversion.
type mdImporter struct {
	source []byte
	lines  []string
}

func (c *mdImporter) addLine(line string, child bool) {
	line = flattenLines(line)
	if line == "" {
		return
	}
	if child {
		line = ChildSigil + " " + line
	}
	c.lines = append(c.lines, line)
}

// convertBlock converts one top-level block node.
func (c *mdImporter) convertBlock(n ast.Node) {
	switch node := n.(type) {
	case *ast.List:
		c.convertList(node, 0)
	case *ast.ThematicBreak:
		c.lines = append(c.lines, DividerKeyword)
	case *ast.Heading:
		c.addLine(c.inline(node), false)
	case *ast.Paragraph, *ast.TextBlock:
		for _, line := range strings.Split(c.inline(node), "\n") {
			c.addLine(line, false)
		}
	}
}

// convertList emits one line per list item. Anything nested deeper than one
// level is flattened into the child level.
func (c *mdImporter) convertList(n *ast.List, depth int) {
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch node := child.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				c.addLine(c.inline(node), depth > 0)
			case *ast.List:
				c.convertList(node, depth+1)
			case *ast.ThematicBreak:
				c.lines = append(c.lines, DividerKeyword)
			}
		}
	}
}

// inline renders the inline children of n as line markup. Line breaks are
// kept as "\n" so callers can decide whether they separate lines.
func (c *mdImporter) inline(n ast.Node) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.writeInline(&sb, child)
	}
	return sb.String()
}

func (c *mdImporter) writeInline(sb *strings.Builder, n ast.Node) {
	switch node := n.(type) {
	case *ast.Text:
		sb.Write(node.Segment.Value(c.source))
		if node.SoftLineBreak() || node.HardLineBreak() {
			sb.WriteString("\n")
		}
	case *ast.String:
		sb.Write(node.Value)
	case *ast.Link:
		label := flattenLines(c.inline(node))
		sb.WriteString(FormatFragment(LinkFragment(label, string(node.Destination))))
	case *ast.AutoLink:
		url := string(node.URL(c.source))
		sb.WriteString(FormatFragment(LinkFragment(url, url)))
	case *ast.Image:
		alt := flattenLines(c.inline(node))
		if alt == "" {
			alt = string(node.Destination)
		}
		sb.WriteString(FormatFragment(IconFragment(alt)))
		sb.WriteString(" ")
	case *ast.RawHTML:
		// Skip raw HTML
	default:
		// Emphasis, code spans and anything else contribute their text
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			c.writeInline(sb, child)
		}
	}
}

// flattenLines joins line breaks into single spaces.
func flattenLines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
