// split.go splits raw text into lines and comma-joined lists.
package markup

import "strings"

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines splits text on any newline sequence: "\r\n", "\n" or "\r".
// Lines are returned untrimmed, blank lines included.
func SplitLines(text string) []string {
	return strings.Split(newlines.Replace(text), "\n")
}

// SplitList splits a comma-joined list into trimmed labels.
// Commas inside matching double quotes, or inside marker parentheses, are not
// separators. Quote characters are consumed and never appear in a label.
// Empty labels are dropped.
func SplitList(line string) []string {
	var labels []string
	var current strings.Builder
	inQuotes := false
	depth := 0

	flush := func() {
		if label := strings.TrimSpace(current.String()); label != "" {
			labels = append(labels, label)
		}
		current.Reset()
	}

	for _, r := range line {
		switch {
		case r == ListQuote:
			inQuotes = !inQuotes
			// Don't include the quote in the label
		case inQuotes:
			current.WriteRune(r)
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			current.WriteRune(r)
		case r == ListSeparator && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return labels
}

// Unquote strips one pair of enclosing double quotes from a trimmed label.
func Unquote(label string) string {
	trimmed := strings.TrimSpace(label)
	if len(trimmed) >= 2 && trimmed[0] == ListQuote && trimmed[len(trimmed)-1] == ListQuote {
		return strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	}
	return trimmed
}
