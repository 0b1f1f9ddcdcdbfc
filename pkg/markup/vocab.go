// vocab.go defines the reserved vocabulary of the line markup.
package markup

import "strings"

const (
	// ChildSigil marks an explicit child line when it is the first non-space character.
	ChildSigil = "*"

	// DividerKeyword is the preferred divider line (matched case-insensitively).
	DividerKeyword = "divider"

	// DividerSigil is the alternative divider prefix: four or more dashes.
	DividerSigil = "----"

	// LinkSeparator separates a link label from its destination.
	LinkSeparator = "|"

	// ListSeparator separates items of a comma-joined single-line list.
	ListSeparator = ','

	// ListQuote protects separators inside a comma-joined list item.
	ListQuote = '"'
)

// MarkerType describes one inline marker of the form name(content).
type MarkerType struct {
	Name string       // lowercase marker name as written in source
	Kind FragmentKind // fragment kind produced by the marker
}

// markerRegistry maps marker names to their definitions.
// Adding a new marker = adding one entry here and a case in buildMarkerFragment.
var markerRegistry = map[string]MarkerType{
	"icon": {Name: "icon", Kind: FragmentIcon},
	"link": {Name: "link", Kind: FragmentLink},
}

// LookupMarker returns the MarkerType for a marker name.
// Marker names are case-sensitive: "Icon(x)" is plain text.
func LookupMarker(name string) (MarkerType, bool) {
	mt, ok := markerRegistry[name]
	return mt, ok
}

// MarkerNames returns the registered marker names in a stable order.
func MarkerNames() []string {
	return []string{"icon", "link"}
}

// IsDivider reports whether a whole line is a divider line.
func IsDivider(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.EqualFold(trimmed, DividerKeyword) || strings.HasPrefix(trimmed, DividerSigil)
}

// HasChildSigil reports whether the trimmed line starts with the child sigil.
func HasChildSigil(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ChildSigil)
}

// StripChildSigil removes the child sigil and surrounding whitespace.
// Lines without the sigil are returned trimmed.
func StripChildSigil(line string) string {
	trimmed := strings.TrimSpace(line)
	return strings.TrimSpace(strings.TrimPrefix(trimmed, ChildSigil))
}
