// tokens.go defines the fragment and parsed line types produced by the tokenizer.
package markup

// FragmentKind represents the type of a parsed fragment.
type FragmentKind int

const (
	FragmentText FragmentKind = iota // plain text
	FragmentIcon                     // icon(name)
	FragmentLink                     // link(label | href)
)

// String returns the lowercase name of the kind.
func (k FragmentKind) String() string {
	switch k {
	case FragmentText:
		return "text"
	case FragmentIcon:
		return "icon"
	case FragmentLink:
		return "link"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k FragmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Fragment represents one parsed unit of text.
type Fragment struct {
	Kind     FragmentKind `json:"kind" yaml:"kind"`
	Text     string       `json:"text,omitempty" yaml:"text,omitempty"`         // set for Text and Link
	IconName string       `json:"iconName,omitempty" yaml:"iconName,omitempty"` // set for Icon
	Href     string       `json:"href,omitempty" yaml:"href,omitempty"`         // set for Link
	Position int          `json:"-" yaml:"-"`                                   // byte offset in original input
}

// TextFragment creates a plain text fragment.
func TextFragment(text string) Fragment {
	return Fragment{Kind: FragmentText, Text: text}
}

// IconFragment creates an icon fragment.
func IconFragment(name string) Fragment {
	return Fragment{Kind: FragmentIcon, IconName: name}
}

// LinkFragment creates a link fragment.
func LinkFragment(text, href string) Fragment {
	return Fragment{Kind: FragmentLink, Text: text, Href: href}
}

// LineKind describes the shape of a parsed line.
type LineKind int

const (
	LineEmpty    LineKind = iota // no fragments
	LineSingle                   // exactly one fragment
	LineCompound                 // two or more fragments, source order
	LineDivider                  // whole line is a divider, no fragments
)

// String returns the lowercase name of the kind.
func (k LineKind) String() string {
	switch k {
	case LineEmpty:
		return "empty"
	case LineSingle:
		return "single"
	case LineCompound:
		return "compound"
	case LineDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParsedLine is the result of tokenizing one line or message.
type ParsedLine struct {
	Kind      LineKind   `json:"kind" yaml:"kind"`
	Fragments []Fragment `json:"fragments,omitempty" yaml:"fragments,omitempty"`
}

// newParsedLine classifies fragments as Empty, Single or Compound.
func newParsedLine(fragments []Fragment) ParsedLine {
	switch len(fragments) {
	case 0:
		return ParsedLine{Kind: LineEmpty}
	case 1:
		return ParsedLine{Kind: LineSingle, Fragments: fragments}
	default:
		return ParsedLine{Kind: LineCompound, Fragments: fragments}
	}
}

// First returns the leading fragment, if any.
func (pl ParsedLine) First() (Fragment, bool) {
	if len(pl.Fragments) == 0 {
		return Fragment{}, false
	}
	return pl.Fragments[0], true
}

// Lead returns the icon name and label of the line's leading entry: an
// optional leading icon followed by the first text-bearing fragment.
// Anything after that is ignored.
func (pl ParsedLine) Lead() (iconName, text string) {
	for i, f := range pl.Fragments {
		switch f.Kind {
		case FragmentIcon:
			if i > 0 {
				return iconName, text
			}
			iconName = f.IconName
		case FragmentText, FragmentLink:
			return iconName, f.Text
		}
	}
	return iconName, text
}

// ParseResult contains a parsed line and any warnings produced on degraded input.
type ParseResult struct {
	Line     ParsedLine
	Warnings []string
}

// Warn records a warning. The tokenizer never logs; callers decide.
func (pr *ParseResult) Warn(msg string) {
	pr.Warnings = append(pr.Warnings, msg)
}
