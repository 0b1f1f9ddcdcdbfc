// message.go maps free-text message fragments to renderable units.
package markup

import (
	"strconv"
	"sync/atomic"
)

// DefaultLinkTarget is the navigation context links open in when the caller
// does not designate one.
const DefaultLinkTarget = "uxpin_proto_"

// unitKeyPrefix prefixes every unit display key.
const unitKeyPrefix = "text_"

// unitKeySeq backs process-unique unit keys.
var unitKeySeq atomic.Uint64

// NextUnitKey returns a process-unique display key such as "text_42".
func NextUnitKey() string {
	return unitKeyPrefix + strconv.FormatUint(unitKeySeq.Add(1), 10)
}

// UnitKind represents the kind of a renderable message unit.
type UnitKind string

const (
	UnitText UnitKind = "text" // literal run
	UnitLink UnitKind = "link" // activatable reference
	UnitIcon UnitKind = "icon" // icon reference
)

// Unit is one renderable piece of a free-text message.
type Unit struct {
	Key      string   `json:"key" yaml:"key"`
	Kind     UnitKind `json:"kind" yaml:"kind"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	Href     string   `json:"href,omitempty" yaml:"href,omitempty"`
	Target   string   `json:"target,omitempty" yaml:"target,omitempty"` // set only when Href is set
	IconName string   `json:"iconName,omitempty" yaml:"iconName,omitempty"`
}

// MessageOptions configures message unit mapping.
type MessageOptions struct {
	// LinkTarget is the navigation context for links. Empty uses DefaultLinkTarget.
	LinkTarget string
}

// Message tokenizes a whole message string and maps every fragment, in
// source order, to a renderable unit with its own display key.
func Message(text string, opts MessageOptions) []Unit {
	units, _ := MessageWithWarnings(text, opts)
	return units
}

// MessageWithWarnings is Message plus the tokenizer warnings.
func MessageWithWarnings(text string, opts MessageOptions) ([]Unit, []string) {
	target := opts.LinkTarget
	if target == "" {
		target = DefaultLinkTarget
	}

	result := ParseMessage(text)
	units := make([]Unit, 0, len(result.Line.Fragments))
	for _, f := range result.Line.Fragments {
		units = append(units, unitFromFragment(f, target))
	}
	return units, result.Warnings
}

func unitFromFragment(f Fragment, target string) Unit {
	u := Unit{Key: NextUnitKey()}
	switch f.Kind {
	case FragmentLink:
		u.Kind = UnitLink
		u.Text = f.Text
		u.Href = f.Href
		if f.Href != "" {
			u.Target = target
		}
	case FragmentIcon:
		u.Kind = UnitIcon
		u.IconName = f.IconName
	default:
		u.Kind = UnitText
		u.Text = f.Text
	}
	return u
}
