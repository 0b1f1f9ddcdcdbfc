package menu

import (
	"strings"

	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/markup"
)

// Step is one wizard step built from a flat list line of the form
// "Name | Heading".
type Step struct {
	Key      string `json:"key" yaml:"key"`
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name" yaml:"name"`
	Heading  string `json:"heading" yaml:"heading"`
	IconName string `json:"iconName,omitempty" yaml:"iconName,omitempty"`
}

// ParseSteps builds wizard steps from raw text. Each label is split on the
// first "|" into name and heading; the heading defaults to the name.
// Dividers are skipped.
func ParseSteps(raw string) []Step {
	items := BuildFlat(raw)
	steps := make([]Step, 0, len(items))
	for _, it := range items {
		if it.Role == RoleDivider {
			continue
		}
		name, heading, _ := strings.Cut(it.Text, markup.LinkSeparator)
		name = strings.TrimSpace(name)
		heading = strings.TrimSpace(heading)
		if heading == "" {
			heading = name
		}
		steps = append(steps, Step{
			Key:      it.Key,
			Position: it.Position,
			Name:     name,
			Heading:  heading,
			IconName: it.IconName,
		})
	}
	return steps
}
