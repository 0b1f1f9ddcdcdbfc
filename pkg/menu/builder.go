package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/markup"
)

// Mode configures a build call.
type Mode struct {
	Hierarchical bool // detect headers and children
	ContextMenu  bool // draw item types from the context menu enumeration
}

// Named modes used by the CLI and the config file.
var modes = map[string]Mode{
	"flat":    {},
	"context": {Hierarchical: true, ContextMenu: true},
	"options": {Hierarchical: true},
}

// ModeNames returns the accepted mode names.
func ModeNames() []string {
	return []string{"flat", "context", "options"}
}

// ParseMode resolves a mode name.
func ParseMode(name string) (Mode, error) {
	m, ok := modes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Mode{}, fmt.Errorf("invalid mode %q: must be one of %s", name, strings.Join(ModeNames(), ", "))
	}
	return m, nil
}

// String returns the mode name.
func (m Mode) String() string {
	switch {
	case !m.Hierarchical:
		return "flat"
	case m.ContextMenu:
		return "context"
	default:
		return "options"
	}
}

// Result contains built items and any warnings raised on degraded input.
type Result struct {
	Items    []Item
	Warnings []string
}

func (r *Result) warn(ordinal int, msg string) {
	r.Warnings = append(r.Warnings, fmt.Sprintf("line %d: %s", ordinal, msg))
}

// sourceLine is a non-blank input line with its 1-based ordinal.
type sourceLine struct {
	ordinal int
	text    string
}

// splitLines splits on any newline sequence and drops blank lines.
// Survivors are numbered 1..n in order.
func splitLines(raw string) []sourceLine {
	var lines []sourceLine
	for _, l := range markup.SplitLines(raw) {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		lines = append(lines, sourceLine{ordinal: len(lines) + 1, text: trimmed})
	}
	return lines
}

// splitSingleLine turns a lone comma-joined line into numbered sub-items.
func splitSingleLine(line string) []sourceLine {
	labels := markup.SplitList(line)
	lines := make([]sourceLine, 0, len(labels))
	for i, label := range labels {
		lines = append(lines, sourceLine{ordinal: i + 1, text: label})
	}
	return lines
}

// Analyze builds the item model for raw text and collects warnings.
//
// In hierarchical mode a line starting with "*" is a child. If any line
// carries that sigil the whole input is explicit: every other non-divider
// line is a header. Otherwise a line is a header only when the next line
// starts with the sigil. Flat mode skips both and treats a single
// comma-joined line as a list.
func Analyze(raw string, mode Mode) *Result {
	res := &Result{Items: []Item{}}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return res
	}
	if !mode.Hierarchical && len(lines) == 1 {
		lines = splitSingleLine(lines[0].text)
	}

	explicit := false
	if mode.Hierarchical {
		for _, l := range lines {
			if markup.HasChildSigil(l.text) {
				explicit = true
				break
			}
		}
	}

	audience := AudienceFor(mode.ContextMenu)
	for idx, l := range lines {
		text := l.text
		child := false
		if mode.Hierarchical {
			child = markup.HasChildSigil(text)
			text = markup.StripChildSigil(text)
		} else {
			text = markup.Unquote(text)
		}

		parsed := markup.ParseLine(text)
		for _, w := range parsed.Warnings {
			res.warn(l.ordinal, w)
		}

		if parsed.Line.Kind == markup.LineDivider {
			res.Items = append(res.Items, Item{
				Key:      "divider_" + strconv.Itoa(l.ordinal),
				Position: l.ordinal,
				Role:     RoleDivider,
				ItemType: ResolveItemType(RoleDivider, audience),
			})
			continue
		}

		role := RolePlain
		switch {
		case !mode.Hierarchical:
		case child:
			role = RoleChild
		case explicit:
			role = RoleHeader
		case idx+1 < len(lines) && markup.HasChildSigil(lines[idx+1].text):
			role = RoleHeader
		}

		iconName, label := parsed.Line.Lead()
		if iconName == "" && label == "" {
			res.warn(l.ordinal, "no text or icon, dropped")
			continue
		}

		key := strconv.Itoa(l.ordinal)
		if role == RoleHeader {
			key = "header_" + key
		}
		res.Items = append(res.Items, Item{
			Key:      key,
			Position: l.ordinal,
			Text:     label,
			IconName: iconName,
			Role:     role,
			ItemType: ResolveItemType(role, audience),
		})
	}

	return res
}

// Build returns the items for raw text in the given mode.
func Build(raw string, mode Mode) []Item {
	return Analyze(raw, mode).Items
}

// BuildFlat builds a flat list: no headers, no children.
func BuildFlat(raw string) []Item {
	return Build(raw, Mode{})
}

// BuildGrouped builds a grouped menu for a context menu or a selectable option menu.
func BuildGrouped(raw string, contextMenu bool) []Item {
	return Build(raw, Mode{Hierarchical: true, ContextMenu: contextMenu})
}
