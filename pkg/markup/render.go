// render.go provides functions to render message units.
package markup

import (
	"html"
	"strings"
)

// RenderHTML renders units as inline HTML. Each unit carries its display key
// in a data-key attribute. Links without a destination get no target.
func RenderHTML(units []Unit) string {
	var sb strings.Builder
	for i, u := range units {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch u.Kind {
		case UnitLink:
			sb.WriteString(`<a data-key="`)
			sb.WriteString(html.EscapeString(u.Key))
			sb.WriteString(`" href="`)
			sb.WriteString(html.EscapeString(u.Href))
			sb.WriteString(`"`)
			if u.Target != "" {
				sb.WriteString(` target="`)
				sb.WriteString(html.EscapeString(u.Target))
				sb.WriteString(`"`)
			}
			sb.WriteString(">")
			sb.WriteString(html.EscapeString(u.Text))
			sb.WriteString("</a>")
		case UnitIcon:
			sb.WriteString(`<i data-key="`)
			sb.WriteString(html.EscapeString(u.Key))
			sb.WriteString(`" data-icon-name="`)
			sb.WriteString(html.EscapeString(u.IconName))
			sb.WriteString(`"></i>`)
		default:
			sb.WriteString(`<span data-key="`)
			sb.WriteString(html.EscapeString(u.Key))
			sb.WriteString(`">`)
			sb.WriteString(html.EscapeString(u.Text))
			sb.WriteString("</span>")
		}
	}
	return sb.String()
}

// RenderMarkdown renders units as inline markdown.
func RenderMarkdown(units []Unit) string {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		switch u.Kind {
		case UnitLink:
			if u.Href == "" {
				parts = append(parts, u.Text)
				continue
			}
			parts = append(parts, "["+u.Text+"]("+u.Href+")")
		case UnitIcon:
			parts = append(parts, ":"+u.IconName+":")
		default:
			parts = append(parts, u.Text)
		}
	}
	return strings.Join(parts, " ")
}

// RenderPlain renders units as plain text, with link destinations in parentheses.
func RenderPlain(units []Unit) string {
	parts := make([]string, 0, len(units))
	for _, u := range units {
		switch u.Kind {
		case UnitLink:
			if u.Href == "" {
				parts = append(parts, u.Text)
				continue
			}
			parts = append(parts, u.Text+" ("+u.Href+")")
		case UnitIcon:
			parts = append(parts, "["+u.IconName+"]")
		default:
			parts = append(parts, u.Text)
		}
	}
	return strings.Join(parts, " ")
}

// FormatFragment renders a single fragment back to line markup.
func FormatFragment(f Fragment) string {
	switch f.Kind {
	case FragmentIcon:
		return "icon(" + f.IconName + ")"
	case FragmentLink:
		if f.Href == "" {
			return "link(" + f.Text + ")"
		}
		return "link(" + f.Text + " " + LinkSeparator + " " + f.Href + ")"
	default:
		return f.Text
	}
}

// FormatLine renders a parsed line back to line markup.
func FormatLine(pl ParsedLine) string {
	if pl.Kind == LineDivider {
		return DividerKeyword
	}
	parts := make([]string, 0, len(pl.Fragments))
	for _, f := range pl.Fragments {
		parts = append(parts, FormatFragment(f))
	}
	return strings.Join(parts, " ")
}
