package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "flat list",
			input:    "- Home\n- Settings\n- Help",
			expected: "Home\nSettings\nHelp",
		},
		{
			name:     "nested list",
			input:    "- Settings\n  - Profile\n  - Account\n- Help",
			expected: "Settings\n* Profile\n* Account\nHelp",
		},
		{
			name:     "thematic break",
			input:    "- Home\n\n----\n\n- Help",
			expected: "Home\ndivider\nHelp",
		},
		{
			name:     "link",
			input:    "- [Docs](https://d.io)",
			expected: "link(Docs | https://d.io)",
		},
		{
			name:     "image becomes icon",
			input:    "- ![Home](home.png) Home",
			expected: "icon(Home) Home",
		},
		{
			name:     "emphasis flattened",
			input:    "- **Bold** item",
			expected: "Bold item",
		},
		{
			name:     "paragraph lines",
			input:    "Home\nSettings",
			expected: "Home\nSettings",
		},
		{
			name:     "heading",
			input:    "# Group A\n\n- Item",
			expected: "Group A\nItem",
		},
		{
			name:     "autolink",
			input:    "<https://x.io>",
			expected: "link(https://x.io | https://x.io)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromMarkdown([]byte(tt.input)))
		})
	}
}

func TestFromMarkdown_OutputTokenizes(t *testing.T) {
	raw := FromMarkdown([]byte("- ![Save](s.png) [Save](/save)"))
	pl := Tokenize(raw)
	require.Equal(t, LineCompound, pl.Kind)
	icon, text := pl.Lead()
	assert.Equal(t, "Save", icon)
	assert.Equal(t, "Save", text)
}

func TestFromHTML(t *testing.T) {
	t.Run("blank input", func(t *testing.T) {
		raw, err := FromHTML("  ")
		require.NoError(t, err)
		assert.Equal(t, "", raw)
	})

	t.Run("paragraphs and rule", func(t *testing.T) {
		raw, err := FromHTML("<p>Home</p><hr><p>Help</p>")
		require.NoError(t, err)
		assert.Equal(t, "Home\ndivider\nHelp", raw)
	})

	t.Run("link", func(t *testing.T) {
		raw, err := FromHTML(`<p><a href="https://d.io">Docs</a></p>`)
		require.NoError(t, err)
		assert.Equal(t, "link(Docs | https://d.io)", raw)
	})

	t.Run("list", func(t *testing.T) {
		raw, err := FromHTML("<ul><li>Home</li><li>Help</li></ul>")
		require.NoError(t, err)
		assert.Equal(t, "Home\nHelp", raw)
	})
}
