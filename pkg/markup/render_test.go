package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var renderUnits = []Unit{
	{Key: "text_1", Kind: UnitText, Text: "a < b"},
	{Key: "text_2", Kind: UnitLink, Text: "Docs", Href: "https://d.io?a=1&b=2", Target: "_blank"},
	{Key: "text_3", Kind: UnitIcon, IconName: "Info"},
}

func TestRenderHTML(t *testing.T) {
	expected := `<span data-key="text_1">a &lt; b</span> ` +
		`<a data-key="text_2" href="https://d.io?a=1&amp;b=2" target="_blank">Docs</a> ` +
		`<i data-key="text_3" data-icon-name="Info"></i>`
	assert.Equal(t, expected, RenderHTML(renderUnits))
}

func TestRenderHTML_LinkWithoutTarget(t *testing.T) {
	units := []Unit{{Key: "text_9", Kind: UnitLink, Text: "label"}}
	assert.Equal(t, `<a data-key="text_9" href="">label</a>`, RenderHTML(units))
}

func TestRenderMarkdown(t *testing.T) {
	assert.Equal(t, "a < b [Docs](https://d.io?a=1&b=2) :Info:", RenderMarkdown(renderUnits))
	assert.Equal(t, "label", RenderMarkdown([]Unit{{Kind: UnitLink, Text: "label"}}))
}

func TestRenderPlain(t *testing.T) {
	assert.Equal(t, "a < b Docs (https://d.io?a=1&b=2) [Info]", RenderPlain(renderUnits))
	assert.Equal(t, "label", RenderPlain([]Unit{{Kind: UnitLink, Text: "label"}}))
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", RenderHTML(nil))
	assert.Equal(t, "", RenderMarkdown(nil))
	assert.Equal(t, "", RenderPlain(nil))
}

func TestFormatFragment(t *testing.T) {
	tests := []struct {
		name     string
		fragment Fragment
		expected string
	}{
		{"text", TextFragment("Home"), "Home"},
		{"icon", IconFragment("Home"), "icon(Home)"},
		{"link", LinkFragment("Docs", "/d"), "link(Docs | /d)"},
		{"link label only", LinkFragment("Docs", ""), "link(Docs)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFragment(tt.fragment))
		})
	}
}
