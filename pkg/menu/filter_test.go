package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(items []Item) []string {
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.Key)
	}
	return keys
}

func TestFilter(t *testing.T) {
	items := BuildGrouped("Settings\n* Profile\n* Account\ndivider\nHelp\n* icon(Gear) About", true)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "  ", []string{"header_1", "2", "3", "divider_4", "header_5", "6"}},
		{"child match keeps header", "prof", []string{"header_1", "2"}},
		{"header match keeps group", "settings", []string{"header_1", "2", "3"}},
		{"dividers dropped", "e", []string{"header_1", "2", "3", "header_5", "6"}},
		{"icon name fallback", "gear", []string{"header_5", "6"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysOf(Filter(items, tt.query)))
		})
	}
}

func TestFilter_KeepsKeysAndDoesNotAlias(t *testing.T) {
	items := BuildFlat("Alpha\nBeta\nGamma")
	filtered := Filter(items, "gam")
	require.Len(t, filtered, 1)
	assert.Equal(t, "3", filtered[0].Key)
	assert.Equal(t, 3, filtered[0].Position)

	all := Filter(items, "")
	all[0].Text = "changed"
	assert.Equal(t, "Alpha", items[0].Text)
}

func TestSelectable(t *testing.T) {
	items := BuildGrouped("Group\n* One\ndivider\nOther\n* Two", false)
	assert.Equal(t, []string{"2", "5"}, keysOf(Selectable(items)))
	assert.Empty(t, Selectable(nil))
}
