package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSelection(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		count  int
		policy SelectionPolicy
		want   int
	}{
		{"allow none keeps zero", 0, 3, AllowNone, 0},
		{"allow none negative", -2, 3, AllowNone, 0},
		{"allow none in range", 2, 3, AllowNone, 2},
		{"allow none above", 9, 3, AllowNone, 3},
		{"require one lifts zero", 0, 3, RequireOne, 1},
		{"require one negative", -1, 3, RequireOne, 1},
		{"require one in range", 3, 3, RequireOne, 3},
		{"require one above", 4, 3, RequireOne, 3},
		{"require one empty list", 1, 0, RequireOne, 0},
		{"allow none empty list", 5, 0, AllowNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSelection(tt.index, tt.count, tt.policy))
		})
	}
}

func TestSelectionPolicy_String(t *testing.T) {
	assert.Equal(t, "allow-none", AllowNone.String())
	assert.Equal(t, "require-one", RequireOne.String())
}

func TestItemAt(t *testing.T) {
	items := BuildGrouped("Group\n* First\n* Second", false)

	it, ok := ItemAt(items, 3)
	require.True(t, ok)
	assert.Equal(t, "Second", it.Text)

	_, ok = ItemAt(items, 1)
	assert.False(t, ok, "headers are keyed header_N")

	_, ok = ItemAt(items, 0)
	assert.False(t, ok)
}

func TestWithFallback(t *testing.T) {
	items := WithFallback(nil, "Option 1")
	require.Len(t, items, 1)
	assert.Equal(t, Item{Key: "1", Position: 1, Text: "Option 1", Role: RolePlain}, items[0])

	built := BuildFlat("A\nB")
	assert.Equal(t, built, WithFallback(built, "unused"))
}
