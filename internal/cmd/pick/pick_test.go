package pick

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
)

const fileMenu = "File\n* icon(Save) Save\n* Open\ndivider\nHelp\n* About"

func testCmd(output string) *cobra.Command {
	env := cmdutil.NewEnv()
	env.Output = output
	env.NoColor = true
	cmd := &cobra.Command{}
	cmd.SetContext(cmdutil.WithEnv(context.Background(), env))
	return cmd
}

type pickResult struct {
	Selected int `json:"selected"`
	Item     *struct {
		Key      string `json:"key"`
		Text     string `json:"text"`
		IconName string `json:"iconName"`
	} `json:"item"`
}

func TestRunPick_Static(t *testing.T) {
	tests := []struct {
		name         string
		selected     int
		wantSelected int
		wantKey      string
	}{
		{"child item", 2, 2, "2"},
		{"clamped to last line", 42, 6, "6"},
		{"negative is none", -1, 0, ""},
		{"zero is none", 0, 0, ""},
		{"header is not selectable", 1, 1, ""},
		{"divider is not selectable", 4, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &pickOptions{text: fileMenu, mode: "context", selected: tt.selected, static: true, out: &buf}

			require.NoError(t, runPick(testCmd("json"), opts))

			var got pickResult
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			assert.Equal(t, tt.wantSelected, got.Selected)
			if tt.wantKey == "" {
				assert.Nil(t, got.Item)
				return
			}
			require.NotNil(t, got.Item)
			assert.Equal(t, tt.wantKey, got.Item.Key)
		})
	}
}

func TestRunPick_StaticTable(t *testing.T) {
	var buf bytes.Buffer
	opts := &pickOptions{text: fileMenu, mode: "context", selected: 2, static: true, out: &buf}

	require.NoError(t, runPick(testCmd("table"), opts))
	assert.Contains(t, buf.String(), "Selected: 2")
	assert.Contains(t, buf.String(), "Text: Save")
	assert.Contains(t, buf.String(), "Icon: Save")

	buf.Reset()
	opts.selected = 0
	require.NoError(t, runPick(testCmd("table"), opts))
	assert.Equal(t, "No item selected.\n", buf.String())
}

func TestRunPick_Prompt(t *testing.T) {
	var offered []huh.Option[string]
	choose := func(_ string, options []huh.Option[string]) (string, error) {
		offered = options
		return "6", nil
	}

	var buf bytes.Buffer
	opts := &pickOptions{text: fileMenu, mode: "context", choose: choose, out: &buf}
	require.NoError(t, runPick(testCmd("json"), opts))

	require.Len(t, offered, 3)
	assert.Equal(t, "  [Save] Save", offered[0].Key)
	assert.Equal(t, "2", offered[0].Value)
	assert.Equal(t, "  About", offered[2].Key)

	var got pickResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 6, got.Selected)
	require.NotNil(t, got.Item)
	assert.Equal(t, "About", got.Item.Text)
}

func TestRunPick_PromptWithFilter(t *testing.T) {
	var offered []huh.Option[string]
	choose := func(_ string, options []huh.Option[string]) (string, error) {
		offered = options
		return options[0].Value, nil
	}

	opts := &pickOptions{text: fileMenu, mode: "context", filter: "open", choose: choose, out: &bytes.Buffer{}}
	require.NoError(t, runPick(testCmd("json"), opts))

	require.Len(t, offered, 1)
	assert.Equal(t, "3", offered[0].Value)
}

func TestRunPick_PromptErrors(t *testing.T) {
	t.Run("nothing selectable", func(t *testing.T) {
		opts := &pickOptions{text: "divider", mode: "flat", choose: nil, out: &bytes.Buffer{}}
		err := runPick(testCmd("json"), opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no selectable items")
	})

	t.Run("prompt aborted", func(t *testing.T) {
		choose := func(string, []huh.Option[string]) (string, error) {
			return "", huh.ErrUserAborted
		}
		opts := &pickOptions{text: fileMenu, mode: "context", choose: choose, out: &bytes.Buffer{}}
		err := runPick(testCmd("json"), opts)
		require.Error(t, err)
		assert.True(t, errors.Is(err, huh.ErrUserAborted))
	})
}

func TestRunPick_InvalidMode(t *testing.T) {
	opts := &pickOptions{text: fileMenu, mode: "tree", static: true, out: &bytes.Buffer{}}
	assert.Error(t, runPick(testCmd("json"), opts))
}

func TestNewCmdPick(t *testing.T) {
	cmd := NewCmdPick()
	assert.Equal(t, "pick [file]", cmd.Use)
	for _, name := range []string{"text", "mode", "filter", "select"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
