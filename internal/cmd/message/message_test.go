package message

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/cmd/cmdutil"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/markup"
)

func testCmd(output, target string) *cobra.Command {
	env := cmdutil.NewEnv()
	env.Output = output
	env.NoColor = true
	if target != "" {
		env.Config.LinkTarget = target
	}
	cmd := &cobra.Command{}
	cmd.SetContext(cmdutil.WithEnv(context.Background(), env))
	return cmd
}

var keyPattern = regexp.MustCompile(`text_\d+`)

func TestRunMessage_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{
			name:   "html",
			format: "html",
			expected: `<i data-key="K" data-icon-name="Info"></i> <span data-key="K">Read</span> ` +
				`<a data-key="K" href="/docs" target="uxpin_proto_">the docs</a>`,
		},
		{"markdown", "markdown", ":Info: Read [the docs](/docs)"},
		{"plain", "PLAIN", "[Info] Read the docs (/docs)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &messageOptions{text: "icon(Info) Read link(the docs | /docs)", format: tt.format, out: &buf}

			require.NoError(t, runMessage(testCmd("table", ""), opts))
			got := keyPattern.ReplaceAllString(strings.TrimSpace(buf.String()), "K")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRunMessage_InvalidFormat(t *testing.T) {
	opts := &messageOptions{text: "hi", format: "rtf", out: &bytes.Buffer{}}
	err := runMessage(testCmd("table", ""), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid render format")
}

func TestRunMessage_JSONUnits(t *testing.T) {
	var buf bytes.Buffer
	opts := &messageOptions{
		text:   "Go link(home | /) or link(nowhere)",
		format: "html",
		out:    &buf,
	}

	require.NoError(t, runMessage(testCmd("json", "_blank"), opts))

	var units []markup.Unit
	require.NoError(t, json.Unmarshal(buf.Bytes(), &units))
	require.Len(t, units, 4)

	assert.Equal(t, markup.UnitText, units[0].Kind)
	assert.Equal(t, "Go", units[0].Text)
	assert.Equal(t, markup.UnitLink, units[1].Kind)
	assert.Equal(t, "/", units[1].Href)
	assert.Equal(t, "_blank", units[1].Target)
	assert.Equal(t, "or", units[2].Text)
	assert.Equal(t, "nowhere", units[3].Text)
	assert.Empty(t, units[3].Target)

	seen := map[string]bool{}
	for _, u := range units {
		assert.Regexp(t, `^text_\d+$`, u.Key)
		assert.False(t, seen[u.Key], "duplicate key %s", u.Key)
		seen[u.Key] = true
	}
}

func TestRunMessage_TargetFlagOverridesConfig(t *testing.T) {
	var buf bytes.Buffer
	opts := &messageOptions{text: "link(a | /a)", target: "_self", format: "html", out: &buf}

	require.NoError(t, runMessage(testCmd("table", "_blank"), opts))
	assert.Contains(t, buf.String(), `target="_self"`)
}

func TestRunMessage_NoInput(t *testing.T) {
	opts := &messageOptions{format: "html", out: &bytes.Buffer{}}
	assert.ErrorIs(t, runMessage(testCmd("table", ""), opts), cmdutil.ErrNoInput)
}

func TestNewCmdMessage(t *testing.T) {
	cmd := NewCmdMessage()
	assert.Equal(t, "message [file...]", cmd.Use)
	assert.Equal(t, "html", cmd.Flags().Lookup("format").DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("target"))
	assert.NotNil(t, cmd.Flags().Lookup("text"))
}
