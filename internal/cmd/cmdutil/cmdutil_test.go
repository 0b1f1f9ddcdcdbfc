package cmdutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/config"
)

func TestReadInputs_Text(t *testing.T) {
	inputs, err := ReadInputs("Home\nHelp", []string{"ignored.txt"}, strings.NewReader("stdin"))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, TextSource, inputs[0].Source)
	assert.Equal(t, "Home\nHelp", inputs[0].Text)
}

func TestReadInputs_Files(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("Alpha"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("Beta"), 0644))

	inputs, err := ReadInputs("", []string{first, second}, nil)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, Input{Source: first, Text: "Alpha"}, inputs[0])
	assert.Equal(t, Input{Source: second, Text: "Beta"}, inputs[1])
}

func TestReadInputs_MissingFilesAggregated(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("Alpha"), 0644))

	inputs, err := ReadInputs("", []string{filepath.Join(dir, "a.txt"), good, filepath.Join(dir, "b.txt")}, nil)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "a.txt")
	assert.Contains(t, err.Error(), "b.txt")

	require.Len(t, inputs, 1)
	assert.Equal(t, "Alpha", inputs[0].Text)
}

func TestReadInputs_Stdin(t *testing.T) {
	inputs, err := ReadInputs("", nil, strings.NewReader("from stdin"))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, StdinSource, inputs[0].Source)
	assert.Equal(t, "from stdin", inputs[0].Text)

	inputs, err = ReadInputs("", []string{"-"}, strings.NewReader("dash"))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "dash", inputs[0].Text)
}

func TestReadInputs_NoInput(t *testing.T) {
	_, err := ReadInputs("", nil, nil)
	assert.ErrorIs(t, err, ErrNoInput)
}

// newTestCmd returns a root/child pair carrying the global flags.
func newTestCmd() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "uxm", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringP("config", "c", "", "")
	root.PersistentFlags().StringP("output", "o", "table", "")
	root.PersistentFlags().Bool("no-color", false, "")
	root.PersistentFlags().String("log-level", "", "")

	child := &cobra.Command{Use: "child", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(child)
	return root, child
}

func clearEnv(t *testing.T) {
	for _, v := range []string{"UXM_OUTPUT", "UXM_MODE", "UXM_LINK_TARGET", "UXM_LOG_LEVEL", "UXM_LOG_FILE"} {
		t.Setenv(v, "")
	}
}

func TestSetup(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, (&config.Config{OutputFormat: "json", Mode: "flat"}).Save(filepath.Join(dir, "uxm", "config.yml")))

	var captured *Env
	root, child := newTestCmd()
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error { return Setup(cmd) }
	child.RunE = func(cmd *cobra.Command, _ []string) error {
		captured = EnvFromContext(cmd.Context())
		return nil
	}

	root.SetArgs([]string{"child", "--no-color"})
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.Execute())

	require.NotNil(t, captured)
	assert.Equal(t, "json", captured.Output)
	assert.Equal(t, "flat", captured.Config.Mode)
	assert.Equal(t, "uxpin_proto_", captured.Config.LinkTarget)
	assert.True(t, captured.NoColor)
	assert.Equal(t, filepath.Join(dir, "uxm", "config.yml"), captured.ConfigPath)
	captured.Close()
}

func TestSetup_OutputFlagOverridesConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("UXM_OUTPUT", "json")

	var captured *Env
	root, child := newTestCmd()
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error { return Setup(cmd) }
	child.RunE = func(cmd *cobra.Command, _ []string) error {
		captured = EnvFromContext(cmd.Context())
		return nil
	}

	root.SetArgs([]string{"child", "-o", "yaml"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "yaml", captured.Output)
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{"invalid output flag", nil, []string{"child", "-o", "xml"}, "invalid output format"},
		{"invalid mode in env", map[string]string{"UXM_MODE": "tree"}, []string{"child"}, "invalid config"},
		{"invalid log level flag", nil, []string{"child", "--log-level", "loud"}, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			root, _ := newTestCmd()
			root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error { return Setup(cmd) }
			root.SetArgs(tt.args)

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvFromContext_Default(t *testing.T) {
	env := EnvFromContext(context.Background())
	require.NotNil(t, env)
	assert.Equal(t, "table", env.Output)
	assert.Equal(t, "context", env.Config.Mode)
	assert.NotPanics(t, env.Close)
}

func TestEnv_Renderer(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv()
	env.Output = "plain"
	env.NoColor = true

	env.Renderer(&buf).RenderTable([]string{"KEY"}, [][]string{{"1"}})
	assert.Equal(t, "1\n", buf.String())
}

func TestSetup_SkipConfigCheck(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("UXM_MODE", "tree")

	var captured *Env
	root, child := newTestCmd()
	child.Annotations = map[string]string{SkipConfigCheck: "true"}
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error { return Setup(cmd) }
	child.RunE = func(cmd *cobra.Command, _ []string) error {
		captured = EnvFromContext(cmd.Context())
		return nil
	}

	root.SetArgs([]string{"child"})
	require.NoError(t, root.Execute())
	require.NotNil(t, captured)
	assert.Equal(t, "context", captured.Config.Mode)
}
