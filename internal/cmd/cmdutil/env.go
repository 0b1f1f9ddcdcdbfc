// Package cmdutil holds state and helpers shared by uxm commands.
package cmdutil

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/config"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/internal/view"
)

type envKey struct{}

// Env keeps the per-invocation state every command needs.
type Env struct {
	Config     *config.Config
	ConfigPath string
	Log        *zap.Logger
	Output     string
	NoColor    bool

	cleanup func()
}

// NewEnv returns an Env with default configuration and a no-op logger.
func NewEnv() *Env {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	return &Env{
		Config: cfg,
		Log:    zap.NewNop(),
		Output: cfg.OutputFormat,
	}
}

// WithEnv returns a copy of ctx carrying env and its logger.
func WithEnv(ctx context.Context, env *Env) context.Context {
	ctx = context.WithValue(ctx, envKey{}, env)
	return logging.WithLogger(ctx, env.Log)
}

// EnvFromContext returns the Env carried by ctx, or a default Env when the
// command runs without the root pre-run hook (as in tests).
func EnvFromContext(ctx context.Context) *Env {
	if ctx != nil {
		if env, ok := ctx.Value(envKey{}).(*Env); ok {
			return env
		}
	}
	return NewEnv()
}

// Renderer returns a view renderer for the env's output format writing to w.
func (e *Env) Renderer(w io.Writer) *view.Renderer {
	r := view.NewRenderer(view.Format(e.Output), e.NoColor)
	r.SetWriter(w)
	return r
}

// Close flushes the logger and releases the log file.
func (e *Env) Close() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// SkipConfigCheck is the command annotation that lets a command run with
// default settings when the config file cannot be loaded or is invalid.
const SkipConfigCheck = "uxm/skip-config-check"

// Setup loads configuration, applies global flags and attaches a new Env to
// the command context. It runs as the root command's persistent pre-run hook.
func Setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		if _, skip := cmd.Annotations[SkipConfigCheck]; !skip {
			return err
		}
		cfg = &config.Config{}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
		if err := logging.ValidateLevel(cfg.LogLevel); err != nil {
			return err
		}
	}
	cfg.ApplyDefaults()

	output := cfg.OutputFormat
	if flags.Changed("output") {
		output, _ = flags.GetString("output")
	}
	if err := view.ValidateFormat(output); err != nil {
		return err
	}

	noColor, _ := flags.GetBool("no-color")
	if noColor {
		color.NoColor = true
	}

	log, cleanup, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Console: cmd.ErrOrStderr(),
		Color:   !color.NoColor,
	})
	if err != nil {
		return err
	}

	env := &Env{
		Config:     cfg,
		ConfigPath: configPath,
		Log:        log,
		Output:     output,
		NoColor:    noColor,
		cleanup:    cleanup,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(WithEnv(ctx, env))

	log.Debug("Configuration loaded",
		zap.String("path", configPath),
		zap.String("mode", cfg.Mode),
		zap.String("output", output),
		zap.String("command", cmd.CommandPath()))
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'uxm init' to configure)", err)
	}
	return cfg, nil
}

// Teardown closes the Env attached by Setup.
func Teardown(cmd *cobra.Command) {
	EnvFromContext(cmd.Context()).Close()
}
