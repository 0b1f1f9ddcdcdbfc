// Package logging builds the zap logger used by uxm commands.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted in config and on the command line.
const (
	LevelNone   = "none"
	LevelNormal = "normal"
	LevelDebug  = "debug"
)

// Levels returns the accepted level names.
func Levels() []string {
	return []string{LevelNone, LevelNormal, LevelDebug}
}

// ValidateLevel checks that level is one of Levels. Empty means none.
func ValidateLevel(level string) error {
	switch level {
	case "", LevelNone, LevelNormal, LevelDebug:
		return nil
	}
	return fmt.Errorf("invalid log level %q: must be one of %s", level, strings.Join(Levels(), ", "))
}

// Options configures New.
type Options struct {
	Level   string    // console level: none, normal or debug
	File    string    // optional log file, appended to
	Console io.Writer // defaults to os.Stderr
	Color   bool      // colorize console levels
}

// New returns a logger with a console core and an optional file core.
// The returned cleanup func syncs the logger and closes the file.
func New(opts Options) (*zap.Logger, func(), error) {
	if err := ValidateLevel(opts.Level); err != nil {
		return nil, nil, err
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if opts.Color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var consoleCore zapcore.Core
	switch opts.Level {
	case LevelNormal:
		consoleCore = zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(console)), zapcore.InfoLevel)
	case LevelDebug:
		consoleCore = zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(console)), zapcore.DebugLevel)
	default:
		consoleCore = zapcore.NewNopCore()
	}

	fileCore := zapcore.NewNopCore()
	var file *os.File
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open log file (%s): %w", opts.File, err)
		}
		file = f
		level := zapcore.InfoLevel
		if opts.Level == LevelDebug {
			level = zapcore.DebugLevel
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), level)
	}

	logger := zap.New(zapcore.NewTee(consoleCore, fileCore)).Named("uxm")
	cleanup := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, cleanup, nil
}

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
			return logger
		}
	}
	return zap.NewNop()
}

// LogWarnings logs builder and tokenizer warnings at Warn level.
func LogWarnings(logger *zap.Logger, source string, warnings []string) {
	for _, w := range warnings {
		logger.Warn("Degraded markup", zap.String("source", source), zap.String("detail", w))
	}
}
