// Package log builds the zap loggers used by the staking script tools.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRootLogger returns a logger writing to w in the given format: json,
// console (alias auto) or logfmt.
func NewRootLogger(format string, level string, w io.Writer) (*zap.Logger, error) {
	enc, err := newEncoder(format)
	if err != nil {
		return nil, err
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return zap.New(zapcore.NewCore(
		enc,
		zapcore.AddSync(w),
		lvl,
	)), nil
}

// NewRootLoggerWithFile is like NewRootLogger but also appends every entry to
// logFile, creating it and its directory if needed. The returned cleanup
// flushes the logger and closes the file.
func NewRootLoggerWithFile(format string, level string, logFile string, w io.Writer) (*zap.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(logFile), 0700); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}

	logger, err := NewRootLogger(format, level, io.MultiWriter(w, f))
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	cleanup := func() error {
		_ = logger.Sync()
		return f.Close()
	}

	return logger, cleanup, nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format("2006-01-02T15:04:05.000000Z07:00"))
	}
	cfg.LevelKey = "lvl"

	switch format {
	case "json":
		return zapcore.NewJSONEncoder(cfg), nil
	case "auto", "console":
		return zapcore.NewConsoleEncoder(cfg), nil
	case "logfmt":
		return zaplogfmt.NewEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unrecognized log format %q", format)
	}
}

// ParseLevel maps a level name, case-insensitively, to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "panic":
		return zap.PanicLevel, nil
	case "fatal":
		return zap.FatalLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "debug":
		return zap.DebugLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unsupported log level: %s", level)
	}
}
