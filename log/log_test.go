package log_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/babylonchain/btc-staking-scripts/log"
)

func TestNewRootLoggerFormats(t *testing.T) {
	for _, format := range []string{"json", "console", "auto", "logfmt"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := log.NewRootLogger(format, "debug", &buf)
			require.NoError(t, err)

			logger.Debug("compiled staking script", zap.String("script", "slashing"))
			require.NoError(t, logger.Sync())
			require.Contains(t, buf.String(), "compiled staking script")
			require.Contains(t, buf.String(), "slashing")
		})
	}
}

func TestNewRootLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := log.NewRootLogger("json", "info", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", zap.Int("len", 71))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["lvl"])
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, float64(71), entry["len"])
}

func TestNewRootLoggerRejectsBadInput(t *testing.T) {
	_, err := log.NewRootLogger("xml", "info", &bytes.Buffer{})
	require.Error(t, err)

	_, err = log.NewRootLogger("json", "verbose", &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := log.ParseLevel("WARNING")
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, lvl)

	lvl, err = log.ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, lvl)
}

func TestNewRootLoggerWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "stkscript.log")

	var buf bytes.Buffer
	logger, cleanup, err := log.NewRootLoggerWithFile("logfmt", "info", logFile, &buf)
	require.NoError(t, err)
	logger.Info("written twice")
	require.NoError(t, cleanup())

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "written twice")
	require.Contains(t, buf.String(), "written twice")

	// the file handle is released by the first cleanup
	require.ErrorIs(t, cleanup(), os.ErrClosed)
}

func TestNewRootLoggerWithFileRejectsBadFormat(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "stkscript.log")

	logger, cleanup, err := log.NewRootLoggerWithFile("xml", "info", logFile, &bytes.Buffer{})
	require.Error(t, err)
	require.Nil(t, logger)
	require.Nil(t, cleanup)
}
