package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"menyqr-app/config"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "menyqr.log")

	log, err := New(config.LoggingConfig{Level: "debug", Format: "json", File: file, MaxSize: 1})
	require.NoError(t, err)

	log.Info("route decision", zap.String("path", "/dashboard"))
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"route decision"`)
	assert.Contains(t, string(data), `"path":"/dashboard"`)
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "loud", Format: "console"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
