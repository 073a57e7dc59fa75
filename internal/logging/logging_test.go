package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordtrainer/internal/config"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trainer.log")

	logger, err := New(config.LogConfig{Level: "debug", File: path}, "stderr")
	require.NoError(t, err)

	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNew_Fallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.log")

	logger, err := New(config.LogConfig{Level: "info"}, path)
	require.NoError(t, err)

	logger.Info("started")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_InvalidLevel(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "loud"}, "stderr")
	assert.Error(t, err)
	assert.Nil(t, logger)
}
