// FILE: lifecycle_test.go
package plog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLifecycle(t *testing.T) {
	logger, logPath := createTestLogger(t)

	logger.Info("before close")
	err := logger.Close()
	require.NoError(t, err)

	// Logging after close is a silent no-op
	logger.Info("after close")

	records := readRecords(t, logPath)
	assert.Len(t, records, 1)
	assert.Contains(t, records[0], "before close")
	assert.Equal(t, uint64(1), logger.Stats().TotalRecords)
}

func TestDoubleClose(t *testing.T) {
	logger, _ := createTestLogger(t)

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
}

func TestCloseBeforeInit(t *testing.T) {
	logger := NewLogger()
	assert.NoError(t, logger.Close())

	// An early close must not poison a later initialization
	cfg := DefaultConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, logger.ApplyConfig(cfg))
	defer logger.Close()

	logger.Info("initialized after early close")
	records := readRecords(t, cfg.FilePath)
	assert.Len(t, records, 1)
}

func TestEmitBeforeInit(t *testing.T) {
	logger := NewLogger()

	// No sink, no lock, no panic
	assert.NotPanics(t, func() {
		logger.Info("dropped silently")
	})
	assert.Zero(t, logger.Stats().TotalRecords)
}

func TestReinitializeAfterClose(t *testing.T) {
	logger, logPath := createTestLogger(t)

	logger.Info("first life")
	require.NoError(t, logger.Close())

	// Reapplying the same configuration reopens the sink on the same file
	cfg := logger.GetConfig()
	require.NoError(t, logger.ApplyConfig(cfg))
	defer logger.Close()

	assert.True(t, logger.state.IsInitialized.Load())
	assert.False(t, logger.state.CloseCalled.Load())

	logger.Info("second life")

	records := readRecords(t, logPath)
	require.Len(t, records, 2)
	assert.Contains(t, records[0], "first life")
	assert.Contains(t, records[1], "second life")
}

func TestSinkFollowsPathChange(t *testing.T) {
	tmpDir := t.TempDir()
	logger := NewLogger()

	cfg := DefaultConfig()
	cfg.FilePath = filepath.Join(tmpDir, "first.log")
	require.NoError(t, logger.ApplyConfig(cfg))
	defer logger.Close()

	logger.Info("to the first file")

	cfg = logger.GetConfig()
	cfg.FilePath = filepath.Join(tmpDir, "second.log")
	require.NoError(t, logger.ApplyConfig(cfg))

	logger.Info("to the second file")

	first, err := os.ReadFile(filepath.Join(tmpDir, "first.log"))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(tmpDir, "second.log"))
	require.NoError(t, err)

	assert.Contains(t, string(first), "to the first file")
	assert.NotContains(t, string(first), "to the second file")
	assert.Contains(t, string(second), "to the second file")

	sink, ok := logger.getSink().(*FileSink)
	require.True(t, ok)
	assert.Equal(t, cfg.FilePath, sink.Path())
}

func TestFailedReconfigLeavesLoggerIntact(t *testing.T) {
	logger, logPath := createTestLogger(t)
	defer logger.Close()

	logger.Info("before failed reconfig")

	// A file path whose parent is a regular file cannot be created
	obstacle := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(obstacle, []byte("x"), 0644))

	cfg := logger.GetConfig()
	cfg.FilePath = filepath.Join(obstacle, "nested.log")
	err := logger.ApplyConfig(cfg)
	require.Error(t, err)

	// The old sink keeps working
	logger.Info("after failed reconfig")
	records := readRecords(t, logPath)
	assert.Len(t, records, 2)
}
