// FILE: builder_test.go
package plog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidelock/plog/lockfile"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured logger", func(t *testing.T) {
		tmpDir := t.TempDir()

		logger, err := NewBuilder().
			FilePath(filepath.Join(tmpDir, "app.log")).
			LockPath(filepath.Join(tmpDir, "app.lock")).
			LevelString("debug").
			Name("builderapp").
			Strict(true).
			TimestampFormat("15:04:05").
			CallerSkip(1).
			EnableStdout(true).
			StdoutTarget("stderr").
			AutoTruncate(60, 5000, 500).
			HeartbeatIntervalS(0).
			InternalErrorsToStderr(true).
			Build()

		if logger != nil {
			defer logger.Close()
		}

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, logger, "Builder.Build() should return a non-nil logger")

		cfg := logger.GetConfig()
		require.NotNil(t, cfg)

		assert.Equal(t, filepath.Join(tmpDir, "app.log"), cfg.FilePath)
		assert.Equal(t, filepath.Join(tmpDir, "app.lock"), cfg.LockPath)
		assert.Equal(t, LevelDebug, cfg.Level)
		assert.Equal(t, "builderapp", cfg.Name)
		assert.True(t, cfg.Strict)
		assert.Equal(t, "15:04:05", cfg.TimestampFormat)
		assert.Equal(t, int64(1), cfg.CallerSkip)
		assert.True(t, cfg.EnableStdout)
		assert.Equal(t, "stderr", cfg.StdoutTarget)
		assert.Equal(t, int64(60), cfg.AutoTruncateIntervalS)
		assert.Equal(t, int64(5000), cfg.TruncateTrigger)
		assert.Equal(t, int64(500), cfg.TruncateRetain)
		assert.True(t, cfg.InternalErrorsToStderr)
	})

	t.Run("builder error accumulation", func(t *testing.T) {
		logger, err := NewBuilder().
			LevelString("invalid-level-string").
			Name("unreached").
			Build()

		require.Error(t, err, "Build should fail with an invalid level string")
		assert.Contains(t, err.Error(), "invalid level string")
		assert.Nil(t, logger, "A nil logger should be returned on build error")
	})

	t.Run("apply config validation error", func(t *testing.T) {
		logger, err := NewBuilder().
			FilePath(filepath.Join(t.TempDir(), "app.log")).
			StdoutTarget("pipe").
			Build()

		require.Error(t, err, "Build should fail validation inside ApplyConfig")
		assert.Contains(t, err.Error(), "invalid stdout_target")
		assert.Nil(t, logger)
	})
}

func TestBuilderLockInjection(t *testing.T) {
	t.Run("custom locker", func(t *testing.T) {
		lock := &countingLock{}
		sink := &countingSink{}

		logger, err := NewBuilder().Lock(lock).Sink(sink).Build()
		require.NoError(t, err)

		logger.Info("through the injected pair")

		attempts, releases := lock.counts()
		assert.Equal(t, 1, attempts)
		assert.Equal(t, 1, releases)
		assert.Equal(t, 1, sink.count())
	})

	t.Run("file lock instance", func(t *testing.T) {
		tmpDir := t.TempDir()
		lock := lockfile.New(filepath.Join(tmpDir, "shared.lock"))

		logger, err := NewBuilder().
			FilePath(filepath.Join(tmpDir, "app.log")).
			Lock(lock).
			Build()
		require.NoError(t, err)
		defer logger.Close()

		// The injected instance survives ApplyConfig and the config follows it
		assert.Same(t, lock, logger.getLock())
		assert.Equal(t, lock.Path(), logger.GetConfig().LockPath)

		logger.Info("file-locked record")
		records := readRecords(t, filepath.Join(tmpDir, "app.log"))
		assert.Len(t, records, 1)
	})
}

func TestBuilderSinkInjection(t *testing.T) {
	sink := &countingSink{}
	logger, err := NewBuilder().Sink(sink).Name("sinkonly").Build()
	require.NoError(t, err)

	logger.Info("captured")
	logger.Error("also captured")

	require.Equal(t, 2, sink.count())
	assert.Contains(t, string(sink.records[0]), " sinkonly ")
	assert.Contains(t, string(sink.records[1]), "ERROR: ")
}
