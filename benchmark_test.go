package plog

import (
	"errors"
	"path/filepath"
	"testing"
)

func newBenchLogger(b *testing.B, withLock bool) *Logger {
	b.Helper()
	tmpDir := b.TempDir()

	builder := NewBuilder().FilePath(filepath.Join(tmpDir, "bench.log"))
	if withLock {
		builder = builder.LockPath(filepath.Join(tmpDir, "bench.lock"))
	}

	logger, err := builder.Build()
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { logger.Close() })
	return logger
}

// BenchmarkLoggerInfo measures a locked write of a plain record
func BenchmarkLoggerInfo(b *testing.B) {
	logger := newBenchLogger(b, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

// BenchmarkLoggerInfoLockless measures the same write without a lock
func BenchmarkLoggerInfoLockless(b *testing.B) {
	logger := newBenchLogger(b, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i)
	}
}

// BenchmarkLoggerInfof measures the printf path
func BenchmarkLoggerInfof(b *testing.B) {
	logger := newBenchLogger(b, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Infof("benchmark message %d of %d", i, b.N)
	}
}

// BenchmarkDisabledLevel measures the cost of a record below the threshold,
// which should do no lock, format or sink work
func BenchmarkDisabledLevel(b *testing.B) {
	logger := newBenchLogger(b, true)
	logger.SetLevel(LevelError)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("benchmark message", i)
	}
}

// BenchmarkErrorChain measures rendering a wrapped cause chain
func BenchmarkErrorChain(b *testing.B) {
	logger := newBenchLogger(b, true)
	err := Wrap(Wrap(errors.New("base"), "middle"), "outer")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.ErrorErr(err, "operation %d failed", i)
	}
}

// BenchmarkConcurrentLogging measures contention across goroutines sharing
// the lock
func BenchmarkConcurrentLogging(b *testing.B) {
	logger := newBenchLogger(b, true)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent", i)
			i++
		}
	})
}
