// FILE: tidelock/plog/lockfile/lockfile_test.go
package lockfile

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLock(t *testing.T) {
	t.Run("acquire creates the lock file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.lock")
		fl := New(path)
		assert.Equal(t, path, fl.Path())

		require.True(t, fl.Acquire())
		_, err := os.Stat(path)
		assert.NoError(t, err)
		fl.Release()

		// The lock file stays behind for the next holder
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("reacquire after release", func(t *testing.T) {
		fl := New(filepath.Join(t.TempDir(), "app.lock"))
		for i := 0; i < 3; i++ {
			require.True(t, fl.Acquire())
			fl.Release()
		}
	})

	t.Run("release is idempotent", func(t *testing.T) {
		fl := New(filepath.Join(t.TempDir(), "app.lock"))
		fl.Release() // Releasing an unheld lock is a no-op

		require.True(t, fl.Acquire())
		fl.Release()
		fl.Release()

		require.True(t, fl.Acquire())
		fl.Release()
	})

	t.Run("unopenable path fails", func(t *testing.T) {
		dir := t.TempDir()
		obstacle := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(obstacle, nil, 0o644))

		fl := New(filepath.Join(obstacle, "app.lock"))
		assert.False(t, fl.Acquire())

		// A failed acquire must not wedge later attempts
		assert.False(t, fl.Acquire())
	})
}

// Separate FileLock instances hold separate open file descriptions, so flock
// arbitrates between them exactly as it would between two processes.
func TestFileLockExclusion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.lock")

	const holders = 4
	const iterations = 25

	var inside atomic.Int32
	var total atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < holders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fl := New(path)
			for j := 0; j < iterations; j++ {
				if !fl.Acquire() {
					t.Error("acquire failed")
					return
				}
				if v := inside.Add(1); v != 1 {
					t.Errorf("%d holders inside the critical section", v)
				}
				time.Sleep(time.Microsecond)
				inside.Add(-1)
				total.Add(1)
				fl.Release()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(holders*iterations), total.Load())
}

func TestFileLockBlocksSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.lock")

	first := New(path)
	require.True(t, first.Acquire())

	acquired := make(chan struct{})
	go func() {
		second := New(path)
		if second.Acquire() {
			close(acquired)
			second.Release()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held lock")
	case <-time.After(50 * time.Millisecond):
	}

	first.Release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second holder never acquired after release")
	}
}
