package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tidelock/plog"
)

const (
	numWorkers     = 8
	numChildren    = 3
	logsPerWorker  = 2000
	logsPerChild   = 1000
	maxMessageSize = 400

	logPath  = "./stress.log"
	lockPath = "./stress.lock"

	childEnv = "PLOG_STRESS_CHILD"
)

var levels = []int64{
	plog.LevelDebug,
	plog.LevelInfo,
	plog.LevelWarn,
	plog.LevelError,
}

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func newLogger(name string) (*plog.Logger, error) {
	return plog.NewBuilder().
		Name(name).
		LevelString("debug").
		FilePath(logPath).
		LockPath(lockPath).
		AutoTruncate(2, 5_000_000, 500_000).
		InternalErrorsToStderr(true).
		Build()
}

// runChild is the workload of re-exec'd child processes, so the file lock is
// contended across real process boundaries and not just goroutines
func runChild(runID string) {
	logger, err := newLogger("stress.child")
	if err != nil {
		fmt.Fprintf(os.Stderr, "child logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	for i := 0; i < logsPerChild; i++ {
		level := levels[rand.Intn(len(levels))]
		logger.Log(level, 0, nil, "run %s child pid %d seq %d: %s",
			runID, os.Getpid(), i, generateRandomMessage(rand.Intn(maxMessageSize)+10))
	}
}

func main() {
	if runID := os.Getenv(childEnv); runID != "" {
		runChild(runID)
		return
	}

	runID := uuid.NewString()
	fmt.Printf("--- Logger Stress Test (run %s) ---\n", runID)
	fmt.Printf("%d workers, %d child processes, one shared file.\n", numWorkers, numChildren)

	// Clean previous run's output before starting
	_ = os.Remove(logPath)
	_ = os.Remove(lockPath)

	logger, err := newLogger("stress")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())

	// In-process workers hammer the shared lock from goroutines
	for w := 0; w < numWorkers; w++ {
		worker := w
		g.Go(func() error {
			for i := 0; i < logsPerWorker; i++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				level := levels[rand.Intn(len(levels))]
				logger.Log(level, 0, nil, "run %s worker %d seq %d: %s",
					runID, worker, i, generateRandomMessage(rand.Intn(maxMessageSize)+10))
			}
			return nil
		})
	}

	// Child processes contend on the same file through the lock file
	for c := 0; c < numChildren; c++ {
		g.Go(func() error {
			cmd := exec.CommandContext(ctx, os.Args[0])
			cmd.Env = append(os.Environ(), childEnv+"="+runID)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			return cmd.Run()
		})
	}

	// Manual truncation on top of the auto-truncate ticker
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := logger.Truncate(2_000_000, 200_000); err != nil {
					fmt.Fprintf(os.Stderr, "truncation error: %v\n", err)
				}
			}
		}
	}()

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "stress run failed: %v\n", err)
	}
	close(done)
	duration := time.Since(start)

	// Every record opens with the marker byte and the sanitizer escapes it
	// inside bodies, so counting markers counts records
	if data, readErr := os.ReadFile(logPath); readErr == nil {
		records := 0
		for _, b := range data {
			if b == plog.RecordMarker {
				records++
			}
		}
		fmt.Printf("Log file: %d bytes, %d records\n", len(data), records)
		if len(data) > 0 && data[0] != plog.RecordMarker {
			fmt.Println("WARNING: file does not start at a record boundary")
		}
	}

	stats := logger.Stats()
	fmt.Printf("--- Test Finished in %v ---\n", duration.Round(time.Millisecond))
	fmt.Printf("written=%d dropped=%d truncations=%d truncated_bytes=%d\n",
		stats.TotalRecords, stats.DroppedRecords, stats.Truncations, stats.TruncatedBytes)
	if duration.Seconds() > 0 {
		fmt.Printf("Approximate records/sec (this process): %.2f\n",
			float64(stats.TotalRecords)/duration.Seconds())
	}

	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger close error: %v\n", err)
	}
}
