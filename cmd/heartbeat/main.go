package main

import (
	"fmt"
	"os"
	"time"

	"github.com/tidelock/plog"
)

const (
	logPath  = "./heartbeat.log"
	lockPath = "./heartbeat.lock"
)

// Cycles the heartbeat stream off and on while regular records flow, printing
// the sequence counter after each phase so the effect of reconfiguration is
// visible.
func main() {
	phases := []struct {
		intervalS   int64
		description string
	}{
		{0, "heartbeats disabled"},
		{1, "heartbeats every second"},
		{0, "heartbeats disabled again"},
		{1, "heartbeats re-enabled"},
	}

	logger, err := plog.NewBuilder().
		Name("heartbeat-demo").
		LevelString("debug").
		FilePath(logPath).
		LockPath(lockPath).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	for _, phase := range phases {
		if err := logger.ApplyOverride(fmt.Sprintf("heartbeat_interval_s=%d", phase.intervalS)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reconfigure logger: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n--- %s ---\n", phase.description)
		logger.Infof("phase started: %s", phase.description)

		for i := 0; i < 5; i++ {
			logger.Debugf("filler record %d", i)
			time.Sleep(500 * time.Millisecond)
		}

		stats := logger.Stats()
		fmt.Printf("records=%d heartbeats=%d\n", stats.TotalRecords, stats.HeartbeatSeq)
	}

	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger close error: %v\n", err)
	}
	fmt.Printf("\nDone. Inspect %s for heartbeat records.\n", logPath)
}
