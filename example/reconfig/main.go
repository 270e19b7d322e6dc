// FILE: example/reconfig/main.go
package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tidelock/plog"
)

// Simulate rapid reconfiguration while another goroutine keeps logging
func main() {
	var count atomic.Int64

	logger := plog.NewLogger()

	// Initialize the logger with defaults first
	err := logger.ApplyOverride(
		"file_path=/tmp/reconfig.log",
		"lock_path=/tmp/reconfig.lock",
	)
	if err != nil {
		fmt.Printf("Initial config error: %v\n", err)
		return
	}

	// Log something constantly
	go func() {
		for i := 0; ; i++ {
			logger.Info("Test log", i)
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Trigger multiple reconfigurations rapidly: level flips, heartbeat and
	// truncation intervals changing underneath the writer
	for i := 0; i < 10; i++ {
		overrides := []string{
			fmt.Sprintf("level=%d", []int64{plog.LevelDebug, plog.LevelInfo}[i%2]),
			fmt.Sprintf("heartbeat_interval_s=%d", i%3),
			fmt.Sprintf("auto_truncate_interval_s=%d", (i+1)%4),
		}
		if err := logger.ApplyOverride(overrides...); err != nil {
			fmt.Printf("Reconfig error: %v\n", err)
		}
		// Minimal delay between reconfigurations
		time.Sleep(10 * time.Millisecond)
	}

	// Check if we see any inconsistency
	time.Sleep(500 * time.Millisecond)
	fmt.Printf("Records attempted: %d\n", count.Load())

	stats := logger.Stats()
	fmt.Printf("Written: %d, dropped: %d, internal errors: %d\n",
		stats.TotalRecords, stats.DroppedRecords, stats.InternalErrors)

	if err := logger.Close(); err != nil {
		fmt.Printf("Close error: %v\n", err)
	}
}
