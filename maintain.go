// FILE: maintain.go
package plog

import (
	"fmt"
	"runtime"
	"time"
)

// restartMaintenance stops any running maintenance goroutine and starts a new
// one when the configuration asks for periodic truncation or heartbeats.
// Caller holds initMu.
func (l *Logger) restartMaintenance(cfg *Config) {
	l.stopMaintenance()

	truncEvery := time.Duration(cfg.AutoTruncateIntervalS) * time.Second
	hbEvery := time.Duration(cfg.HeartbeatIntervalS) * time.Second
	if truncEvery <= 0 && hbEvery <= 0 {
		return
	}

	l.startMaintenance(truncEvery, hbEvery)
}

// startMaintenance launches the periodic worker
func (l *Logger) startMaintenance(truncEvery, hbEvery time.Duration) {
	m := &maintenance{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	l.maint = m
	go l.maintainLoop(m, truncEvery, hbEvery)
}

// stopMaintenance signals the worker and waits for it to exit
func (l *Logger) stopMaintenance() {
	if l.maint == nil {
		return
	}
	close(l.maint.stop)
	<-l.maint.done
	l.maint = nil
}

// maintainLoop drives auto-truncation and heartbeats off dedicated tickers.
// A zero interval leaves the corresponding channel nil so its case never fires.
func (l *Logger) maintainLoop(m *maintenance, truncEvery, hbEvery time.Duration) {
	defer close(m.done)

	var truncCh, hbCh <-chan time.Time
	if truncEvery > 0 {
		t := time.NewTicker(truncEvery)
		defer t.Stop()
		truncCh = t.C
	}
	if hbEvery > 0 {
		t := time.NewTicker(hbEvery)
		defer t.Stop()
		hbCh = t.C
	}

	for {
		select {
		case <-m.stop:
			return
		case <-truncCh:
			cfg := l.getConfig()
			if err := l.Truncate(cfg.TruncateTrigger, cfg.TruncateRetain); err != nil {
				l.internalLog("auto-truncation failed: %v\n", err)
			}
		case <-hbCh:
			l.logHeartbeat()
		}
	}
}

// logHeartbeat writes one heartbeat record with logger statistics
func (l *Logger) logHeartbeat() {
	st := &l.root.state
	sequence := st.HeartbeatSequence.Add(1)

	var uptimeHours float64
	if startTime, ok := st.LoggerStartTime.Load().(time.Time); ok && !startTime.IsZero() {
		uptimeHours = time.Since(startTime).Hours()
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	l.Info(
		"type", "heartbeat",
		"sequence", sequence,
		"uptime_hours", fmt.Sprintf("%.2f", uptimeHours),
		"total_records", st.TotalRecords.Load(),
		"dropped_records", st.DroppedRecords.Load(),
		"truncations", st.Truncations.Load(),
		"alloc_mb", fmt.Sprintf("%.2f", float64(memStats.Alloc)/(sizeMultiplier*sizeMultiplier)),
		"num_goroutine", runtime.NumGoroutine(),
	)
}
