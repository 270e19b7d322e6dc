// FILE: metrics.go
package plog

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus collectors for logger activity. They are registered on the
// default registry the first time a configuration enables metrics; counters
// are only updated while metrics stay enabled.
var (
	metricRecordsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plog_records_written_total",
			Help: "Total number of records written to the sink",
		},
		[]string{"level"},
	)
	metricRecordsDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plog_records_dropped_total",
			Help: "Total number of records dropped before reaching the sink",
		},
		[]string{"reason"},
	)
	metricTruncations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plog_truncations_total",
			Help: "Total number of completed log file truncations",
		},
	)
	metricTruncatedBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plog_truncated_bytes_total",
			Help: "Total number of bytes discarded by truncation",
		},
	)
	metricFormatFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "plog_format_fallbacks_total",
			Help: "Total number of records written with the raw template after a format failure",
		},
	)
)

var metricsOnce sync.Once

// registerMetrics installs the collectors on the default registry exactly once
func registerMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			metricRecordsWritten,
			metricRecordsDropped,
			metricTruncations,
			metricTruncatedBytes,
			metricFormatFallbacks,
		)
	})
}
