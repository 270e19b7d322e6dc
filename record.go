// FILE: record.go
package plog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tidelock/plog/sanitizer"
)

// recordSanitizer escapes marker and bare control bytes in record bodies so a
// body line can never be mistaken for a record boundary
var recordSanitizer = sanitizer.New().Policy(sanitizer.PolicyRecord)

// log handles the core logging logic: render the message, decorate it with
// identity and call site, encode the envelope, then write under the
// inter-process lock. The emit path never panics unless strict mode asks for
// escalation.
func (l *Logger) log(level int64, depth int64, cause error, template string, templated bool, args []any) {
	root := l.root
	if !root.state.IsInitialized.Load() {
		return
	}

	cfg := l.getConfig()
	if level < cfg.Level {
		return
	}
	strict := cfg.Strict

	accounted := false
	defer func() {
		if r := recover(); r != nil {
			if !accounted {
				root.state.InternalErrors.Add(1)
				l.internalLog("panic on emit path: %v\n", r)
			}
			if strict {
				panic(r)
			}
		}
	}()

	var msg string
	fellBack := false
	if templated {
		var ok bool
		msg, ok = formatMessage(template, args)
		fellBack = !ok
	} else {
		msg = l.decorator.RenderArgs(args)
	}
	if fellBack {
		root.state.FormatFallbacks.Add(1)
		if cfg.EnableMetrics {
			metricFormatFallbacks.Inc()
		}
	}

	site := captureCallSite(int(cfg.CallerSkip) + int(depth) + emitSkipFrames)
	body := recordSanitizer.Sanitize(l.decorator.Decorate(currentIdentity(), site, msg, cause))
	record := encodeRecord(time.Now(), cfg.TimestampFormat, cfg.Name, level, body)

	// Mirror before taking the lock; console output is best-effort and must
	// not depend on lock acquisition
	if cfg.EnableStdout {
		if w := l.getStdout(); w != nil {
			_, _ = w.Write(record)
		}
	}

	lk := l.getLock()
	if lk != nil {
		if !lk.Acquire() {
			root.state.DroppedRecords.Add(1)
			if cfg.EnableMetrics {
				metricRecordsDropped.WithLabelValues("lock").Inc()
			}
			l.internalLog("lock acquisition failed, record dropped\n")
			return
		}
		defer lk.Release()
	}

	s := l.getSink()
	if s == nil {
		root.state.DroppedRecords.Add(1)
		if cfg.EnableMetrics {
			metricRecordsDropped.WithLabelValues("sink").Inc()
		}
		return
	}

	if err := s.Write(level, record); err != nil {
		root.state.DroppedRecords.Add(1)
		root.state.InternalErrors.Add(1)
		if cfg.EnableMetrics {
			metricRecordsDropped.WithLabelValues("write").Inc()
		}
		l.internalLog("%v\n", err)
		if strict {
			accounted = true
			panic(err)
		}
		return
	}

	root.state.TotalRecords.Add(1)
	root.state.BytesWritten.Add(uint64(len(record)))
	if cfg.EnableMetrics {
		metricRecordsWritten.WithLabelValues(LevelName(level)).Inc()
	}

	// Strict mode surfaces a format failure, but only after the fallback
	// record has been written
	if fellBack && strict {
		accounted = true
		panic(fmtErrorf("message formatting failed for template %q", template))
	}
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "plog: " prefix
	if !strings.HasPrefix(format, "plog: ") {
		format = "plog: " + format
	}

	fmt.Fprintf(os.Stderr, format, args...)
}
