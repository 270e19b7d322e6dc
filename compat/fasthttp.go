// FILE: tidelock/plog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/tidelock/plog"
)

// FastHTTPAdapter wraps plog.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *plog.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *plog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  plog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		detected := a.levelDetector(msg)
		if detected != 0 {
			level = detected
		}
	}

	// Log with appropriate level
	switch level {
	case plog.LevelDebug:
		a.logger.Debug("msg", msg, "source", "fasthttp")
	case plog.LevelWarn:
		a.logger.Warn("msg", msg, "source", "fasthttp")
	case plog.LevelError:
		a.logger.Error("msg", msg, "source", "fasthttp")
	case plog.LevelFatal:
		a.logger.Fatal("msg", msg, "source", "fasthttp")
	default:
		a.logger.Info("msg", msg, "source", "fasthttp")
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	// Check for fatal indicators
	if strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return plog.LevelFatal
	}

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") {
		return plog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return plog.LevelWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return plog.LevelDebug
	}

	// Default to info level
	return plog.LevelInfo
}
