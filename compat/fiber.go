// FILE: tidelock/plog/compat/fiber.go
package compat

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidelock/plog"
)

// FiberAdapter wraps plog.Logger behind the method set fiber's log facade
// expects: plain, printf-style and key-value variants of every level. The
// dependency is shape-only; nothing from fiber is imported.
type FiberAdapter struct {
	logger       *plog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// NewFiberAdapter creates a new fiber-compatible logger adapter
func NewFiberAdapter(logger *plog.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches fiber expectations
		},
		panicHandler: func(msg string) {
			panic(msg)
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// fields prefixes the adapter's fixed fields onto caller key-values
func (a *FiberAdapter) fields(msg string, kv []any) []any {
	out := make([]any, 0, len(kv)+4)
	out = append(out, "msg", msg, "source", "fiber")
	return append(out, kv...)
}

// --- Plain variants ---

// Trace logs at debug level with a trace marker
func (a *FiberAdapter) Trace(v ...any) {
	a.logger.Debug(a.fields(fmt.Sprint(v...), []any{"level", "trace"})...)
}

// Debug logs at debug level
func (a *FiberAdapter) Debug(v ...any) {
	a.logger.Debug(a.fields(fmt.Sprint(v...), nil)...)
}

// Info logs at info level
func (a *FiberAdapter) Info(v ...any) {
	a.logger.Info(a.fields(fmt.Sprint(v...), nil)...)
}

// Warn logs at warn level
func (a *FiberAdapter) Warn(v ...any) {
	a.logger.Warn(a.fields(fmt.Sprint(v...), nil)...)
}

// Error logs at error level
func (a *FiberAdapter) Error(v ...any) {
	a.logger.Error(a.fields(fmt.Sprint(v...), nil)...)
}

// Fatal logs at fatal level and triggers the fatal handler
func (a *FiberAdapter) Fatal(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Fatal(a.fields(msg, nil)...)

	// Ensure the record reaches disk before the handler exits
	_ = a.logger.Sync()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panic logs at error level with a panic marker and triggers the panic handler
func (a *FiberAdapter) Panic(v ...any) {
	msg := fmt.Sprint(v...)
	a.logger.Error(a.fields(msg, []any{"panic", true})...)

	_ = a.logger.Sync()

	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// Write makes the adapter usable wherever fiber wants an io.Writer for log
// output redirection
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	a.logger.Info(a.fields(strings.TrimSuffix(string(p), "\n"), nil)...)
	return len(p), nil
}

// --- Printf-style variants ---

// Tracef logs at debug level with printf-style formatting and a trace marker
func (a *FiberAdapter) Tracef(format string, v ...any) {
	a.logger.Debug(a.fields(fmt.Sprintf(format, v...), []any{"level", "trace"})...)
}

// Debugf logs at debug level with printf-style formatting
func (a *FiberAdapter) Debugf(format string, v ...any) {
	a.logger.Debug(a.fields(fmt.Sprintf(format, v...), nil)...)
}

// Infof logs at info level with printf-style formatting
func (a *FiberAdapter) Infof(format string, v ...any) {
	a.logger.Info(a.fields(fmt.Sprintf(format, v...), nil)...)
}

// Warnf logs at warn level with printf-style formatting
func (a *FiberAdapter) Warnf(format string, v ...any) {
	a.logger.Warn(a.fields(fmt.Sprintf(format, v...), nil)...)
}

// Errorf logs at error level with printf-style formatting
func (a *FiberAdapter) Errorf(format string, v ...any) {
	a.logger.Error(a.fields(fmt.Sprintf(format, v...), nil)...)
}

// Fatalf logs at fatal level and triggers the fatal handler
func (a *FiberAdapter) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.logger.Fatal(a.fields(msg, nil)...)

	_ = a.logger.Sync()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panicf logs at error level with a panic marker and triggers the panic handler
func (a *FiberAdapter) Panicf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.logger.Error(a.fields(msg, []any{"panic", true})...)

	_ = a.logger.Sync()

	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// --- Key-value variants ---

// Tracew logs at debug level with structured key-value pairs and a trace marker
func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	kv := append([]any{"level", "trace"}, keysAndValues...)
	a.logger.Debug(a.fields(msg, kv)...)
}

// Debugw logs at debug level with structured key-value pairs
func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	a.logger.Debug(a.fields(msg, keysAndValues)...)
}

// Infow logs at info level with structured key-value pairs
func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	a.logger.Info(a.fields(msg, keysAndValues)...)
}

// Warnw logs at warn level with structured key-value pairs
func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	a.logger.Warn(a.fields(msg, keysAndValues)...)
}

// Errorw logs at error level with structured key-value pairs
func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	a.logger.Error(a.fields(msg, keysAndValues)...)
}

// Fatalw logs at fatal level with structured key-value pairs and triggers the
// fatal handler
func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	a.logger.Fatal(a.fields(msg, keysAndValues)...)

	_ = a.logger.Sync()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panicw logs at error level with structured key-value pairs and a panic
// marker, then triggers the panic handler
func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	kv := append([]any{"panic", true}, keysAndValues...)
	a.logger.Error(a.fields(msg, kv)...)

	_ = a.logger.Sync()

	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}
