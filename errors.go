// FILE: tidelock/plog/errors.go
package plog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

// wrappedError is an error annotated with the wrap site and a stack snapshot.
// The formatter picks both up through the Source/StackTrace interfaces when
// rendering a cause chain.
type wrappedError struct {
	msg    string
	cause  error
	source string
	stack  string
}

func (e *wrappedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *wrappedError) Unwrap() error { return e.cause }

// Source returns the file:line of the wrap site
func (e *wrappedError) Source() string { return e.source }

// StackTrace returns the goroutine stack captured at the wrap site
func (e *wrappedError) StackTrace() string { return e.stack }

// Wrap annotates err with a message, the caller's file:line and a stack
// snapshot. Returns nil when err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:    msg,
		cause:  err,
		source: callerSource(2),
		stack:  captureStack(),
	}
}

// Wrapf is Wrap with a printf-style message
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:    fmt.Sprintf(format, args...),
		cause:  err,
		source: callerSource(2),
		stack:  captureStack(),
	}
}

// callerSource resolves skip frames above this function into "file.go:42"
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

// captureStack snapshots the current goroutine stack, bounded so pathological
// call depths cannot bloat every wrapped error
func captureStack() string {
	buf := make([]byte, 2048)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
