// FILE: utility.go
package plog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/tidelock/plog/formatter"
)

// Process identity is immutable for the process lifetime, captured once.
var (
	procName = resolveProcessName()
	procID   = os.Getpid()
)

func resolveProcessName() string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return formatter.UnknownToken
}

// currentIdentity captures the process and thread identity for one record
func currentIdentity() formatter.Identity {
	return formatter.Identity{
		Process:   procName,
		PID:       procID,
		Goroutine: goroutineID(),
		ThreadID:  nativeThreadID(),
	}
}

// goroutineID parses the current goroutine id from the runtime stack header
// ("goroutine N [running]:"). There is no cheaper supported way to obtain it.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := strings.Fields(string(buf[:n]))
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// captureCallSite resolves the frame skip levels above its caller into a
// call-site descriptor. Unresolvable frames yield placeholder tokens rather
// than empty fields.
func captureCallSite(skip int) formatter.CallSite {
	var pc [1]uintptr
	n := runtime.Callers(skip+2, pc[:]) // +2 skips Callers and this function
	if n == 0 {
		return unknownCallSite()
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	if frame.Function == "" {
		return unknownCallSite()
	}

	site := formatter.CallSite{
		File:   formatter.UnknownToken,
		Line:   0,
		Column: 0, // the runtime exposes no column information
	}
	if frame.File != "" {
		site.File = filepath.Base(frame.File)
		site.Line = frame.Line
	}
	site.Type, site.Method = splitFunction(frame.Function)
	return site
}

func unknownCallSite() formatter.CallSite {
	return formatter.CallSite{
		File:   formatter.UnknownToken,
		Type:   formatter.UnknownToken,
		Method: formatter.UnknownToken,
	}
}

// splitFunction splits a runtime function name like
// "github.com/acme/app/pkg.(*Server).handleConn" into a declaring type
// ("pkg.(*Server)") and a method ("handleConn"). Compiler-generated names are
// normalized to fixed tokens: init funcs ("init", "init.0") become InitToken
// and closures ("func1", "func2.1") become AnonymousToken.
func splitFunction(fn string) (typeName, method string) {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	segs := strings.Split(fn, ".")
	if len(segs) < 2 {
		return formatter.UnknownToken, fn
	}

	// Drop trailing numeric suffixes ("init.0", "func1.2")
	last := len(segs) - 1
	for last > 0 && isDigits(segs[last]) {
		last--
	}
	method = segs[last]
	typeName = strings.TrimRight(strings.Join(segs[:last], "."), ".")
	if typeName == "" {
		typeName = formatter.UnknownToken
	}

	switch {
	case method == "init" || method == "glob" ||
		typeName == "glob" || strings.HasSuffix(typeName, ".glob"):
		// "pkg.init", "pkg.init.0" and package-level var initializers
		// ("pkg.glob..func1") all count as initialization frames
		method = formatter.InitToken
		typeName = strings.TrimSuffix(strings.TrimSuffix(typeName, "glob"), ".")
		if typeName == "" {
			typeName = formatter.UnknownToken
		}
	case isClosureName(method):
		method = formatter.AnonymousToken
	}
	return typeName, method
}

// isClosureName reports whether a name segment is a compiler-generated
// closure name: "func" followed by digits.
func isClosureName(s string) bool {
	if !strings.HasPrefix(s, "func") || len(s) == len("func") {
		return false
	}
	return isDigits(s[len("func"):])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// levelTag returns the fixed-width record header tag for a level
func levelTag(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO "
	case LevelWarn:
		return "WARN "
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("%-*d", levelTagWidth, level)
	}
}

// LevelName converts a level constant to its canonical name
func LevelName(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

// Level converts a level string to its numeric constant
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warn, error, fatal)", levelStr)
	}
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "plog: ") {
		format = "plog: " + format
	}
	return fmt.Errorf(format, args...)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// formatMessage applies a printf template to args. Malformed templates
// (mismatched verbs, missing args) must not lose the event: on failure the raw
// template is returned with ok=false and the caller falls back to it.
// fmt reports such failures inline with "%!" markers.
func formatMessage(template string, args []any) (msg string, ok bool) {
	if len(args) == 0 && !strings.Contains(template, "%") {
		return template, true
	}
	msg = fmt.Sprintf(template, args...)
	if strings.Contains(msg, "%!") {
		return template, false
	}
	return msg, true
}
