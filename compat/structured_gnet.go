// FILE: tidelock/plog/compat/structured_gnet.go
package compat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidelock/plog"
)

// keyValuePattern detects "key=%v" and "key: %v" segments in printf formats
var keyValuePattern = regexp.MustCompile(`(\w+)\s*[:=]\s*%[vsdqxXeEfFgGpbcU]`)

// parseFormat extracts key-value pairs from printf-style format strings so
// adapters can preserve the fields callers already spelled out. Formats the
// pattern cannot pair up with their arguments fall back to a single rendered
// message.
func parseFormat(format string, args []any) []any {
	matches := keyValuePattern.FindAllStringSubmatchIndex(format, -1)
	if len(matches) == 0 || len(matches) > len(args) {
		return []any{"msg", fmt.Sprintf(format, args...)}
	}

	fields := make([]any, 0, 2*len(matches)+2)
	var msg []string

	lastEnd := 0
	for i, m := range matches {
		if lead := strings.TrimSpace(format[lastEnd:m[0]]); lead != "" {
			msg = append(msg, lead)
		}
		fields = append(fields, format[m[2]:m[3]], args[i])
		lastEnd = m[1]
	}

	if tail := strings.TrimSpace(format[lastEnd:]); tail != "" {
		if rest := args[len(matches):]; len(rest) > 0 {
			tail = strings.TrimSpace(fmt.Sprintf(tail, rest...))
		}
		if tail != "" {
			msg = append(msg, tail)
		}
	}

	if len(msg) > 0 {
		fields = append([]any{"msg", strings.Join(msg, " ")}, fields...)
	}
	return fields
}

// StructuredGnetAdapter extends GnetAdapter with key-value extraction, so
// "accepted conn=%d" becomes a field instead of flattened message text
type StructuredGnetAdapter struct {
	*GnetAdapter
	extractFields bool
}

// NewStructuredGnetAdapter creates a gnet adapter with structured field extraction
func NewStructuredGnetAdapter(logger *plog.Logger, opts ...GnetOption) *StructuredGnetAdapter {
	return &StructuredGnetAdapter{
		GnetAdapter:   NewGnetAdapter(logger, opts...),
		extractFields: true,
	}
}

// Debugf logs with structured field extraction
func (a *StructuredGnetAdapter) Debugf(format string, args ...any) {
	if !a.extractFields {
		a.GnetAdapter.Debugf(format, args...)
		return
	}
	a.logger.Debug(append(parseFormat(format, args), "source", "gnet")...)
}

// Infof logs with structured field extraction
func (a *StructuredGnetAdapter) Infof(format string, args ...any) {
	if !a.extractFields {
		a.GnetAdapter.Infof(format, args...)
		return
	}
	a.logger.Info(append(parseFormat(format, args), "source", "gnet")...)
}

// Warnf logs with structured field extraction
func (a *StructuredGnetAdapter) Warnf(format string, args ...any) {
	if !a.extractFields {
		a.GnetAdapter.Warnf(format, args...)
		return
	}
	a.logger.Warn(append(parseFormat(format, args), "source", "gnet")...)
}

// Errorf logs with structured field extraction
func (a *StructuredGnetAdapter) Errorf(format string, args ...any) {
	if !a.extractFields {
		a.GnetAdapter.Errorf(format, args...)
		return
	}
	a.logger.Error(append(parseFormat(format, args), "source", "gnet")...)
}
