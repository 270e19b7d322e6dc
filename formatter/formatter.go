// FILE: tidelock/plog/formatter/formatter.go

// Package formatter builds the decorated body of a log record: an identity
// header naming the process, the threads and the call site, the message
// itself, and the rendered chain of causing errors. It is independent of the
// lock and the sink; the root package assembles its output into the wire
// format.
package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/valyala/bytebufferpool"
)

// Placeholder tokens for frames the runtime cannot resolve and for
// compiler-generated function names.
const (
	UnknownToken   = "{unknown}"
	InitToken      = "{init}"
	AnonymousToken = "{anonymous}"
)

// MaxCauseDepth bounds cause-chain rendering so cyclic or pathological error
// chains cannot produce unbounded output.
const MaxCauseDepth = 10

// stackAbsentToken is rendered when a cause carries no stack snapshot
const stackAbsentToken = "(none)"

// Identity names the process and the threads a record originated from
type Identity struct {
	Process   string
	PID       int
	Goroutine uint64
	ThreadID  int
}

// CallSite describes the attributed caller of a logging operation. File is a
// base name or UnknownToken; Column is always 0 on this runtime and is kept
// for a stable field count.
type CallSite struct {
	File   string
	Line   int
	Column int
	Type   string
	Method string
}

// sourcer is satisfied by errors that know their origin ("file.go:42")
type sourcer interface {
	Source() string
}

// stackTracer is satisfied by errors carrying a stack snapshot
type stackTracer interface {
	StackTrace() string
}

// Decorator renders record bodies. It is stateless and safe for concurrent
// use; per-call buffers come from a pool.
type Decorator struct {
	dumper *spew.ConfigState
}

// New creates a Decorator
func New() *Decorator {
	return &Decorator{
		dumper: &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true, // Cleaner for logs
			DisableCapacities:       true, // Less noise
			SortKeys:                true, // Consistent map output
		},
	}
}

// Decorate builds the record body: the identity/call-site header line, the
// message on the next line, then one labeled block per causing error, at most
// MaxCauseDepth deep.
func (d *Decorator) Decorate(id Identity, site CallSite, message string, cause error) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	b := buf.B
	b = append(b, id.Process...)
	b = append(b, '[')
	b = strconv.AppendInt(b, int64(id.PID), 10)
	b = append(b, "] "...)
	b = strconv.AppendUint(b, id.Goroutine, 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(id.ThreadID), 10)
	b = append(b, ' ')
	b = append(b, site.Type...)
	b = append(b, '.')
	b = append(b, site.Method...)
	b = append(b, ' ')
	b = append(b, site.File...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(site.Line), 10)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(site.Column), 10)
	b = append(b, '\n')
	b = append(b, message...)

	depth := 0
	for err := cause; err != nil && depth < MaxCauseDepth; err = errors.Unwrap(err) {
		b = d.appendCause(b, err)
		depth++
	}

	buf.B = b
	return string(b)
}

// appendCause renders one link of the cause chain: type name, message,
// source and stack, each on a labeled line.
func (d *Decorator) appendCause(b []byte, err error) []byte {
	b = append(b, "\ncause: "...)
	b = append(b, fmt.Sprintf("%T", err)...)
	b = append(b, "\nmessage: "...)
	b = append(b, err.Error()...)

	b = append(b, "\nsource: "...)
	if src, ok := err.(sourcer); ok && src.Source() != "" {
		b = append(b, src.Source()...)
	} else {
		b = append(b, UnknownToken...)
	}

	b = append(b, "\nstack: "...)
	if st, ok := err.(stackTracer); ok && st.StackTrace() != "" {
		b = append(b, bytes.TrimRight([]byte(st.StackTrace()), "\n")...)
	} else {
		b = append(b, stackAbsentToken...)
	}
	return b
}

// RenderArgs joins plain logging arguments into a message string, space
// separated, with composite values dumped through spew.
func (d *Decorator) RenderArgs(args []any) string {
	if len(args) == 0 {
		return ""
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	b := buf.B
	for i, arg := range args {
		if i > 0 {
			b = append(b, ' ')
		}
		b = d.appendValue(b, arg)
	}
	buf.B = b
	return string(b)
}

// appendValue converts a single value to its text representation
func (d *Decorator) appendValue(b []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(b, val...)
	case int:
		return strconv.AppendInt(b, int64(val), 10)
	case int32:
		return strconv.AppendInt(b, int64(val), 10)
	case int64:
		return strconv.AppendInt(b, val, 10)
	case uint:
		return strconv.AppendUint(b, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(b, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(b, val, 10)
	case float32:
		return strconv.AppendFloat(b, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(b, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(b, val)
	case nil:
		return append(b, "null"...)
	case time.Duration:
		return append(b, val.String()...)
	case time.Time:
		return val.AppendFormat(b, time.RFC3339Nano)
	case error:
		return append(b, val.Error()...)
	case fmt.Stringer:
		return append(b, val.String()...)
	default:
		// Structs, maps, slices, pointers: delegate to spew for a compact
		// structural dump with type information
		var sb bytes.Buffer
		d.dumper.Fdump(&sb, val)
		return append(b, bytes.TrimSpace(sb.Bytes())...)
	}
}
