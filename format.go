// FILE: tidelock/plog/format.go
package plog

import (
	"time"

	"github.com/valyala/bytebufferpool"
)

// encodeRecord wraps a sanitized body in the wire envelope:
//
//	<marker><timestamp> <name> <LEVEL>: <body>\n
//
// The marker byte opens every record so the truncator can realign to a record
// boundary; the sanitizer guarantees the body never starts a line with it.
// The level tag is right-padded to a fixed width so the header stays
// column-aligned across levels.
func encodeRecord(ts time.Time, tsFormat, name string, level int64, body string) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	b := buf.B
	b = append(b, RecordMarker)
	b = ts.AppendFormat(b, tsFormat)
	b = append(b, ' ')
	b = append(b, name...)
	b = append(b, ' ')
	b = append(b, levelTag(level)...)
	b = append(b, ": "...)
	b = append(b, body...)
	b = append(b, '\n')

	out := make([]byte, len(b))
	copy(out, b)
	buf.B = b
	return out
}
