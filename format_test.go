// FILE: format_test.go
package plog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestEncodeRecord verifies the wire envelope wrapped around a record body
func TestEncodeRecord(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("layout", func(t *testing.T) {
		data := encodeRecord(timestamp, defaultTimestampFormat, "svc", LevelInfo, "header line\nmessage")
		str := string(data)

		assert.Equal(t, RecordMarker, data[0])
		assert.Equal(t, "\x0b2024-01-01T12:00:00.000Z svc INFO : header line\nmessage\n", str)
	})

	t.Run("level tags padded to fixed width", func(t *testing.T) {
		expected := map[int64]string{
			LevelDebug: "DEBUG: ",
			LevelInfo:  "INFO : ",
			LevelWarn:  "WARN : ",
			LevelError: "ERROR: ",
			LevelFatal: "FATAL: ",
			2:          "2    : ",
		}

		for level, tag := range expected {
			str := string(encodeRecord(timestamp, defaultTimestampFormat, "svc", level, "m"))
			assert.Contains(t, str, " svc "+tag+"m\n")
		}
	})

	t.Run("custom timestamp format", func(t *testing.T) {
		str := string(encodeRecord(timestamp, "15:04:05", "svc", LevelInfo, "m"))
		assert.True(t, strings.HasPrefix(str, "\x0b12:00:00 "))
	})

	t.Run("zone offset preserved", func(t *testing.T) {
		zoned := timestamp.In(time.FixedZone("CET", 3600))
		str := string(encodeRecord(zoned, defaultTimestampFormat, "svc", LevelInfo, "m"))
		assert.Contains(t, str, "+01:00 svc ")
	})

	t.Run("single trailing newline", func(t *testing.T) {
		str := string(encodeRecord(timestamp, defaultTimestampFormat, "svc", LevelInfo, "single line"))
		assert.True(t, strings.HasSuffix(str, "single line\n"))
		assert.Equal(t, 1, strings.Count(str, "\n"))
	})
}
