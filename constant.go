// FILE: tidelock/plog/constant.go
package plog

// Log level constants
const (
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
	LevelFatal int64 = 12
)

// RecordMarker is the control byte that prefixes every record written to the
// log file. The truncator realigns to it when discarding the head of the file,
// so it must never appear at the start of a line inside message content; the
// sanitizer guarantees that.
const RecordMarker byte = 0x0B

// levelTagWidth is the fixed width of the level field in the record header
const levelTagWidth = 5

// Truncation
const (
	// Suffix of the transient snapshot created next to the log file while
	// truncating. Anything at this path between runs is stale and removable.
	tmpSuffix = ".tmp"
	// Size multiplier for KB, MB
	sizeMultiplier = 1000
)

// Defaults
const (
	defaultTimestampFormat = "2006-01-02T15:04:05.000Z07:00"
	defaultFilePath        = "./plog.log"
	defaultTruncateTrigger = 10 * sizeMultiplier * sizeMultiplier // 10 MB
	defaultTruncateRetain  = 1 * sizeMultiplier * sizeMultiplier  // 1 MB
)

// emitSkipFrames is the distance from captureCallSite's caller to the user's
// frame: log -> public level method (adjust if the call stack changes)
const emitSkipFrames = 2
