//go:build !linux

// FILE: tidelock/plog/threadid_other.go
package plog

// nativeThreadID is unavailable off Linux; records carry 0 there.
func nativeThreadID() int {
	return 0
}
