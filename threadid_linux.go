//go:build linux

// FILE: tidelock/plog/threadid_linux.go
package plog

import "golang.org/x/sys/unix"

// nativeThreadID returns the kernel thread id the calling goroutine is
// currently scheduled on. The value is a point-in-time observation; the
// scheduler may migrate the goroutine at any moment.
func nativeThreadID() int {
	return unix.Gettid()
}
