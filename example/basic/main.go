// FILE: example/basic/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidelock/plog"
)

const (
	logPath  = "/tmp/basic.log"
	lockPath = "/tmp/basic.lock"
)

func main() {
	// Two independent logger instances bound to the same file and lock,
	// the in-process equivalent of two processes sharing one log
	first, err := plog.NewBuilder().
		Name("svc-a").
		FilePath(logPath).
		LockPath(lockPath).
		LevelString("debug").
		Build()
	if err != nil {
		panic(err)
	}
	defer first.Close()

	second, err := plog.NewBuilder().
		Name("svc-b").
		FilePath(logPath).
		LockPath(lockPath).
		Build()
	if err != nil {
		panic(err)
	}
	defer second.Close()

	first.Debug("debug detail", "attempt", 1)
	first.Info("service A up")
	second.Info("service B up")
	second.Warnf("slow response: %dms", 1500)

	// Cause chains render as labeled blocks under the record
	base := errors.New("no such host")
	second.ErrorErr(plog.Wrap(base, "resolve database"), "startup check failed")

	// Children extend the name and reuse the parent's sink and lock
	authLog := first.Named("auth")
	authLog.Info("token cache warmed")

	// Records below the threshold cost nothing
	first.SetLevel(plog.LevelError)
	first.Info("this one is skipped")

	stats := first.Stats()
	fmt.Printf("svc-a wrote %d records (%d bytes)\n", stats.TotalRecords, stats.BytesWritten)

	if data, err := os.ReadFile(logPath); err == nil {
		fmt.Printf("--- %s ---\n%s", logPath, data)
	}
}
