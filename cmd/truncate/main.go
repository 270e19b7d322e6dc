package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tidelock/plog"
)

// plog-truncate shrinks a shared log file in place, holding the same lock
// file the writers use so no record is torn.
func main() {
	var (
		file    = flag.String("file", "./plog.log", "log file to truncate")
		lock    = flag.String("lock", "", "lock file guarding the log (empty = no lock)")
		trigger = flag.Int64("trigger", 10_000_000, "file size in bytes that arms truncation")
		retain  = flag.Int64("retain", 1_000_000, "bytes from the tail to keep")
		strict  = flag.Bool("strict", false, "fail on truncation errors instead of swallowing them")
	)
	flag.Parse()

	var before int64
	if fi, err := os.Stat(*file); err == nil {
		before = fi.Size()
	}

	logger, err := plog.NewBuilder().
		Name("plog-truncate").
		FilePath(*file).
		LockPath(*lock).
		Strict(*strict).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "plog-truncate: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if err := logger.Truncate(*trigger, *retain); err != nil {
		fmt.Fprintf(os.Stderr, "plog-truncate: %v\n", err)
		os.Exit(1)
	}

	var after int64
	if fi, err := os.Stat(*file); err == nil {
		after = fi.Size()
	}

	stats := logger.Stats()
	fmt.Printf("%s: %d -> %d bytes (discarded %d)\n", *file, before, after, stats.TruncatedBytes)
}
