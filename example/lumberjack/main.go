// FILE: example/lumberjack/main.go
package main

import (
	"fmt"

	"github.com/tidelock/plog"
	"github.com/tidelock/plog/compat"
)

// Rolling files through lumberjack instead of in-place truncation: the sink
// is injected, so the logger's lock and formatting stay the same while the
// retention strategy changes.
func main() {
	sink := compat.NewLumberjackSink(
		"/tmp/rolling/app.log",
		10,   // MB before rotation
		5,    // rotated files to keep
		28,   // days before a backup expires
		true, // gzip rotated files
	)

	logger, err := plog.NewBuilder().
		Name("rolling-demo").
		FilePath("/tmp/rolling/app.log").
		Sink(sink).
		LevelString("debug").
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Close()

	for i := 0; i < 100; i++ {
		logger.Infof("record %d through the rolling sink", i)
	}

	// Force a rotation regardless of size
	if err := sink.Rotate(); err != nil {
		fmt.Printf("rotate error: %v\n", err)
	}

	logger.Info("first record of the fresh file")
	fmt.Println("Check /tmp/rolling/ for the rotated files.")
}
