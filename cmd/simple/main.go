package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidelock/plog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[plog]
  level = -4 # Debug
  name = "simple"
  file_path = "./simple.log"
  lock_path = "./simple.lock"
  timestamp_format = "2006-01-02T15:04:05.000Z07:00"
  truncate_trigger = 1000000
  truncate_retain = 100000
  enable_stdout = true
  internal_errors_to_stderr = true
  # Other settings use registered defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	// Create dummy config file
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults potentially
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	// --- Initialize Logger ---
	if err := plog.InitFromFile(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger initialized.")

	// --- Logging ---
	plog.Debug("This is a debug message.", "user_id", 123)
	plog.Info("Application starting...")
	plog.Warn("Potential issue detected.", "threshold", 0.95)
	plog.Error("An error occurred!", "code", 500)
	plog.Infof("Formatted: %d of %d items processed", 7, 10)

	// Wrapped errors render as labeled cause blocks under the record
	base := errors.New("connection refused")
	wrapped := plog.Wrap(plog.Wrap(base, "dial upstream"), "fetch config")
	plog.ErrorErr(wrapped, "startup degraded")

	// Named children share the file and lock with the root
	dbLog := plog.Named("db")
	dbLog.Info("Child logger shares the sink and lock")

	stats := plog.GetStats()
	fmt.Printf("Records written: %d, bytes: %d\n", stats.TotalRecords, stats.BytesWritten)

	// --- Shutdown Logger ---
	fmt.Println("Shutting down logger...")
	if err := plog.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger close error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check './simple.log' and the config '%s'.\n", configFile)
}
