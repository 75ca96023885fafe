// Package main is the voicesep command-line entry point: plain, verbose,
// visual (TUI), and watch modes over the voice and astar packages.
package main

import (
	"fmt"
	"log"
	"os"
)

// debugLog writes to file for debugging when -debug is passed.
var debugLog *log.Logger

// SetupDebugLog initializes debug logging to the specified file.
func SetupDebugLog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create debug log file: %w", err)
	}
	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)

	fileInfo, _ := os.Stdout.Stat()
	if (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		fmt.Printf("debug logging enabled: %s\n", filename)
	}
	return nil
}

// debugf logs a debug message to file if debug logging is enabled.
func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}
