package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchOptions mirrors the separate subcommand's flags for a run that
// repeats every time the input score file changes on disk.
type watchOptions struct {
	ScorePath  string
	OutputPath string
	ConfigPath string
	Visual     bool
	Verbose    bool
	DebugLog   bool
	DryRun     bool
}

// runWatch re-runs a separation pass once immediately, then again every
// time ScorePath is written to, until interrupted.
func runWatch(opts watchOptions) int {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("failed to create file watcher: %v", err)
		return 1
	}
	defer watcher.Close()

	if err := watcher.Add(opts.ScorePath); err != nil {
		log.Printf("failed to watch %s: %v", opts.ScorePath, err)
		return 1
	}

	runOnce := func() {
		if err := RunCLI(RunOptions{
			ScorePath:  opts.ScorePath,
			OutputPath: opts.OutputPath,
			ConfigPath: opts.ConfigPath,
			DryRun:     opts.DryRun,
			Verbose:    opts.Verbose,
			DebugLog:   opts.DebugLog,
		}); err != nil {
			log.Printf("separation failed: %v", err)
		}
	}

	fmt.Printf("watching %s for changes, ctrl-c to stop\n", opts.ScorePath)
	runOnce()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return 0
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				// debounce: give an atomic rewrite time to finish landing
				time.Sleep(100 * time.Millisecond)
				fmt.Printf("%s changed, re-running\n", opts.ScorePath)
				runOnce()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return 0
			}
			debugf("watcher error: %v", err)
		}
	}
}
