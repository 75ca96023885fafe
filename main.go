// Package main is the voicesep command-line entry point: plain, verbose,
// visual (TUI), and watch modes over the voice and astar packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"voicesep/config"
	"voicesep/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	args := os.Args[1:]
	if len(args) < 1 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "separate":
		return runSeparate(args[1:])
	case "route":
		return runRoute(args[1:])
	case "route-batch":
		return runRouteBatch(args[1:])
	case "config":
		return runConfigCmd(args[1:])
	case "-h", "--help", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("Usage: voicesep <command> [flags]")
	fmt.Println("\nCommands:")
	fmt.Println("  separate      assign notes in a score to voices")
	fmt.Println("  route         resolve a single A* route over a graph")
	fmt.Println("  route-batch   resolve many A* routes concurrently")
	fmt.Println("  config        init or show the engine config file")
}

func runSeparate(args []string) int {
	fs := flag.NewFlagSet("separate", flag.ExitOnError)
	in := fs.String("in", "", "input score JSON file (required)")
	out := fs.String("out", "", "output voicing JSON file (default: <in>.voicing.json)")
	cfgPath := fs.String("config", "", "engine config TOML file (default: ./voicesep.toml or ~/.config/voicesep/config.toml)")
	visual := fs.Bool("visual", false, "run in visual/interactive mode with live parameter tuning")
	verbose := fs.Bool("verbose", false, "print a cost breakdown line for every cost evaluation")
	watch := fs.Bool("watch", false, "re-run whenever the input score file changes")
	debugFlag := fs.Bool("debug", false, "enable debug logging to voicesep-debug.log")
	dryRun := fs.Bool("dry-run", false, "preview separation without writing output")
	cpuprofile := fs.String("cpuprofile", "", "write cpu profile to file")
	memprofile := fs.String("memprofile", "", "write memory profile to file")
	fs.Parse(args)

	if *in == "" {
		fmt.Println("Usage: voicesep separate -in score.json [flags]")
		fs.PrintDefaults()
		return 1
	}

	if *cpuprofile != "" {
		stop := setupCPUProfile(*cpuprofile)
		defer stop()
	}
	if *memprofile != "" {
		defer writeMemoryProfile(*memprofile)
	}

	if *watch {
		return runWatch(watchOptions{
			ScorePath:  *in,
			OutputPath: *out,
			ConfigPath: *cfgPath,
			Visual:     *visual,
			Verbose:    *verbose,
			DebugLog:   *debugFlag,
			DryRun:     *dryRun,
		})
	}

	if *visual {
		if *debugFlag {
			if err := SetupDebugLog("voicesep-debug.log"); err != nil {
				log.Printf("failed to set up debug log: %v", err)
				return 1
			}
		}
		return runVisual(*in, *out, *cfgPath, *dryRun)
	}

	if err := RunCLI(RunOptions{
		ScorePath:  *in,
		OutputPath: *out,
		ConfigPath: *cfgPath,
		DryRun:     *dryRun,
		Verbose:    *verbose,
		DebugLog:   *debugFlag,
	}); err != nil {
		log.Printf("separation failed: %v", err)
		return 1
	}
	return 0
}

func runVisual(scorePath, outPath, cfgPath string, dryRun bool) int {
	path := cfgPath
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if outPath == "" {
		outPath = scorePath + ".voicing.json"
	}

	deps := tui.Dependencies{
		ConfigProvider: config.NewSharedConfig(cfg),
		Runner:         engineRunner{},
		ScoreLoader:    scoreLoader{},
		ScoreWriter:    scoreWriter{},
		Logger:         nil,
		ConfigPath:     path,
	}
	opts := tui.Options{
		ScorePath:  scorePath,
		OutputPath: outPath,
		DryRun:     dryRun,
	}
	if err := tui.Run(deps, opts); err != nil {
		log.Printf("tui error: %v", err)
		return 1
	}
	return 0
}

func runRoute(args []string) int {
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	graph := fs.String("graph", "", "graph TOML file (required)")
	costs := fs.String("costs", "", "optional per-node cost map JSON file")
	start := fs.Int("start", 0, "start node index")
	end := fs.Int("end", 0, "end node index")
	fs.Parse(args)

	if *graph == "" {
		fmt.Println("Usage: voicesep route -graph graph.toml -start N -end M [flags]")
		fs.PrintDefaults()
		return 1
	}

	if err := RunRoute(RouteOptions{GraphPath: *graph, CostPath: *costs, Start: *start, End: *end}); err != nil {
		log.Printf("route failed: %v", err)
		return 1
	}
	return 0
}

func runRouteBatch(args []string) int {
	fs := flag.NewFlagSet("route-batch", flag.ExitOnError)
	graph := fs.String("graph", "", "graph TOML file (required)")
	costs := fs.String("costs", "", "optional per-node cost map JSON file")
	queries := fs.String("queries", "", "JSON file with a list of {start,end} queries (required)")
	fs.Parse(args)

	if *graph == "" || *queries == "" {
		fmt.Println("Usage: voicesep route-batch -graph graph.toml -queries queries.json [flags]")
		fs.PrintDefaults()
		return 1
	}

	if err := RunRouteBatch(RouteBatchOptions{GraphPath: *graph, CostPath: *costs, QueriesPath: *queries}); err != nil {
		log.Printf("route-batch failed: %v", err)
		return 1
	}
	return 0
}

func runConfigCmd(args []string) int {
	if len(args) < 1 {
		fmt.Println("Usage: voicesep config <init|show> [-path file]")
		return 1
	}

	fs := flag.NewFlagSet("config", flag.ExitOnError)
	path := fs.String("path", "", "config file path (default: ./voicesep.toml or ~/.config/voicesep/config.toml)")
	fs.Parse(args[1:])

	cfgPath := *path
	if cfgPath == "" {
		cfgPath = config.GetConfigPath()
	}

	switch args[0] {
	case "init":
		if err := config.SaveConfig(cfgPath, config.DefaultConfig()); err != nil {
			log.Printf("failed to write config: %v", err)
			return 1
		}
		fmt.Printf("wrote default config to %s\n", cfgPath)
		return 0
	case "show":
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Printf("failed to load config: %v", err)
			return 1
		}
		fmt.Printf("%+v\n", cfg)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand %q\n", args[0])
		return 1
	}
}

// setupCPUProfile starts CPU profiling, returns a cleanup function.
func setupCPUProfile(filename string) func() {
	f, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		log.Fatalf("could not start CPU profile: %v", err)
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("warning: failed to close CPU profile: %v", err)
		}
	}
}

// writeMemoryProfile writes a heap profile to file.
func writeMemoryProfile(filename string) {
	f, err := os.Create(filename)
	if err != nil {
		log.Printf("could not create memory profile: %v", err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("warning: failed to close memory profile: %v", err)
		}
	}()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Printf("could not write memory profile: %v", err)
	}
}
