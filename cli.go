package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voicesep/astar"
	"voicesep/config"
	"voicesep/score"
	"voicesep/voice"
)

// RunOptions are the flags shared by the plain and verbose separation modes.
type RunOptions struct {
	ScorePath  string
	OutputPath string
	ConfigPath string
	DryRun     bool
	Verbose    bool
	DebugLog   bool
}

// RunCLI performs one separation pass, printing a cost-breakdown line per
// monitor invocation in verbose mode, then writes the result unless DryRun.
func RunCLI(opts RunOptions) error {
	if opts.DebugLog {
		if err := SetupDebugLog("voicesep-debug.log"); err != nil {
			return err
		}
	}

	in, err := score.Load(opts.ScorePath)
	if err != nil {
		return err
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.GetConfigPath()
	}
	ec, err := config.LoadConfig(cfgPath)
	if err != nil {
		debugf("failed to load config from %s, using defaults: %v", cfgPath, err)
		ec = config.DefaultConfig()
	}

	vcfg := voice.Config{
		MaxVoices:      ec.MaxVoices,
		PitchPenalty:   ec.PitchPenalty,
		GapPenalty:     ec.GapPenalty,
		ChordPenalty:   ec.ChordPenalty,
		OverlapPenalty: ec.OverlapPenalty,
		CrossPenalty:   ec.CrossPenalty,
		ChordSpread:    ec.ChordSpread,
		PitchLookback:  ec.PitchLookback,
		Seed:           ec.Seed,
	}

	interrupted := false
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			interrupted = true
			fmt.Fprintln(os.Stderr, "interrupt received, verbose output stopped; the separation runs to completion")
		}
	}()

	var monitor voice.Monitor
	if opts.Verbose {
		monitor = func(start, stop int, cost voice.CostVector, stage voice.Stage) {
			if interrupted {
				return
			}
			fmt.Printf("slice %d:%d stage=%d total=%.4f pitch=%.4f gap=%.4f chord=%.4f overlap=%.4f cross=%.4f\n",
				start, stop, stage, cost.Total, cost.Pitch, cost.Gap, cost.Chord, cost.Overlap, cost.Cross)
		}
	}

	result, err := voice.Separate(in.Onset, in.Offset, in.Pitch, vcfg, monitor)
	if err != nil && !errors.Is(err, voice.ErrMonitorFailed) {
		return fmt.Errorf("separation failed: %w", err)
	}
	if err != nil {
		debugf("monitor error (ignored, result is still valid): %v", err)
	}

	fmt.Printf("separated %d notes into %d voices\n", len(in.Onset), len(result.Voices))
	for v, indices := range result.Voices {
		fmt.Printf("  voice %d: %d notes\n", v, len(indices))
	}

	if opts.DryRun {
		return nil
	}

	out := opts.OutputPath
	if out == "" {
		out = opts.ScorePath + ".voicing.json"
	}
	return score.SaveVoicing(out, score.Voicing{Voices: result.Voices, Chord: result.Chord, Link: result.Link})
}

// RouteOptions are the flags for a single A* route query.
type RouteOptions struct {
	GraphPath string
	CostPath  string
	Start, End int
}

// RunRoute resolves a single start/end pair against a graph on disk.
func RunRoute(opts RouteOptions) error {
	g, err := astar.LoadGraphTOML(opts.GraphPath)
	if err != nil {
		return err
	}

	costMap := make([]int, g.NodeCount())
	if opts.CostPath != "" {
		costMap, err = loadCostMap(opts.CostPath, g.NodeCount())
		if err != nil {
			return err
		}
	}

	path, err := astar.Route(g, costMap, opts.Start, opts.End)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		fmt.Println("no path found")
		return nil
	}
	fmt.Printf("path (%d nodes): %v\n", len(path), path)
	return nil
}

func loadCostMap(path string, n int) ([]int, error) {
	costMap := make([]int, n)
	if path == "" {
		return costMap, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cost map %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &costMap); err != nil {
		return nil, fmt.Errorf("failed to parse cost map %s: %w", path, err)
	}
	if len(costMap) != n {
		return nil, fmt.Errorf("cost map %s has %d entries, graph has %d nodes", path, len(costMap), n)
	}
	return costMap, nil
}

// RouteBatchOptions are the flags for a batch of A* queries resolved
// concurrently against a single graph via the pool package.
type RouteBatchOptions struct {
	GraphPath   string
	CostPath    string
	QueriesPath string
}

type routeQueryFile struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// RunRouteBatch resolves many start/end pairs against a single graph,
// printing one line per query in submission order.
func RunRouteBatch(opts RouteBatchOptions) error {
	g, err := astar.LoadGraphTOML(opts.GraphPath)
	if err != nil {
		return err
	}

	costMap, err := loadCostMap(opts.CostPath, g.NodeCount())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.QueriesPath)
	if err != nil {
		return fmt.Errorf("failed to read queries %s: %w", opts.QueriesPath, err)
	}
	var raw []routeQueryFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse queries %s: %w", opts.QueriesPath, err)
	}

	queries := make([]astar.RouteQuery, len(raw))
	for i, q := range raw {
		queries[i] = astar.RouteQuery{Start: q.Start, End: q.End}
	}

	results := astar.RouteBatch(g, costMap, queries)
	for i, r := range results {
		if r.Err != nil {
			fmt.Printf("query %d (%d->%d): error: %v\n", i, queries[i].Start, queries[i].End, r.Err)
			continue
		}
		fmt.Printf("query %d (%d->%d): path (%d nodes): %v\n", i, queries[i].Start, queries[i].End, len(r.Path), r.Path)
	}
	return nil
}
