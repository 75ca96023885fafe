package tui

// Options contains configuration for running the TUI.
type Options struct {
	ScorePath  string // path to the input score file
	OutputPath string // path to write the result (defaults to ScorePath-derived name)
	DryRun     bool   // if true, don't write the result to disk
	DebugLog   bool   // enable debug logging to file
}

// Dependencies holds every external dependency the TUI needs, injected so
// the model can be driven in tests without touching disk or real search
// state.
type Dependencies struct {
	ConfigProvider ConfigProvider
	Runner         SeparationRunner
	ScoreLoader    ScoreLoader
	ScoreWriter    ScoreWriter
	Logger         Logger
	ConfigPath     string
}
