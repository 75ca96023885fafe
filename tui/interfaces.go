// Package tui renders a live view of a voice separation run: the cost
// vector reported by the search's monitor callback, and a panel for tuning
// the engine's penalty weights between runs.
package tui

import (
	"context"

	"voicesep/config"
	"voicesep/score"
)

// ConfigProvider gives thread-safe access to the engine configuration the
// running (or next) separation uses.
type ConfigProvider interface {
	Get() config.EngineConfig
	Update(cfg config.EngineConfig)
}

// SeparationRunner runs one voice separation pass, reporting monitor
// callbacks as Updates on the channel and finishing with an Update whose
// Done field is set.
type SeparationRunner interface {
	Run(ctx context.Context, s score.Score, cfg ConfigProvider, updates chan<- Update, epoch int)
}

// ScoreLoader loads a score from disk.
type ScoreLoader interface {
	Load(path string) (score.Score, error)
}

// ScoreWriter saves a separation result to disk.
type ScoreWriter interface {
	Write(path string, v score.Voicing) error
}

// Logger provides debug logging capability.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Update is one reported cost evaluation from a running separation.
type Update struct {
	Start, Stop int
	Cost        CostBreakdown
	Stage       int
	Epoch       int
	Done        bool
	Result      score.Voicing
}

// CostBreakdown mirrors voice.CostVector without importing package voice,
// keeping the TUI decoupled from the search engine's internal types.
type CostBreakdown struct {
	Total, Pitch, Gap, Chord, Overlap, Cross float64
}
