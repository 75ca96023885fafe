package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"voicesep/config"
	"voicesep/score"
)

type fakeRunner struct{ started int }

func (r *fakeRunner) Run(ctx context.Context, s score.Score, cfg ConfigProvider, updates chan<- Update, epoch int) {
	r.started++
	defer close(updates)
	updates <- Update{Start: 0, Stop: len(s.Onset), Epoch: epoch, Cost: CostBreakdown{Total: 0.5}}
	updates <- Update{Epoch: epoch, Done: true, Result: score.Voicing{Voices: [][]int{{0}, {1}}}}
}

type fakeLoader struct{ s score.Score }

func (l fakeLoader) Load(path string) (score.Score, error) { return l.s, nil }

type fakeWriter struct{ wrote score.Voicing }

func (w *fakeWriter) Write(path string, v score.Voicing) error {
	w.wrote = v
	return nil
}

func newTestModel() (*model, *fakeWriter) {
	cfg := config.DefaultConfig()
	writer := &fakeWriter{}
	m := &model{
		deps: Dependencies{
			ConfigProvider: config.NewSharedConfig(cfg),
			Runner:         &fakeRunner{},
			ScoreLoader:    fakeLoader{s: score.Score{Onset: []float64{0, 1}, Offset: []float64{1, 2}, Pitch: []int32{60, 62}}},
			ScoreWriter:    writer,
		},
		opts:   Options{},
		shared: config.NewSharedConfig(cfg),
		local:  cfg,
		in:     score.Score{Onset: []float64{0, 1}, Offset: []float64{1, 2}, Pitch: []int32{60, 62}},
	}
	m.params = NewParamManager(paramsFor(&m.local))
	return m, writer
}

func drainUpdates(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		var next tea.Cmd
		_, next = m.Update(msg)
		cmd = next
	}
}

func TestModelRunCompletesAndWritesResult(t *testing.T) {
	m, writer := newTestModel()
	cmd := m.startRun()
	drainUpdates(t, m, cmd)

	if !m.done {
		t.Fatal("expected the model to reach done state")
	}
	if len(writer.wrote.Voices) != 2 {
		t.Fatalf("expected the result to be written with 2 voices, got %d", len(writer.wrote.Voices))
	}
	if m.lastCost.Total != 0.5 {
		t.Fatalf("expected last reported cost 0.5, got %v", m.lastCost.Total)
	}
}

func TestModelParamNavigationKeys(t *testing.T) {
	m, _ := newTestModel()

	m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	if m.params.Selected() != 1 {
		t.Fatalf("expected selection 1 after down, got %d", m.params.Selected())
	}

	before := *m.params.GetSelected().Value
	m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	after := *m.params.GetSelected().Value
	if after <= before {
		t.Fatalf("expected right arrow to increase selected parameter: before=%v after=%v", before, after)
	}
}
