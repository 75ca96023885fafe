package main

import (
	"context"

	"voicesep/score"
	"voicesep/tui"
	"voicesep/voice"
)

// engineRunner adapts voice.Separate to tui.SeparationRunner: every monitor
// callback becomes a best-effort, non-blocking send on the updates channel,
// exactly like the generation-progress channel the teacher's GA reports on.
type engineRunner struct{}

func (engineRunner) Run(ctx context.Context, s score.Score, cfg tui.ConfigProvider, updates chan<- tui.Update, epoch int) {
	defer close(updates)

	ec := cfg.Get()
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

	monitor := func(start, stop int, cost voice.CostVector, stage voice.Stage) {
		if ctx.Err() != nil {
			return
		}
		update := tui.Update{
			Start: start,
			Stop:  stop,
			Stage: int(stage),
			Epoch: epoch,
			Cost: tui.CostBreakdown{
				Total:   cost.Total,
				Pitch:   cost.Pitch,
				Gap:     cost.Gap,
				Chord:   cost.Chord,
				Overlap: cost.Overlap,
				Cross:   cost.Cross,
			},
		}
		select {
		case updates <- update:
		default:
		}
	}

	result, err := voice.Separate(s.Onset, s.Offset, s.Pitch, vcfg, monitor)
	if err != nil {
		debugf("separation epoch %d finished with error: %v", epoch, err)
	}

	updates <- tui.Update{
		Epoch:  epoch,
		Done:   true,
		Result: score.Voicing{Voices: result.Voices, Chord: result.Chord, Link: result.Link},
	}
}

// scoreWriter adapts score.SaveVoicing to tui.ScoreWriter.
type scoreWriter struct{}

func (scoreWriter) Write(path string, v score.Voicing) error {
	return score.SaveVoicing(path, v)
}

// scoreLoader adapts score.Load to tui.ScoreLoader.
type scoreLoader struct{}

func (scoreLoader) Load(path string) (score.Score, error) {
	return score.Load(path)
}
