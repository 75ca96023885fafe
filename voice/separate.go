package voice

import "fmt"

// maxIterationBudget bounds n*MaxVoices*3 (the per-slice non-improvement
// budget) to guard against integer overflow on pathological inputs; it is
// not a meaningful physical resource limit, just an overflow fence.
const maxIterationBudget = 1 << 40

// Separate assigns every note to one of at most cfg.MaxVoices monophonic
// voices. onset, offset and pitch must be equal-length and nonempty; offset
// must exceed onset for every note. If monitor is non-nil it is called on
// every cost evaluation performed during the search; a panicking monitor is
// recovered, reported as a wrapped ErrMonitorFailed, and silenced for the
// rest of the run, without otherwise affecting the result.
func Separate(onset, offset []float64, pitch []int32, cfg Config, monitor Monitor) (Result, error) {
	n := len(onset)
	if n == 0 || len(offset) != n || len(pitch) != n {
		return Result{}, fmt.Errorf("%w: onset, offset and pitch must be equal-length and nonempty (got %d/%d/%d)",
			ErrInvalidInput, n, len(offset), len(pitch))
	}
	if cfg.MaxVoices < 1 {
		return Result{}, fmt.Errorf("%w: max_voices must be >= 1, got %d", ErrInvalidInput, cfg.MaxVoices)
	}
	for i := range onset {
		if offset[i] <= onset[i] {
			return Result{}, fmt.Errorf("%w: note %d has non-positive duration (onset=%v offset=%v)",
				ErrInvalidInput, i, onset[i], offset[i])
		}
		if i > 0 && onset[i] < onset[i-1] {
			return Result{}, fmt.Errorf("%w: onset must be non-decreasing, note %d (%v) precedes note %d (%v)",
				ErrInvalidInput, i, onset[i], i-1, onset[i-1])
		}
	}
	if int64(n)*int64(cfg.MaxVoices)*3 > maxIterationBudget {
		return Result{}, fmt.Errorf("%w: input too large for the search budget (notes=%d max_voices=%d)",
			ErrResourceExhausted, n, cfg.MaxVoices)
	}

	d := newDescriptor(onset, offset, pitch, cfg, monitor)

	s := &sliceState{
		links:   make([]int, cfg.MaxVoices),
		offsets: make([]float64, cfg.MaxVoices),
		cands:   make([]int, cfg.MaxVoices),
	}
	for v := range s.links {
		s.links[v] = -1
		s.offsets[v] = onset[0]
	}

	sg := &segmenter{d: d}
	chord := 0
	for {
		start, stop, ok := sg.next()
		if !ok {
			break
		}
		s.start, s.stop = start, stop

		labelChords(d, start, stop, cfg.ChordSpread, &chord)
		stochasticLocalSearch(d, s)
		applyLinking(d, s)
	}

	voices := make([][]int, cfg.MaxVoices)
	for i := 0; i < n; i++ {
		v := d.voiceOf[i]
		voices[v] = append(voices[v], i)
	}

	result := Result{Voices: voices, Chord: d.chord, Link: d.link}
	if d.monitorErr != nil {
		return result, d.monitorErr
	}
	return result, nil
}
