package voice

// lcg is the deterministic pseudo-random generator the search relies on for
// reproducibility: given the same seed, a run produces the same assignment.
type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: seed}
}

func (r *lcg) next() uint32 {
	r.state = 1664525*r.state + 1013904223
	return r.state
}

// float64 returns a value in [0, 1).
func (r *lcg) float64() float64 {
	return float64(r.next()) / 4294967296.0
}

// intRange returns a value in [lo, hi); returns lo unchanged if lo == hi.
func (r *lcg) intRange(lo, hi int) int {
	if lo == hi {
		return lo
	}
	return lo + int(r.next()%uint32(hi-lo))
}

// stochasticLocalSearch assigns voices to every note in [s.start, s.stop) by
// alternating a greedy single-flip descent with random perturbation, keeping
// the best assignment seen until a run of non-improving iterations ends the
// search.
func stochasticLocalSearch(d *descriptor, s *sliceState) {
	n := s.stop - s.start
	best := make([]int, n)
	for i := 0; i < n; i++ {
		d.voiceOf[s.start+i] = 0
		best[i] = 0
	}

	bestCost := calculateTotalCost(d, s, StageInitial).Total
	maxIterations := n * d.cfg.MaxVoices * 3
	stall := 0

	for stall < maxIterations {
		if d.rng.float64() <= 0.8 {
			lowestCostNeighbor(d, s)
		} else {
			randomNeighbour(d, s)
		}

		newCost := calculateTotalCost(d, s, StagePerPerturbation).Total
		if newCost < bestCost {
			for i := 0; i < n; i++ {
				best[i] = d.voiceOf[s.start+i]
			}
			bestCost = newCost
			stall = 0
		} else {
			stall++
		}
	}

	for i := 0; i < n; i++ {
		d.voiceOf[s.start+i] = best[i]
	}
	if d.monitor != nil && !d.monitorDisabled {
		calculateTotalCost(d, s, StageFinal)
	}
}

// lowestCostNeighbor tries reassigning every note in the slice to every other
// voice, one note at a time, and applies only the single best move found
// (first-seen on ties).
func lowestCostNeighbor(d *descriptor, s *sliceState) {
	bestIndex := s.start
	bestVoice := d.voiceOf[s.start]
	bestCost := calculateTotalCost(d, s, StagePreFlip).Total

	for i := s.start; i < s.stop; i++ {
		original := d.voiceOf[i]
		for v := 0; v < d.cfg.MaxVoices; v++ {
			if v == original {
				continue
			}
			d.voiceOf[i] = v
			newCost := calculateTotalCost(d, s, StagePerFlip).Total
			if newCost < bestCost {
				bestIndex = i
				bestVoice = v
				bestCost = newCost
			}
		}
		d.voiceOf[i] = original
	}

	d.voiceOf[bestIndex] = bestVoice
}

// randomNeighbour reassigns one randomly chosen note to a randomly chosen
// voice other than its current one. With MaxVoices == 1 there is no other
// voice to move to, so it is a no-op -- the same degenerate case
// lowestCostNeighbor's inner loop already falls into naturally.
func randomNeighbour(d *descriptor, s *sliceState) {
	if d.cfg.MaxVoices <= 1 {
		return
	}
	index := d.rng.intRange(s.start, s.stop)
	voice := d.rng.intRange(0, d.cfg.MaxVoices-1)
	if voice >= d.voiceOf[index] {
		voice++
	}
	d.voiceOf[index] = voice
}
