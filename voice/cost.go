package voice

import (
	"math"
	"sort"
)

// combine saturates two penalties in [0,1] into one in [0,1]: monotone,
// commutative, and combine(a, 0) == a, combine(a, 1) == 1.
func combine(a, b float64) float64 {
	return a + (1-a)*b
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// sliceState carries the per-voice state that persists across slices
// (entering link watermark, entering offset watermark) alongside the scratch
// state rebuilt on every cost evaluation within one slice (cands).
type sliceState struct {
	start, stop int

	links   []int     // per-voice index of the last note assigned before this slice
	offsets []float64 // per-voice running max offset, watermark carried slice to slice
	cands   []int     // scratch: per-voice head index, rebuilt every evaluation
}

// calculateTotalCost rebuilds link[] and cands[] from the current tentative
// voice assignment over [s.start, s.stop), scores the five penalty terms,
// reports the result to the monitor, and returns the weighted terms together
// with their total.
func calculateTotalCost(d *descriptor, s *sliceState, stage Stage) CostVector {
	copy(s.cands, s.links)
	for i := s.start; i < s.stop; i++ {
		v := d.voiceOf[i]
		d.link[i] = s.cands[v]
		s.cands[v] = i
	}

	cv := CostVector{
		Pitch:   d.cfg.PitchPenalty * calculatePitchPenalty(d, s.start, s.stop, s.cands),
		Gap:     d.cfg.GapPenalty * calculateGapPenalty(d, s),
		Chord:   d.cfg.ChordPenalty * calculateChordPenalty(d, s.start, s.stop, s.cands),
		Overlap: d.cfg.OverlapPenalty * calculateOverlapPenalty(d, s),
		Cross:   d.cfg.CrossPenalty * calculateCrossPenalty(d, s),
	}
	cv.Total = cv.Pitch + cv.Gap + cv.Chord + cv.Overlap + cv.Cross

	d.notify(s.start, s.stop, cv, stage)
	return cv
}

func calculatePitchPenalty(d *descriptor, start, stop int, heads []int) float64 {
	pD := 0.0
	for v := 0; v < d.cfg.MaxVoices; v++ {
		i := heads[v]
		pvD := 0.0
		for start <= i {
			if j := previousChord(d, i); j >= 0 {
				p := chordPosition(d, j, float64(d.position[i]))
				k := 0
				for k < d.cfg.PitchLookback {
					j = previousChord(d, j)
					if j < 0 {
						break
					}
					k++
					p = 0.8*p + 0.2*chordPosition(d, j, float64(d.position[i]))
				}
				pvD = combine(pvD, math.Min(1.0, abs(float64(d.position[i])-p)/128.0))
			}
			i = d.link[i]
		}
		pD = combine(pD, pvD)
	}
	return pD
}

func calculateGapPenalty(d *descriptor, s *sliceState) float64 {
	gD := 0.0
	count := 0
	for v := 0; v < d.cfg.MaxVoices; v++ {
		i := s.cands[v]
		if i < s.start {
			continue
		}
		for s.start <= d.link[i] {
			i = d.link[i]
		}
		onset := d.onset[i]
		offMin := onset
		for w := 0; w < d.cfg.MaxVoices; w++ {
			offMin = math.Min(offMin, s.offsets[w])
		}
		if s.offsets[v] < onset {
			gD += clamp01((onset - s.offsets[v]) / (onset - offMin))
		}
		count++
	}
	if count == 0 {
		return 0
	}
	return gD / float64(count)
}

func calculateChordPenalty(d *descriptor, start, stop int, heads []int) float64 {
	cD := 0.0
	for v := 0; v < d.cfg.MaxVoices; v++ {
		i := heads[v]
		for start <= i {
			minOn := d.onset[minOnset(d, i)]
			maxOn := d.onset[maxOnset(d, i)]
			minDur := d.duration[minDuration(d, i)]
			maxDur := d.duration[maxDuration(d, i)]
			minPos := float64(d.position[minPosition(d, i)])
			maxPos := float64(d.position[maxPosition(d, i)])

			pDuration := 1.0 - minDur/maxDur
			pRange := math.Min(1.0, (maxPos-minPos)/24.0)
			pOn := (maxOn - minOn) / maxDur
			cD = combine(cD, combine(combine(pDuration, pRange), pOn))

			i = previousChord(d, i)
		}
	}
	return cD
}

func calculateOverlapPenalty(d *descriptor, s *sliceState) float64 {
	oD := 0.0
	for v := 0; v < d.cfg.MaxVoices; v++ {
		ovD := 0.0
		prev := s.links[v]
		for next := s.start; next < s.stop; next++ {
			if d.voiceOf[next] != v {
				continue
			}
			if prev < 0 {
				prev = next
				continue
			}
			if overlaps(d, prev, next) {
				ovD = combine(ovD, clamp01(1.0-(d.onset[next]-d.onset[prev])/d.duration[prev]))
			}
			if d.chord[prev] != d.chord[next] {
				prev = next
			}
		}
		oD = combine(oD, ovD)
	}
	return oD
}

type voicePosition struct {
	voice int
	pos   float64
}

func calculateCrossPenalty(d *descriptor, s *sliceState) float64 {
	var before []voicePosition
	for v := 0; v < d.cfg.MaxVoices; v++ {
		if s.links[v] >= 0 {
			count := 0
			sum := averagePosition(d, s.links[v], &count)
			before = append(before, voicePosition{v, sum / float64(count)})
		}
	}
	if len(before) == 0 {
		return 0
	}

	var after []voicePosition
	for v := 0; v < d.cfg.MaxVoices; v++ {
		if s.cands[v] >= 0 && s.links[v] >= 0 {
			count := 0
			sum := averagePosition(d, s.cands[v], &count)
			after = append(after, voicePosition{v, sum / float64(count)})
		}
	}

	sort.SliceStable(before, func(i, j int) bool { return before[i].pos < before[j].pos })
	sort.SliceStable(after, func(i, j int) bool { return after[i].pos < after[j].pos })

	for i := range before {
		if i >= len(after) || before[i].voice != after[i].voice {
			return 1
		}
	}
	return 0
}
