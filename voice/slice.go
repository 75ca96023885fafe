package voice

// segmenter walks the note sequence and yields maximal runs of mutually
// overlapping notes. A slice [start, stop) continues absorbing the next note
// only while every note already in the slice overlaps it.
type segmenter struct {
	d   *descriptor
	pos int
}

// next returns the next slice, or ok == false once every note has been
// consumed.
func (sg *segmenter) next() (start, stop int, ok bool) {
	n := len(sg.d.onset)
	start = sg.pos
	stop = start
	for stop < n {
		extends := true
		for i := start; i < stop; i++ {
			if !overlaps(sg.d, i, stop) {
				extends = false
				break
			}
		}
		if !extends {
			break
		}
		stop++
	}
	sg.pos = stop
	return start, stop, start < stop
}

// labelChords assigns chord indices over [start, stop): notes whose onset is
// within chordSpread of the running onset watermark share a chord; a wider
// gap starts a new one. chord is threaded across slices via *next.
func labelChords(d *descriptor, start, stop int, chordSpread float64, next *int) {
	if start >= stop {
		return
	}
	onsetPrev := d.onset[start]
	for i := start; i < stop; i++ {
		if d.onset[i]-onsetPrev > chordSpread {
			*next++
			onsetPrev = d.onset[i]
		}
		d.chord[i] = *next
	}
	*next++
}
