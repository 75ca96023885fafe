package voice

import "math"

// applyLinking commits a slice's final voice assignment into the persistent
// per-voice state (link watermark, offset watermark) that the next slice
// will read as its starting links/offsets.
func applyLinking(d *descriptor, s *sliceState) {
	for i := s.start; i < s.stop; i++ {
		v := d.voiceOf[i]
		d.link[i] = s.links[v]
		s.links[v] = i
	}
	for i := s.start; i < s.stop; i++ {
		v := d.voiceOf[i]
		s.offsets[v] = math.Max(s.offsets[v], d.offset[i])
	}
}
