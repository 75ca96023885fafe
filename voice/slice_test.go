package voice

import "testing"

func TestSegmenterSlices(t *testing.T) {
	// Notes 0,1,2 mutually overlap; note 3 starts after note 0's run ends
	// entirely and begins a new slice on its own.
	onset := []float64{0, 0.2, 0.4, 5}
	offset := []float64{1, 1, 1, 6}
	pitch := []int32{60, 62, 64, 60}
	d := newDescriptor(onset, offset, pitch, DefaultConfig(), nil)

	sg := &segmenter{d: d}

	start, stop, ok := sg.next()
	if !ok || start != 0 || stop != 3 {
		t.Fatalf("first slice = [%d,%d) ok=%v, want [0,3) true", start, stop, ok)
	}

	start, stop, ok = sg.next()
	if !ok || start != 3 || stop != 4 {
		t.Fatalf("second slice = [%d,%d) ok=%v, want [3,4) true", start, stop, ok)
	}

	_, _, ok = sg.next()
	if ok {
		t.Fatal("expected no further slices")
	}
}

func TestLabelChordsSplitsOnSpread(t *testing.T) {
	onset := []float64{0, 0, 0.3, 0.3}
	offset := []float64{1, 1, 1, 1}
	pitch := []int32{60, 64, 67, 71}
	d := newDescriptor(onset, offset, pitch, DefaultConfig(), nil)

	chord := 0
	labelChords(d, 0, 4, 0.1, &chord)

	if d.chord[0] != d.chord[1] {
		t.Errorf("notes 0 and 1 share an onset, expected same chord label, got %d and %d", d.chord[0], d.chord[1])
	}
	if d.chord[2] != d.chord[3] {
		t.Errorf("notes 2 and 3 share an onset, expected same chord label, got %d and %d", d.chord[2], d.chord[3])
	}
	if d.chord[1] == d.chord[2] {
		t.Errorf("notes separated by more than chord_spread should get different chord labels, both got %d", d.chord[1])
	}
	if chord != d.chord[3]+1 {
		t.Errorf("chord counter should advance past the last label: counter=%d last label=%d", chord, d.chord[3])
	}
}
