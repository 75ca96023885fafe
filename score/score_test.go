package score

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.json")
	s := Score{
		Onset:  []float64{0, 2},
		Offset: []float64{1, 3},
		Pitch:  []int32{69, 72},
	}

	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Onset) != len(s.Onset) {
		t.Fatalf("onset length mismatch: got %d, want %d", len(loaded.Onset), len(s.Onset))
	}
	for i := range s.Onset {
		if loaded.Onset[i] != s.Onset[i] || loaded.Offset[i] != s.Offset[i] || loaded.Pitch[i] != s.Pitch[i] {
			t.Errorf("note %d mismatch: got (%v,%v,%v), want (%v,%v,%v)",
				i, loaded.Onset[i], loaded.Offset[i], loaded.Pitch[i], s.Onset[i], s.Offset[i], s.Pitch[i])
		}
	}
}

func TestLoadRejectsMismatchedLengths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := Save(path, Score{Onset: []float64{0, 1}, Offset: []float64{1}, Pitch: []int32{60, 62}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for mismatched array lengths")
	}
}
