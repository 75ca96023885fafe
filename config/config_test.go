package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxVoices != 6 {
		t.Errorf("expected MaxVoices 6, got %d", cfg.MaxVoices)
	}
	if cfg.GapPenalty != 0.5 {
		t.Errorf("expected GapPenalty 0.5, got %.2f", cfg.GapPenalty)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "voicesep-*.toml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	tmpfile.Close()

	cfg := DefaultConfig()
	cfg.Seed = 42
	if err := SaveConfig(tmpfile.Name(), cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(tmpfile.Name())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded != cfg {
		t.Errorf("round-tripped config mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Errorf("expected no error for a non-existent file, got: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("expected defaults for a missing file, got %+v", cfg)
	}
}

func TestSharedConfigGetUpdate(t *testing.T) {
	shared := NewSharedConfig(DefaultConfig())

	got := shared.Get()
	if got.MaxVoices != 6 {
		t.Fatalf("expected initial MaxVoices 6, got %d", got.MaxVoices)
	}

	updated := got
	updated.MaxVoices = 3
	shared.Update(updated)

	if got := shared.Get().MaxVoices; got != 3 {
		t.Errorf("expected MaxVoices 3 after update, got %d", got)
	}
}
