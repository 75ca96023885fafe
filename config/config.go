// Package config handles loading and saving the voice separation engine's
// tunable parameters as TOML, with a documented, stable default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// EngineConfig holds every tunable parameter of a separation run. Field
// names mirror voice.Config; this is the on-disk, toml-tagged twin of that
// in-memory struct.
type EngineConfig struct {
	MaxVoices      int     `toml:"max_voices"`
	PitchPenalty   float64 `toml:"pitch_penalty"`
	GapPenalty     float64 `toml:"gap_penalty"`
	ChordPenalty   float64 `toml:"chord_penalty"`
	OverlapPenalty float64 `toml:"overlap_penalty"`
	CrossPenalty   float64 `toml:"cross_penalty"`
	ChordSpread    float64 `toml:"chord_spread"`
	PitchLookback  int     `toml:"pitch_lookback"`
	Seed           uint32  `toml:"seed"`
}

// DefaultConfig returns the same defaults as the original voice_separation
// Python binding.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		MaxVoices:      6,
		PitchPenalty:   1,
		GapPenalty:     0.5,
		ChordPenalty:   1,
		OverlapPenalty: 1,
		CrossPenalty:   1,
		ChordSpread:    0,
		PitchLookback:  2,
		Seed:           0,
	}
}

// GetConfigPath returns the default config file path: the current
// directory first, falling back to ~/.config/voicesep/config.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./voicesep.toml"); err == nil {
		return "./voicesep.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./voicesep.toml"
	}
	return filepath.Join(home, ".config", "voicesep", "config.toml")
}

// LoadConfig loads configuration from a TOML file. A missing file is not an
// error; it yields the default configuration.
func LoadConfig(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes configuration to a TOML file, creating its parent
// directory if necessary.
func SaveConfig(path string, cfg EngineConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Printf("warning: failed to close config file: %v\n", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// SharedConfig is a mutex-guarded EngineConfig, read by a separation run
// when it starts and written by the TUI each time it starts a run with the
// tuning panel's current values.
type SharedConfig struct {
	mu  sync.RWMutex
	cfg EngineConfig
}

// NewSharedConfig wraps an initial EngineConfig for concurrent access.
func NewSharedConfig(cfg EngineConfig) *SharedConfig {
	return &SharedConfig{cfg: cfg}
}

// Get returns a copy of the current configuration.
func (s *SharedConfig) Get() EngineConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the current configuration.
func (s *SharedConfig) Update(cfg EngineConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}
