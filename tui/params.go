package tui

import "voicesep/config"

// Parameter is one tunable field of the engine configuration, exposed to the
// live panel as a pointer into the config struct being edited.
type Parameter struct {
	Name     string
	Value    *float64 // pointer to a float64 config field
	IntValue *int     // pointer to an int config field, when IsInt
	Min      float64
	Max      float64
	Step     float64
	IsInt    bool
}

// ParamManager tracks which Parameter is selected and applies bounded
// increments/decrements to it.
type ParamManager struct {
	params        []Parameter
	selectedIndex int
}

// NewParamManager wraps a set of parameters for interactive tuning.
func NewParamManager(params []Parameter) *ParamManager {
	return &ParamManager{params: params}
}

func (pm *ParamManager) Selected() int { return pm.selectedIndex }

func (pm *ParamManager) SetSelected(index int) {
	if index >= 0 && index < len(pm.params) {
		pm.selectedIndex = index
	}
}

func (pm *ParamManager) SelectNext() {
	if pm.selectedIndex < len(pm.params)-1 {
		pm.selectedIndex++
	}
}

func (pm *ParamManager) SelectPrevious() {
	if pm.selectedIndex > 0 {
		pm.selectedIndex--
	}
}

// Increase bumps the selected parameter by its step, clamped to Max.
// Returns true if the value changed.
func (pm *ParamManager) Increase() bool {
	if pm.selectedIndex >= len(pm.params) {
		return false
	}
	p := &pm.params[pm.selectedIndex]
	if p.IsInt {
		newVal := *p.IntValue + int(p.Step)
		if float64(newVal) <= p.Max {
			*p.IntValue = newVal
			return true
		}
		return false
	}
	newVal := *p.Value + p.Step
	if newVal > p.Max {
		newVal = p.Max
	}
	if newVal > *p.Value {
		*p.Value = newVal
		return true
	}
	return false
}

// Decrease reduces the selected parameter by its step, clamped to Min.
// Returns true if the value changed.
func (pm *ParamManager) Decrease() bool {
	if pm.selectedIndex >= len(pm.params) {
		return false
	}
	p := &pm.params[pm.selectedIndex]
	if p.IsInt {
		newVal := *p.IntValue - int(p.Step)
		if float64(newVal) >= p.Min {
			*p.IntValue = newVal
			return true
		}
		return false
	}
	newVal := *p.Value - p.Step
	if newVal < p.Min {
		newVal = p.Min
	}
	if newVal < *p.Value {
		*p.Value = newVal
		return true
	}
	return false
}

// Get returns the parameter at index, or nil if out of range.
func (pm *ParamManager) Get(index int) *Parameter {
	if index >= 0 && index < len(pm.params) {
		return &pm.params[index]
	}
	return nil
}

func (pm *ParamManager) GetSelected() *Parameter { return pm.Get(pm.selectedIndex) }
func (pm *ParamManager) Len() int                { return len(pm.params) }
func (pm *ParamManager) All() []Parameter        { return pm.params }

// paramsFor builds the tuning panel's parameter list over cfg's penalty
// weights, chord spread, pitch lookback and max voices.
func paramsFor(cfg *config.EngineConfig) []Parameter {
	return []Parameter{
		{Name: "pitch_penalty", Value: &cfg.PitchPenalty, Min: 0, Max: 5, Step: 0.1},
		{Name: "gap_penalty", Value: &cfg.GapPenalty, Min: 0, Max: 5, Step: 0.1},
		{Name: "chord_penalty", Value: &cfg.ChordPenalty, Min: 0, Max: 5, Step: 0.1},
		{Name: "overlap_penalty", Value: &cfg.OverlapPenalty, Min: 0, Max: 5, Step: 0.1},
		{Name: "cross_penalty", Value: &cfg.CrossPenalty, Min: 0, Max: 5, Step: 0.1},
		{Name: "chord_spread", Value: &cfg.ChordSpread, Min: 0, Max: 2, Step: 0.05},
		{Name: "pitch_lookback", IntValue: &cfg.PitchLookback, Min: 0, Max: 8, Step: 1, IsInt: true},
		{Name: "max_voices", IntValue: &cfg.MaxVoices, Min: 1, Max: 16, Step: 1, IsInt: true},
	}
}
