package config

// EngineConfig is the process-wide parameter set a run is evaluated
// against. Field names mirror spec.md's Budgets vocabulary directly so the
// YAML/JSON wire form stays self-documenting.
type EngineConfig struct {
	AdvSpeedFtPerS int64 `yaml:"adv_speed_ft_per_s" json:"adv_speed_ft_per_s"`

	MaxTimeS         int64 `yaml:"max_time_s" json:"max_time_s"`
	MaxConsumablesLb int64 `yaml:"max_consumables_lb" json:"max_consumables_lb"`
	MaxWeightLb      int64 `yaml:"max_weight_lb" json:"max_weight_lb"`

	AscendFatigueSPerFt  float64 `yaml:"ascend_fatigue_s_per_ft" json:"ascend_fatigue_s_per_ft"`
	DescendFatigueSPerFt float64 `yaml:"descend_fatigue_s_per_ft" json:"descend_fatigue_s_per_ft"`

	// CutoffFastest and CutoffLightest bound the Segment Reducer's
	// per-leg output, 0 meaning unlimited.
	CutoffFastest  int `yaml:"cutoff_fastest" json:"cutoff_fastest"`
	CutoffLightest int `yaml:"cutoff_lightest" json:"cutoff_lightest"`

	// ReservedProcessors is subtracted from runtime.NumCPU() to size the
	// Scheduler's worker pool; at least one worker always runs.
	ReservedProcessors int `yaml:"reserved_processors" json:"reserved_processors"`
}

// defaultEngineConfig mirrors the zero-cost, single-worker-minimum posture
// a run would have if no options were applied.
func defaultEngineConfig() EngineConfig {
	return EngineConfig{
		AdvSpeedFtPerS:       1,
		MaxTimeS:             0,
		MaxConsumablesLb:     0,
		MaxWeightLb:          0,
		AscendFatigueSPerFt:  0,
		DescendFatigueSPerFt: 0,
		CutoffFastest:        0,
		CutoffLightest:       0,
		ReservedProcessors:   0,
	}
}
