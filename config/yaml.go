package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads an EngineConfig from a YAML file at path, applying
// defaultEngineConfig first so an omitted field keeps its zero-cost
// default rather than Go's bare zero value.
func LoadYAML(path string) (EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EngineConfig{}, fmt.Errorf("config: LoadYAML(%s): %w", path, err)
	}

	cfg := defaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: LoadYAML(%s): %w", path, err)
	}
	if cfg.AdvSpeedFtPerS <= 0 {
		return EngineConfig{}, fmt.Errorf("config: LoadYAML(%s): %w", path, ErrNonPositiveSpeed)
	}
	if cfg.MaxTimeS < 0 || cfg.MaxConsumablesLb < 0 || cfg.MaxWeightLb < 0 {
		return EngineConfig{}, fmt.Errorf("config: LoadYAML(%s): %w", path, ErrNegativeBudget)
	}
	if cfg.CutoffFastest < 0 || cfg.CutoffLightest < 0 {
		return EngineConfig{}, fmt.Errorf("config: LoadYAML(%s): %w", path, ErrNegativeCutoff)
	}

	return cfg, nil
}
