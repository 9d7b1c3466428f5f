package config

import "fmt"

// Option configures an EngineConfig under construction.
type Option func(*EngineConfig) error

// WithAdvSpeed sets the adversary's travel speed in feet per second. Must
// be positive since travel time divides by it.
func WithAdvSpeed(ftPerS int64) Option {
	return func(c *EngineConfig) error {
		if ftPerS <= 0 {
			return fmt.Errorf("config: WithAdvSpeed(%d): %w", ftPerS, ErrNonPositiveSpeed)
		}
		c.AdvSpeedFtPerS = ftPerS

		return nil
	}
}

// WithBudgets sets the three cumulative resource ceilings.
func WithBudgets(maxTimeS, maxConsumablesLb, maxWeightLb int64) Option {
	return func(c *EngineConfig) error {
		if maxTimeS < 0 || maxConsumablesLb < 0 || maxWeightLb < 0 {
			return ErrNegativeBudget
		}
		c.MaxTimeS = maxTimeS
		c.MaxConsumablesLb = maxConsumablesLb
		c.MaxWeightLb = maxWeightLb

		return nil
	}
}

// WithFatigueCoefficients sets the ascend and descend per-foot time
// surcharges applied to vertical rise.
func WithFatigueCoefficients(ascendSPerFt, descendSPerFt float64) Option {
	return func(c *EngineConfig) error {
		c.AscendFatigueSPerFt = ascendSPerFt
		c.DescendFatigueSPerFt = descendSPerFt

		return nil
	}
}

// WithCutoffs sets the Segment Reducer's per-leg K-fastest/K-lightest
// limits. 0 means unlimited.
func WithCutoffs(fastest, lightest int) Option {
	return func(c *EngineConfig) error {
		if fastest < 0 || lightest < 0 {
			return ErrNegativeCutoff
		}
		c.CutoffFastest = fastest
		c.CutoffLightest = lightest

		return nil
	}
}

// WithReservedProcessors sets how many CPUs the Scheduler leaves idle when
// sizing its worker pool.
func WithReservedProcessors(reserved int) Option {
	return func(c *EngineConfig) error {
		c.ReservedProcessors = reserved

		return nil
	}
}

// NewEngineConfig builds an EngineConfig from defaults plus the given
// options, applied in order.
func NewEngineConfig(opts ...Option) (EngineConfig, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return EngineConfig{}, err
		}
	}

	return cfg, nil
}
