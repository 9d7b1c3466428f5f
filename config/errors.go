package config

import "errors"

// Sentinel errors for config construction and loading.
var (
	// ErrNonPositiveSpeed indicates AdvSpeedFtPerS was zero or negative;
	// travel time divides by this value.
	ErrNonPositiveSpeed = errors.New("config: adv_speed_ft_per_s must be positive")

	// ErrNegativeBudget indicates one of MaxTimeS, MaxConsumablesLb, or
	// MaxWeightLb was negative.
	ErrNegativeBudget = errors.New("config: budget fields must be non-negative")

	// ErrNegativeCutoff indicates CutoffFastest or CutoffLightest was
	// negative; zero means unlimited, negative is invalid.
	ErrNegativeCutoff = errors.New("config: cutoff fields must be non-negative")
)
