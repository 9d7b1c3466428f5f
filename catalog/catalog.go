package catalog

import (
	"fmt"
	"sort"
)

// Catalog maps material identifiers to their BreachProfile. Built once via
// NewCatalog and read-only afterward; safe for concurrent reads by multiple
// enumerator workers without any locking, since nothing mutates it post
// construction.
type Catalog struct {
	profiles map[string]BreachProfile
}

// Option configures a Catalog under construction. Mirrors the teacher's
// functional-options idiom used throughout this module (config.Option,
// fixture.Option).
type Option func(*catalogConfig) error

type catalogConfig struct {
	profiles map[string]BreachProfile
}

// WithMaterial registers a material's BreachProfile at construction time.
// Returns ErrEmptyMaterial, ErrDuplicateMaterial, or ErrNegativeCost if the
// arguments are invalid; the error surfaces from NewCatalog.
func WithMaterial(material string, profile BreachProfile) Option {
	return func(cfg *catalogConfig) error {
		if material == "" {
			return ErrEmptyMaterial
		}
		if _, exists := cfg.profiles[material]; exists {
			return fmt.Errorf("catalog: WithMaterial(%s): %w", material, ErrDuplicateMaterial)
		}
		if profile.BreachTimeS < 0 || profile.ConsumableWeightLb < 0 {
			return fmt.Errorf("catalog: WithMaterial(%s): %w", material, ErrNegativeCost)
		}
		for _, w := range profile.ToolWeights {
			if w < 0 {
				return fmt.Errorf("catalog: WithMaterial(%s): %w", material, ErrNegativeCost)
			}
		}
		cfg.profiles[material] = profile

		return nil
	}
}

// NewCatalog builds a Catalog from the given options, applied in order.
func NewCatalog(opts ...Option) (*Catalog, error) {
	cfg := &catalogConfig{profiles: make(map[string]BreachProfile)}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Catalog{profiles: cfg.profiles}, nil
}

// Resolve returns the BreachProfile for material. The empty string always
// resolves to ZeroBreachProfile (the synthetic start node's material),
// regardless of what was registered.
//
// Complexity: O(1).
func (c *Catalog) Resolve(material string) (BreachProfile, error) {
	if material == "" {
		return ZeroBreachProfile, nil
	}
	p, ok := c.profiles[material]
	if !ok {
		return BreachProfile{}, fmt.Errorf("catalog: Resolve(%s): %w", material, ErrUnknownMaterial)
	}

	return p, nil
}

// Materials returns every registered material identifier, sorted ascending.
func (c *Catalog) Materials() []string {
	ids := make([]string, 0, len(c.profiles))
	for id := range c.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
