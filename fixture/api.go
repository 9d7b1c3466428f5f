package fixture

import (
	"fmt"

	"github.com/ferrovia/breachpath/core"
)

// Constructor applies a deterministic topology to g using the resolved
// buildConfig. Constructors validate their own size parameter and never
// panic; they return ErrTooFewNodes on an undersized request.
type Constructor func(g *core.Graph, cfg *buildConfig) error

// BuildGraph creates a new core.Graph seeded with the synthetic start
// node, resolves opts into a buildConfig, and applies every constructor in
// order. The first constructor error is wrapped with ErrBuildFailed and
// returned immediately.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuildConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("fixture: BuildGraph: nil constructor at index %d: %w", i, ErrBuildFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("fixture: BuildGraph: %w: %w", ErrBuildFailed, err)
		}
	}

	return g, nil
}
