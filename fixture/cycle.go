package fixture

import (
	"fmt"

	"github.com/ferrovia/breachpath/core"
)

const minCycleRooms = 3

// Cycle returns a Constructor that builds an n-room patrol ring departing
// start at room0, closing the last room back to room0. Because the
// Segment Enumerator only returns simple paths, a Cycle fixture exists to
// exercise cycle-avoidance: the ring edge back to room0 must never appear
// twice in any emitted path.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *buildConfig) error {
		if n < minCycleRooms {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleRooms, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddNode(id, cfg.materialFn(i)); err != nil {
				return fmt.Errorf("Cycle: AddNode(%s): %w", id, err)
			}
		}

		d0, h0 := cfg.edgeFn(-1, 0)
		if err := g.AddEdge(core.StartNodeID, cfg.idFn(0), d0, h0); err != nil {
			return fmt.Errorf("Cycle: AddEdge(%s->%s): %w", core.StartNodeID, cfg.idFn(0), err)
		}

		for i := 0; i < n; i++ {
			from := cfg.idFn(i)
			to := cfg.idFn((i + 1) % n)
			distance, deltaH := cfg.edgeFn(i, (i+1)%n)
			if err := g.AddEdge(from, to, distance, deltaH); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%s->%s): %w", from, to, err)
			}
		}

		return nil
	}
}
