package fixture

import (
	"fmt"

	"github.com/ferrovia/breachpath/core"
)

const minCorridorRooms = 1

// Corridor returns a Constructor that builds a single linear chain of n
// rooms departing the synthetic start node: start -> room0 -> room1 ->
// ... -> room(n-1).
func Corridor(n int) Constructor {
	return func(g *core.Graph, cfg *buildConfig) error {
		if n < minCorridorRooms {
			return fmt.Errorf("Corridor: n=%d < min=%d: %w", n, minCorridorRooms, ErrTooFewNodes)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddNode(id, cfg.materialFn(i)); err != nil {
				return fmt.Errorf("Corridor: AddNode(%s): %w", id, err)
			}
		}

		prev := core.StartNodeID
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			distance, deltaH := cfg.edgeFn(i-1, i)
			if err := g.AddEdge(prev, id, distance, deltaH); err != nil {
				return fmt.Errorf("Corridor: AddEdge(%s->%s): %w", prev, id, err)
			}
			prev = id
		}

		return nil
	}
}
