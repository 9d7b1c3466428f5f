package fixture

import (
	"fmt"

	"github.com/ferrovia/breachpath/core"
)

const minMeshWings = 1

// Mesh returns a Constructor that builds wingCount independent wings of
// wingSize rooms each, all departing start, with every room in a wing
// connected to every other room in the same wing (a complete graph per
// wing). Wings never connect to each other, so Mesh exercises the Segment
// Enumerator's branch-pruning without any path ever crossing wings.
func Mesh(wingCount, wingSize int) Constructor {
	return func(g *core.Graph, cfg *buildConfig) error {
		if wingCount < minMeshWings {
			return fmt.Errorf("Mesh: wingCount=%d < min=%d: %w", wingCount, minMeshWings, ErrTooFewNodes)
		}
		if wingSize < 1 {
			return fmt.Errorf("Mesh: wingSize=%d < min=1: %w", wingSize, ErrTooFewNodes)
		}

		for wing := 0; wing < wingCount; wing++ {
			base := wing * wingSize
			for i := 0; i < wingSize; i++ {
				index := base + i
				id := cfg.idFn(index)
				if err := g.AddNode(id, cfg.materialFn(index)); err != nil {
					return fmt.Errorf("Mesh: AddNode(%s): %w", id, err)
				}
			}

			entry := cfg.idFn(base)
			d, h := cfg.edgeFn(-1, base)
			if err := g.AddEdge(core.StartNodeID, entry, d, h); err != nil {
				return fmt.Errorf("Mesh: AddEdge(%s->%s): %w", core.StartNodeID, entry, err)
			}

			for i := 0; i < wingSize; i++ {
				for j := 0; j < wingSize; j++ {
					if i == j {
						continue
					}
					from := cfg.idFn(base + i)
					to := cfg.idFn(base + j)
					distance, deltaH := cfg.edgeFn(base+i, base+j)
					if err := g.AddEdge(from, to, distance, deltaH); err != nil {
						return fmt.Errorf("Mesh: AddEdge(%s->%s): %w", from, to, err)
					}
				}
			}
		}

		return nil
	}
}
