package fixture

import (
	"fmt"

	"github.com/ferrovia/breachpath/core"
)

const minBranchArms = 2

// Branch returns a Constructor that builds a Y-shaped wing: a single trunk
// room departing start, fanning out into armCount independent corridors of
// armLength rooms each. Arm rooms are indexed trunk(0), then
// arm*armLength+1+i for arm in [0,armCount) and i in [0,armLength), so
// IDFn/EdgeFn/MaterialFn see a stable global index per room.
func Branch(armCount, armLength int) Constructor {
	return func(g *core.Graph, cfg *buildConfig) error {
		if armCount < minBranchArms {
			return fmt.Errorf("Branch: armCount=%d < min=%d: %w", armCount, minBranchArms, ErrTooFewNodes)
		}
		if armLength < 1 {
			return fmt.Errorf("Branch: armLength=%d < min=1: %w", armLength, ErrTooFewNodes)
		}

		trunkID := cfg.idFn(0)
		if err := g.AddNode(trunkID, cfg.materialFn(0)); err != nil {
			return fmt.Errorf("Branch: AddNode(%s): %w", trunkID, err)
		}
		d, h := cfg.edgeFn(-1, 0)
		if err := g.AddEdge(core.StartNodeID, trunkID, d, h); err != nil {
			return fmt.Errorf("Branch: AddEdge(%s->%s): %w", core.StartNodeID, trunkID, err)
		}

		for arm := 0; arm < armCount; arm++ {
			prev := trunkID
			for i := 0; i < armLength; i++ {
				index := 1 + arm*armLength + i
				id := cfg.idFn(index)
				if err := g.AddNode(id, cfg.materialFn(index)); err != nil {
					return fmt.Errorf("Branch: AddNode(%s): %w", id, err)
				}
				distance, deltaH := cfg.edgeFn(index-1, index)
				if err := g.AddEdge(prev, id, distance, deltaH); err != nil {
					return fmt.Errorf("Branch: AddEdge(%s->%s): %w", prev, id, err)
				}
				prev = id
			}
		}

		return nil
	}
}
