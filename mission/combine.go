package mission

import (
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/logic"
	"github.com/ferrovia/breachpath/segment"
)

// Assemble forms every leg of m, looks each up via lookup, and combines
// them right-to-left into whole assembled paths, re-checking budgets after
// every pairwise combination (spec §4.6). Combinations that exceed a
// budget are routed to invalid and never combined further.
//
// A leg with no admissible candidates (lookup's ok is false, or candidates
// is empty) yields zero combinations for this mission: Assemble returns no
// valid or invalid paths and no error, rather than aborting the run.
func Assemble(m logic.Mission, lookup LegLookup, cfg config.EngineConfig) (valid, invalid []AssembledPath, err error) {
	full := append([]string{"start"}, m.Waypoints...)
	if len(full) < 2 {
		return nil, nil, ErrTooFewWaypoints
	}

	// 1. Resolve each leg's reduced candidates into seed AssembledPaths.
	legPartials := make([][]AssembledPath, len(full)-1)
	for i := 0; i < len(full)-1; i++ {
		from, to := full[i], full[i+1]
		candidates, ok := lookup(from, to)
		if !ok || len(candidates) == 0 {
			return nil, nil, nil
		}
		legPartials[i] = toAssembledPaths(candidates)
	}

	// A single-leg mission has no combination step, so its seed paths are
	// checked against the budgets directly.
	if len(legPartials) == 1 {
		for _, p := range legPartials[0] {
			if withinBudget(p.Metadata, cfg) {
				valid = append(valid, p)
			} else {
				invalid = append(invalid, p)
			}
		}

		return valid, invalid, nil
	}

	// 2. Fold right-to-left: merge the last two legs first, then fold the
	// merged set into the leg before it, and so on.
	current := legPartials[len(legPartials)-1]
	for i := len(legPartials) - 2; i >= 0; i-- {
		var nextCurrent []AssembledPath
		for _, q := range current {
			for _, p := range legPartials[i] {
				combined := combineOne(p, q)
				if withinBudget(combined.Metadata, cfg) {
					nextCurrent = append(nextCurrent, combined)
				} else {
					invalid = append(invalid, combined)
				}
			}
		}
		current = nextCurrent
	}

	return current, invalid, nil
}

// combineOne merges partial path P followed by Q, eliding the duplicated
// junction node once.
func combineOne(p, q AssembledPath) AssembledPath {
	nodeIDs := make([]string, 0, len(p.NodeIDs)+len(q.NodeIDs)-1)
	nodeIDs = append(nodeIDs, p.NodeIDs...)
	nodeIDs = append(nodeIDs, q.NodeIDs[1:]...)

	consumable := p.Metadata.TotalConsumableLb + q.Metadata.TotalConsumableLb
	tools := p.Metadata.ToolWeights.Max(q.Metadata.ToolWeights)

	return AssembledPath{
		NodeIDs: nodeIDs,
		Metadata: segment.PathMetadata{
			TotalTimeS:        p.Metadata.TotalTimeS + q.Metadata.TotalTimeS,
			TotalConsumableLb: consumable,
			ToolWeights:       tools,
			TotalWeightLb:     consumable + tools.Sum(),
		},
	}
}

func withinBudget(m segment.PathMetadata, cfg config.EngineConfig) bool {
	return m.TotalTimeS <= cfg.MaxTimeS &&
		m.TotalConsumableLb <= cfg.MaxConsumablesLb &&
		m.TotalWeightLb <= cfg.MaxWeightLb
}

func toAssembledPaths(paths []segment.PathResult) []AssembledPath {
	out := make([]AssembledPath, len(paths))
	for i, p := range paths {
		out[i] = AssembledPath{NodeIDs: p.NodeIDs, Metadata: p.Metadata}
	}

	return out
}
