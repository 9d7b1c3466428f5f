package mission

import (
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/logic"
)

// AssembleAll runs Assemble for every mission and aggregates the outcome
// into one Result, including the frequency tally over every valid path.
func AssembleAll(missions []logic.Mission, lookup LegLookup, cfg config.EngineConfig) (Result, error) {
	result := Result{Frequency: make(map[string]int)}

	for _, m := range missions {
		valid, invalid, err := Assemble(m, lookup, cfg)
		if err != nil {
			return Result{}, err
		}
		result.Valid = append(result.Valid, valid...)
		result.Invalid = append(result.Invalid, invalid...)
	}

	for _, p := range result.Valid {
		seen := make(map[string]bool, len(p.NodeIDs))
		for _, id := range p.NodeIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			result.Frequency[id]++
		}
	}

	return result, nil
}
