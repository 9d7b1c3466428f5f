package mission

import (
	"strings"

	"github.com/ferrovia/breachpath/segment"
)

// AssembledPath is one whole adversary route spanning every leg of a
// mission, with the cumulative metadata of the legs it was combined from.
type AssembledPath struct {
	NodeIDs  []string
	Metadata segment.PathMetadata
}

// Render joins NodeIDs into the canonical "A-B-C" path string.
func (a AssembledPath) Render() string {
	return strings.Join(a.NodeIDs, "-")
}

// LegLookup resolves the reduced candidate paths for one leg (from, to).
// The scheduler and segment reducer populate this; mission never touches
// the cache or enumerator directly.
type LegLookup func(from, to string) ([]segment.PathResult, bool)

// Result is the outcome of assembling every mission for one run.
type Result struct {
	Valid   []AssembledPath
	Invalid []AssembledPath

	// Frequency tallies, across every valid path, how many distinct
	// paths touch each node (spec §4.8: supplemental instrumentation,
	// not a report writer).
	Frequency map[string]int
}

// Focus returns the subset of Valid that touches none of chokePoints
// (spec §4.9).
func (r Result) Focus(chokePoints []string) []AssembledPath {
	avoid := make(map[string]bool, len(chokePoints))
	for _, cp := range chokePoints {
		avoid[cp] = true
	}

	var out []AssembledPath
	for _, p := range r.Valid {
		touches := false
		for _, id := range p.NodeIDs {
			if avoid[id] {
				touches = true

				break
			}
		}
		if !touches {
			out = append(out, p)
		}
	}

	return out
}
