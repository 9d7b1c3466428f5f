package reduce

import (
	"sort"

	"github.com/ferrovia/breachpath/segment"
)

// Reduce returns the union of the cutoffFastest paths with the lowest
// TotalTimeS and the cutoffLightest paths with the lowest TotalConsumableLb,
// from paths. A cutoff of 0 means unlimited: that half of the reduction
// keeps every candidate. Ties within either ordering break on the
// lexicographically smaller rendered path string (spec.md §4.4), so the
// result is deterministic regardless of enumeration order.
func Reduce(paths []segment.PathResult, cutoffFastest, cutoffLightest int) []segment.PathResult {
	fastest := topK(paths, cutoffFastest, byTime)
	lightest := topK(paths, cutoffLightest, byConsumable)

	return union(fastest, lightest)
}

func byTime(a, b segment.PathResult) bool {
	if a.Metadata.TotalTimeS != b.Metadata.TotalTimeS {
		return a.Metadata.TotalTimeS < b.Metadata.TotalTimeS
	}

	return a.Render() < b.Render()
}

func byConsumable(a, b segment.PathResult) bool {
	if a.Metadata.TotalConsumableLb != b.Metadata.TotalConsumableLb {
		return a.Metadata.TotalConsumableLb < b.Metadata.TotalConsumableLb
	}

	return a.Render() < b.Render()
}

// topK sorts a copy of paths by less and returns the first k. k == 0 means
// unlimited: the full sorted slice is returned.
func topK(paths []segment.PathResult, k int, less func(a, b segment.PathResult) bool) []segment.PathResult {
	sorted := make([]segment.PathResult, len(paths))
	copy(sorted, paths)
	sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	if k == 0 || k >= len(sorted) {
		return sorted
	}

	return sorted[:k]
}

// union merges two path slices, deduplicating by rendered path string and
// returning the result sorted by that string for a deterministic order.
func union(a, b []segment.PathResult) []segment.PathResult {
	seen := make(map[string]segment.PathResult, len(a)+len(b))
	for _, p := range a {
		seen[p.Render()] = p
	}
	for _, p := range b {
		seen[p.Render()] = p
	}

	out := make([]segment.PathResult, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Render() < out[j].Render() })

	return out
}
