package segment

import (
	"strings"

	"github.com/ferrovia/breachpath/catalog"
)

// PathMetadata is the cumulative cost of one path: travel plus breach time,
// consumable weight spent once per distinct node, and the tool-weight
// vector carried (elementwise max, never summed).
type PathMetadata struct {
	TotalTimeS        int64
	TotalConsumableLb int64
	TotalWeightLb     int64
	ToolWeights       catalog.ToolWeights
}

// PathResult is one emitted simple path together with its accumulated
// PathMetadata.
type PathResult struct {
	NodeIDs  []string
	Metadata PathMetadata
}

// Render joins NodeIDs into the canonical "A-B-C" path string used at
// artifact and log boundaries.
func (p PathResult) Render() string {
	return strings.Join(p.NodeIDs, "-")
}

// SegmentKey identifies one (from, to) enumeration request.
type SegmentKey struct {
	From string
	To   string
}

// SegmentEntry is every simple path found between a SegmentKey's endpoints
// that satisfies the budgets in force at enumeration time.
type SegmentEntry struct {
	Key   SegmentKey
	Paths []PathResult
}
