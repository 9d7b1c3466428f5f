package segment

import (
	"fmt"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/core"
)

// Enumerator finds every simple path between a (from, to) pair of a
// core.Graph whose cumulative cost satisfies the configured budgets.
//
// An Enumerator is stateless between calls to Enumerate: callers may share
// one instance across goroutines as long as the underlying Graph and
// Catalog are themselves read-only (core.Graph and catalog.Catalog both
// guarantee this once constructed).
type Enumerator struct {
	graph   *core.Graph
	catalog *catalog.Catalog
	cfg     config.EngineConfig
}

// NewEnumerator builds an Enumerator over g and cat, evaluated against cfg.
func NewEnumerator(g *core.Graph, cat *catalog.Catalog, cfg config.EngineConfig) (*Enumerator, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cat == nil {
		return nil, ErrNilCatalog
	}

	return &Enumerator{graph: g, catalog: cat, cfg: cfg}, nil
}

// stackFrame is one level of the explicit-stack depth-first walk: the node
// it represents, the metadata accumulated to reach it, and where in its
// neighbor list the walk has gotten to.
type stackFrame struct {
	nodeID    string
	metadata  PathMetadata
	neighbors []*core.DirectedEdge
	nextIdx   int
}

// Enumerate returns every simple path from "from" to "to" whose metadata
// satisfies all three configured budgets. Returns ErrUnknownNode if either
// endpoint is absent from the graph.
//
// Complexity: bounded by the number of simple paths actually within budget
// plus the pruned branches visited once each; unbounded in the worst case
// for a graph with no effective budget, which is why admissible pruning
// matters in practice.
func (e *Enumerator) Enumerate(from, to string) (SegmentEntry, error) {
	// 1. Validate endpoints.
	if !e.graph.HasNode(from) {
		return SegmentEntry{}, fmt.Errorf("segment: Enumerate(%s,%s): from: %w", from, to, ErrUnknownNode)
	}
	if !e.graph.HasNode(to) {
		return SegmentEntry{}, fmt.Errorf("segment: Enumerate(%s,%s): to: %w", from, to, ErrUnknownNode)
	}

	// 2. Seed the walk at "from" with zero metadata; the origin's own
	// breach cost is never charged (spec: costs charge on first visit of
	// each node "after the origin").
	rootNeighbors, err := e.graph.Neighbors(from)
	if err != nil {
		return SegmentEntry{}, fmt.Errorf("segment: Enumerate(%s,%s): %w", from, to, err)
	}

	path := []string{from}
	visited := map[string]bool{from: true}
	stack := []stackFrame{{nodeID: from, neighbors: rootNeighbors}}

	var results []PathResult

	// 3. Explicit-stack DFS: avoids recursion depth limits on deep or
	// pathological facility graphs.
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 3a. Exhausted this frame's neighbors: backtrack.
		if top.nextIdx >= len(top.neighbors) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				path = path[:len(path)-1]
				delete(visited, top.nodeID)
			}
			continue
		}

		edge := top.neighbors[top.nextIdx]
		top.nextIdx++

		if visited[edge.To] {
			continue
		}

		// 3b. Resolve the destination's breach cost and extend metadata.
		destNode, err := e.graph.Node(edge.To)
		if err != nil {
			return SegmentEntry{}, fmt.Errorf("segment: Enumerate(%s,%s): %w", from, to, ErrInternalInconsistency)
		}
		destProfile, err := e.catalog.Resolve(destNode.Material)
		if err != nil {
			return SegmentEntry{}, fmt.Errorf("segment: Enumerate(%s,%s): node %s: %w", from, to, edge.To, err)
		}
		candidate := extendMetadata(top.metadata, edge, destProfile, e.cfg)

		// 3c. Admissible prune: costs are monotone non-decreasing, so a
		// budget already exceeded can never be recovered by extending.
		if !withinBudget(candidate, e.cfg) {
			continue
		}

		path = append(path, edge.To)
		visited[edge.To] = true

		if edge.To == to {
			// 3d. Reached the target: emit and backtrack without
			// descending further (descending would only build paths that
			// end somewhere other than "to").
			emitted := make([]string, len(path))
			copy(emitted, path)
			results = append(results, PathResult{NodeIDs: emitted, Metadata: candidate})

			path = path[:len(path)-1]
			delete(visited, edge.To)
			continue
		}

		nbrs, err := e.graph.Neighbors(edge.To)
		if err != nil {
			return SegmentEntry{}, fmt.Errorf("segment: Enumerate(%s,%s): %w", from, to, ErrInternalInconsistency)
		}
		stack = append(stack, stackFrame{nodeID: edge.To, metadata: candidate, neighbors: nbrs})
	}

	if len(path) != 1 {
		return SegmentEntry{}, fmt.Errorf("segment: Enumerate(%s,%s): stack unwound unevenly: %w", from, to, ErrInternalInconsistency)
	}

	return SegmentEntry{Key: SegmentKey{From: from, To: to}, Paths: results}, nil
}

// extendMetadata returns the metadata for a path extended by one edge into
// a node with the given breach profile.
func extendMetadata(accum PathMetadata, edge *core.DirectedEdge, destProfile catalog.BreachProfile, cfg config.EngineConfig) PathMetadata {
	travel := travelTimeS(edge.DistanceFt, edge.DeltaHeightFt, cfg.AdvSpeedFtPerS, cfg.AscendFatigueSPerFt, cfg.DescendFatigueSPerFt)
	tools := accum.ToolWeights.Max(destProfile.ToolWeights)
	consumable := accum.TotalConsumableLb + destProfile.ConsumableWeightLb

	return PathMetadata{
		TotalTimeS:        accum.TotalTimeS + travel + destProfile.BreachTimeS,
		TotalConsumableLb: consumable,
		ToolWeights:       tools,
		TotalWeightLb:     consumable + tools.Sum(),
	}
}

// withinBudget reports whether m satisfies all three configured budgets.
func withinBudget(m PathMetadata, cfg config.EngineConfig) bool {
	return m.TotalTimeS <= cfg.MaxTimeS &&
		m.TotalConsumableLb <= cfg.MaxConsumablesLb &&
		m.TotalWeightLb <= cfg.MaxWeightLb
}
