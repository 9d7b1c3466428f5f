package segcache

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/ferrovia/breachpath/segment"
)

// snapshotEntry is the JSON wire form of one SegmentEntry, with explicit
// snake_case keys and each path's metadata flattened beside its node IDs.
type snapshotEntry struct {
	From  string               `json:"from"`
	To    string               `json:"to"`
	Paths []snapshotPathResult `json:"paths"`
}

type snapshotPathResult struct {
	NodeIDs           []string  `json:"node_ids"`
	TotalTimeS        int64     `json:"total_time_s"`
	TotalConsumableLb int64     `json:"total_consumable_lb"`
	TotalWeightLb     int64     `json:"total_weight_lb"`
	ToolWeights       [20]int64 `json:"tool_weights"`
}

// SnapshotJSON writes every indexed entry to path as a single JSON
// document, for fast reload by a downstream tool without re-walking the
// Paths_*/PathData_* text files.
func (c *Cache) SnapshotJSON(path string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]snapshotEntry, 0, len(c.index))
	for _, entry := range c.index {
		se := snapshotEntry{From: entry.Key.From, To: entry.Key.To}
		for _, p := range entry.Paths {
			se.Paths = append(se.Paths, snapshotPathResult{
				NodeIDs:           p.NodeIDs,
				TotalTimeS:        p.Metadata.TotalTimeS,
				TotalConsumableLb: p.Metadata.TotalConsumableLb,
				TotalWeightLb:     p.Metadata.TotalWeightLb,
				ToolWeights:       p.Metadata.ToolWeights,
			})
		}
		snapshot = append(snapshot, se)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("segcache: SnapshotJSON(%s): %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("segcache: SnapshotJSON(%s): %w", path, ErrCacheIO)
	}

	return nil
}

// LoadSnapshotJSON reads a document written by SnapshotJSON and returns the
// entries it contains, without touching the cache's own index.
func LoadSnapshotJSON(path string) ([]segment.SegmentEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("segcache: LoadSnapshotJSON(%s): %w", path, ErrCacheIO)
	}

	var snapshot []snapshotEntry
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("segcache: LoadSnapshotJSON(%s): %w", path, err)
	}

	entries := make([]segment.SegmentEntry, 0, len(snapshot))
	for _, se := range snapshot {
		entry := segment.SegmentEntry{Key: segment.SegmentKey{From: se.From, To: se.To}}
		for _, p := range se.Paths {
			entry.Paths = append(entry.Paths, segment.PathResult{
				NodeIDs: p.NodeIDs,
				Metadata: segment.PathMetadata{
					TotalTimeS:        p.TotalTimeS,
					TotalConsumableLb: p.TotalConsumableLb,
					TotalWeightLb:     p.TotalWeightLb,
					ToolWeights:       p.ToolWeights,
				},
			})
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
