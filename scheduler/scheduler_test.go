package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/core"
	"github.com/ferrovia/breachpath/scheduler"
	"github.com/ferrovia/breachpath/segcache"
	"github.com/ferrovia/breachpath/segment"
)

func buildGraph(t *testing.T) (*core.Graph, *catalog.Catalog, config.EngineConfig) {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", ""))
	require.NoError(t, g.AddNode("B", ""))
	require.NoError(t, g.AddEdge(core.StartNodeID, "A", 10, 0))
	require.NoError(t, g.AddEdge("A", "B", 10, 0))

	cat, err := catalog.NewCatalog()
	require.NoError(t, err)
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(1000, 1000, 1000))
	require.NoError(t, err)

	return g, cat, cfg
}

func TestScheduler_Run_ResolvesAllKeys(t *testing.T) {
	g, cat, cfg := buildGraph(t)
	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	cache, err := segcache.Open(t.TempDir())
	require.NoError(t, err)

	s := scheduler.NewScheduler(enum, cache, 0)
	keys := []segment.SegmentKey{
		{From: core.StartNodeID, To: "A"},
		{From: "A", To: "B"},
	}

	results, failures := s.Run(context.Background(), keys)
	assert.Empty(t, failures)
	require.Len(t, results, 2)
	assert.NotEmpty(t, results[keys[0]].Paths)
}

func TestScheduler_Run_UnknownNodeRecordsEmptyEntry(t *testing.T) {
	g, cat, cfg := buildGraph(t)
	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	cache, err := segcache.Open(t.TempDir())
	require.NoError(t, err)

	s := scheduler.NewScheduler(enum, cache, 0)
	keys := []segment.SegmentKey{{From: core.StartNodeID, To: "ghost"}}

	results, failures := s.Run(context.Background(), keys)
	assert.Empty(t, failures)
	require.Contains(t, results, keys[0])
	assert.Empty(t, results[keys[0]].Paths)
}

func TestScheduler_Run_ResumesFromCache(t *testing.T) {
	g, cat, cfg := buildGraph(t)
	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	dir := t.TempDir()
	cache, err := segcache.Open(dir)
	require.NoError(t, err)

	key := segment.SegmentKey{From: core.StartNodeID, To: "A"}
	seed, err := enum.Enumerate(key.From, key.To)
	require.NoError(t, err)
	require.NoError(t, cache.Put(seed))

	s := scheduler.NewScheduler(enum, cache, 0)
	results, failures := s.Run(context.Background(), []segment.SegmentKey{key})
	assert.Empty(t, failures)
	assert.Equal(t, seed, results[key])
}
