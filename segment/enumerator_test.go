package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/core"
	"github.com/ferrovia/breachpath/segment"
)

// scenarioA builds the trivial single-leg fixture: start → T1, distance 11,
// rise 0; T1's material breaches for 100s, 10lb consumable, one 5lb tool.
func scenarioA(t *testing.T) (*core.Graph, *catalog.Catalog, config.EngineConfig) {
	t.Helper()

	g := core.NewGraph()
	require.NoError(t, g.AddNode("T1", "reinforced-door"))
	require.NoError(t, g.AddEdge(core.StartNodeID, "T1", 11, 0))

	var tw catalog.ToolWeights
	tw[0] = 5
	cat, err := catalog.NewCatalog(catalog.WithMaterial("reinforced-door", catalog.BreachProfile{
		BreachTimeS:        100,
		ConsumableWeightLb: 10,
		ToolWeights:        tw,
	}))
	require.NoError(t, err)

	cfg, err := config.NewEngineConfig(
		config.WithAdvSpeed(11),
		config.WithBudgets(200, 50, 50),
	)
	require.NoError(t, err)

	return g, cat, cfg
}

func TestEnumerate_ScenarioA_TrivialSingleLeg(t *testing.T) {
	g, cat, cfg := scenarioA(t)
	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	entry, err := enum.Enumerate(core.StartNodeID, "T1")
	require.NoError(t, err)
	require.Len(t, entry.Paths, 1)

	p := entry.Paths[0]
	assert.Equal(t, []string{core.StartNodeID, "T1"}, p.NodeIDs)
	assert.Equal(t, int64(101), p.Metadata.TotalTimeS)
	assert.Equal(t, int64(10), p.Metadata.TotalConsumableLb)
	assert.Equal(t, int64(15), p.Metadata.TotalWeightLb)
}

func TestEnumerate_ScenarioE_BudgetOverflow(t *testing.T) {
	g, cat, _ := scenarioA(t)
	cfg, err := config.NewEngineConfig(
		config.WithAdvSpeed(11),
		config.WithBudgets(200, 5, 50),
	)
	require.NoError(t, err)

	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	entry, err := enum.Enumerate(core.StartNodeID, "T1")
	require.NoError(t, err)
	assert.Empty(t, entry.Paths)
}

func TestEnumerate_UnknownEndpoints(t *testing.T) {
	g, cat, cfg := scenarioA(t)
	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	_, err = enum.Enumerate("ghost", "T1")
	assert.ErrorIs(t, err, segment.ErrUnknownNode)

	_, err = enum.Enumerate(core.StartNodeID, "ghost")
	assert.ErrorIs(t, err, segment.ErrUnknownNode)
}

func TestNewEnumerator_NilArgs(t *testing.T) {
	g, cat, cfg := scenarioA(t)

	_, err := segment.NewEnumerator(nil, cat, cfg)
	assert.ErrorIs(t, err, segment.ErrNilGraph)

	_, err = segment.NewEnumerator(g, nil, cfg)
	assert.ErrorIs(t, err, segment.ErrNilCatalog)
}

// TestEnumerate_SimplePathsOnly builds a cycle (start→A→B→start) and checks
// that no emitted path revisits a node.
func TestEnumerate_SimplePathsOnly(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", ""))
	require.NoError(t, g.AddNode("B", ""))
	require.NoError(t, g.AddEdge(core.StartNodeID, "A", 10, 0))
	require.NoError(t, g.AddEdge("A", "B", 10, 0))
	require.NoError(t, g.AddEdge("B", core.StartNodeID, 10, 0))
	require.NoError(t, g.AddEdge("B", "A", 10, 0))

	cat, err := catalog.NewCatalog()
	require.NoError(t, err)
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(1000, 1000, 1000))
	require.NoError(t, err)

	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	entry, err := enum.Enumerate(core.StartNodeID, "B")
	require.NoError(t, err)
	require.NotEmpty(t, entry.Paths)

	for _, p := range entry.Paths {
		seen := map[string]bool{}
		for _, id := range p.NodeIDs {
			assert.False(t, seen[id], "node %s repeated in path %v", id, p.NodeIDs)
			seen[id] = true
		}
		assert.Equal(t, "B", p.NodeIDs[len(p.NodeIDs)-1])
	}
}

// TestEnumerate_MonotonePruningSoundness checks that every emitted path
// satisfies all three budgets.
func TestEnumerate_MonotonePruningSoundness(t *testing.T) {
	g, cat, cfg := scenarioA(t)
	enum, err := segment.NewEnumerator(g, cat, cfg)
	require.NoError(t, err)

	entry, err := enum.Enumerate(core.StartNodeID, "T1")
	require.NoError(t, err)
	for _, p := range entry.Paths {
		assert.LessOrEqual(t, p.Metadata.TotalTimeS, cfg.MaxTimeS)
		assert.LessOrEqual(t, p.Metadata.TotalConsumableLb, cfg.MaxConsumablesLb)
		assert.LessOrEqual(t, p.Metadata.TotalWeightLb, cfg.MaxWeightLb)
	}
}

func TestPathResult_Render(t *testing.T) {
	p := segment.PathResult{NodeIDs: []string{"start", "A", "B"}}
	assert.Equal(t, "start-A-B", p.Render())
}
