package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/core"
	"github.com/ferrovia/breachpath/engine"
)

func buildFacility(t *testing.T) (*core.Graph, *catalog.Catalog) {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", "mat-light"))
	require.NoError(t, g.AddNode("B", "mat-heavy"))
	require.NoError(t, g.AddEdge(core.StartNodeID, "A", 10, 0))
	require.NoError(t, g.AddEdge("A", "B", 10, 0))

	cat, err := catalog.NewCatalog(
		catalog.WithMaterial("mat-light", catalog.BreachProfile{BreachTimeS: 5, ConsumableWeightLb: 1}),
		catalog.WithMaterial("mat-heavy", catalog.BreachProfile{BreachTimeS: 10, ConsumableWeightLb: 2}),
	)
	require.NoError(t, err)

	return g, cat
}

func TestRun_ExpandsEnumeratesAndAssembles(t *testing.T) {
	g, cat := buildFacility(t)
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(1000, 1000, 1000))
	require.NoError(t, err)

	outcome, err := engine.Run(context.Background(), engine.Params{
		Graph:      g,
		Catalog:    cat,
		Config:     cfg,
		Expression: "A_B",
		CacheDir:   t.TempDir(),
	})
	require.NoError(t, err)

	require.Len(t, outcome.Missions, 1)
	require.Len(t, outcome.Result.Valid, 1)
	assert.Equal(t, []string{"start", "A", "B"}, outcome.Result.Valid[0].NodeIDs)
	assert.Equal(t, 1, outcome.Result.Frequency["A"])
}

func TestRun_BudgetOverflowYieldsNoValidPaths(t *testing.T) {
	g, cat := buildFacility(t)
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(1, 1000, 1000))
	require.NoError(t, err)

	outcome, err := engine.Run(context.Background(), engine.Params{
		Graph:      g,
		Catalog:    cat,
		Config:     cfg,
		Expression: "A_B",
		CacheDir:   t.TempDir(),
	})
	require.NoError(t, err)
	assert.Empty(t, outcome.Result.Valid)
}

func TestRun_UnresolvableNodeIsolatedFromOtherMissions(t *testing.T) {
	g, cat := buildFacility(t)
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(1000, 1000, 1000))
	require.NoError(t, err)

	// "GHOST" names no node in the facility; its segment key fails
	// enumeration with an unknown-node error the scheduler isolates, while
	// the unrelated "A" mission must still be assembled normally.
	outcome, err := engine.Run(context.Background(), engine.Params{
		Graph:      g,
		Catalog:    cat,
		Config:     cfg,
		Expression: "A,GHOST",
		CacheDir:   t.TempDir(),
	})
	require.NoError(t, err)

	require.Len(t, outcome.Missions, 2)
	require.Len(t, outcome.Result.Valid, 1)
	assert.Equal(t, []string{"start", "A"}, outcome.Result.Valid[0].NodeIDs)
}

func TestRun_InvalidExpressionReturnsError(t *testing.T) {
	g, cat := buildFacility(t)
	cfg, err := config.NewEngineConfig()
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), engine.Params{
		Graph:      g,
		Catalog:    cat,
		Config:     cfg,
		Expression: "",
		CacheDir:   t.TempDir(),
	})
	assert.Error(t, err)
}
