package mission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/logic"
	"github.com/ferrovia/breachpath/mission"
	"github.com/ferrovia/breachpath/segment"
)

func leg(from, to string, timeS, consumableLb int64) segment.PathResult {
	return segment.PathResult{
		NodeIDs: []string{from, to},
		Metadata: segment.PathMetadata{
			TotalTimeS:        timeS,
			TotalConsumableLb: consumableLb,
			TotalWeightLb:     consumableLb,
		},
	}
}

func TestAssemble_TwoLegsCombineAndElideJunction(t *testing.T) {
	m := logic.Mission{Waypoints: []string{"A", "B"}}
	lookup := func(from, to string) ([]segment.PathResult, bool) {
		switch {
		case from == "start" && to == "A":
			return []segment.PathResult{leg("start", "A", 10, 1)}, true
		case from == "A" && to == "B":
			return []segment.PathResult{leg("A", "B", 20, 2)}, true
		default:
			return nil, false
		}
	}
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(1000, 1000, 1000))
	require.NoError(t, err)

	valid, invalid, err := mission.Assemble(m, lookup, cfg)
	require.NoError(t, err)
	assert.Empty(t, invalid)
	require.Len(t, valid, 1)

	p := valid[0]
	assert.Equal(t, []string{"start", "A", "B"}, p.NodeIDs)
	assert.Equal(t, int64(30), p.Metadata.TotalTimeS)
	assert.Equal(t, int64(3), p.Metadata.TotalConsumableLb)
}

func TestAssemble_BudgetOverflowRoutesToInvalid(t *testing.T) {
	m := logic.Mission{Waypoints: []string{"A"}}
	lookup := func(from, to string) ([]segment.PathResult, bool) {
		return []segment.PathResult{leg(from, to, 500, 0)}, true
	}
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(100, 1000, 1000))
	require.NoError(t, err)

	valid, invalid, err := mission.Assemble(m, lookup, cfg)
	require.NoError(t, err)
	assert.Empty(t, valid)
	require.Len(t, invalid, 1)
}

func TestAssemble_MissingLeg(t *testing.T) {
	m := logic.Mission{Waypoints: []string{"A"}}
	lookup := func(from, to string) ([]segment.PathResult, bool) { return nil, false }
	cfg, err := config.NewEngineConfig()
	require.NoError(t, err)

	valid, invalid, err := mission.Assemble(m, lookup, cfg)
	require.NoError(t, err)
	assert.Empty(t, valid)
	assert.Empty(t, invalid)
}

func TestAssembleAll_FrequencyTallyCountsDistinctNodesPerPath(t *testing.T) {
	missions := []logic.Mission{
		{Waypoints: []string{"A"}},
		{Waypoints: []string{"A", "B"}},
	}
	lookup := func(from, to string) ([]segment.PathResult, bool) {
		return []segment.PathResult{leg(from, to, 1, 0)}, true
	}
	cfg, err := config.NewEngineConfig(config.WithAdvSpeed(1), config.WithBudgets(1000, 1000, 1000))
	require.NoError(t, err)

	result, err := mission.AssembleAll(missions, lookup, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Frequency["A"])
	assert.Equal(t, 1, result.Frequency["B"])
	assert.Equal(t, 2, result.Frequency["start"])
}

func TestResult_Focus_ExcludesChokePoints(t *testing.T) {
	result := mission.Result{
		Valid: []mission.AssembledPath{
			{NodeIDs: []string{"start", "A"}},
			{NodeIDs: []string{"start", "B"}},
		},
	}
	focused := result.Focus([]string{"A"})
	require.Len(t, focused, 1)
	assert.Equal(t, "start-B", focused[0].Render())
}

func TestFormatLine(t *testing.T) {
	p := mission.AssembledPath{
		NodeIDs: []string{"start", "T1"},
		Metadata: segment.PathMetadata{
			TotalTimeS:        101,
			TotalConsumableLb: 10,
			TotalWeightLb:     15,
		},
	}
	line := mission.FormatLine(1, p, 3)
	assert.Contains(t, line, "001 [00101,010,015]")
	assert.Contains(t, line, "start-T1")
}
