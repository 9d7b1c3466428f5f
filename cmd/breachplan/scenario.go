package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/core"
)

// scenarioDoc is the CLI's ambient JSON scenario format: a self-contained
// facility graph, breach catalog, budgets, and target-set expression. It
// is not a reimplementation of the original CSV/setup.txt file formats
// (see spec §6) — purely a convenience format for running the engine from
// the command line.
type scenarioDoc struct {
	Nodes []struct {
		ID       string `json:"id"`
		Material string `json:"material"`
	} `json:"nodes"`
	Edges []struct {
		From          string `json:"from"`
		To            string `json:"to"`
		DistanceFt    int64  `json:"distance_ft"`
		DeltaHeightFt int64  `json:"delta_height_ft"`
	} `json:"edges"`
	Materials []struct {
		Name               string        `json:"name"`
		BreachTimeS        int64         `json:"breach_time_s"`
		ConsumableWeightLb int64         `json:"consumable_weight_lb"`
		ToolWeights        map[int]int64 `json:"tool_weights"`
	} `json:"materials"`
	Config     config.EngineConfig `json:"config"`
	Expression string              `json:"expression"`
}

func loadScenario(path string) (*core.Graph, *catalog.Catalog, config.EngineConfig, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, config.EngineConfig{}, "", fmt.Errorf("breachplan: loadScenario(%s): %w", path, err)
	}

	var doc scenarioDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, config.EngineConfig{}, "", fmt.Errorf("breachplan: loadScenario(%s): %w", path, err)
	}

	g := core.NewGraph()
	for _, n := range doc.Nodes {
		if err := g.AddNode(n.ID, n.Material); err != nil {
			return nil, nil, config.EngineConfig{}, "", fmt.Errorf("breachplan: loadScenario(%s): node %s: %w", path, n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.DistanceFt, e.DeltaHeightFt); err != nil {
			return nil, nil, config.EngineConfig{}, "", fmt.Errorf("breachplan: loadScenario(%s): edge %s->%s: %w", path, e.From, e.To, err)
		}
	}

	catOpts := make([]catalog.Option, 0, len(doc.Materials))
	for _, m := range doc.Materials {
		var weights catalog.ToolWeights
		for idx, w := range m.ToolWeights {
			if idx >= 0 && idx < catalog.ToolCount {
				weights[idx] = w
			}
		}
		catOpts = append(catOpts, catalog.WithMaterial(m.Name, catalog.BreachProfile{
			BreachTimeS:        m.BreachTimeS,
			ConsumableWeightLb: m.ConsumableWeightLb,
			ToolWeights:        weights,
		}))
	}
	cat, err := catalog.NewCatalog(catOpts...)
	if err != nil {
		return nil, nil, config.EngineConfig{}, "", fmt.Errorf("breachplan: loadScenario(%s): %w", path, err)
	}

	return g, cat, doc.Config, doc.Expression, nil
}
