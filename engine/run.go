package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ferrovia/breachpath/catalog"
	"github.com/ferrovia/breachpath/config"
	"github.com/ferrovia/breachpath/core"
	"github.com/ferrovia/breachpath/logic"
	"github.com/ferrovia/breachpath/mission"
	"github.com/ferrovia/breachpath/reduce"
	"github.com/ferrovia/breachpath/scheduler"
	"github.com/ferrovia/breachpath/segcache"
	"github.com/ferrovia/breachpath/segment"
)

// Params bundles everything one Run call needs: the facility graph and
// breach catalog, the resource budgets and cutoffs, the target-set
// expression to expand into missions, where to persist the segment cache,
// and the logger every stage reports progress through.
type Params struct {
	Graph      *core.Graph
	Catalog    *catalog.Catalog
	Config     config.EngineConfig
	Expression string
	CacheDir   string
	Logger     zerolog.Logger
}

// Outcome is everything a run produces: the expanded missions, the
// assembled paths (valid and invalid), and the frequency tally.
type Outcome struct {
	Missions []logic.Mission
	Result   mission.Result
}

// Run executes the full pipeline:
//
//  1. Expand the target-set expression into missions (logic.Expand).
//  2. Collect the distinct (from, to) segment keys every mission's
//     consecutive waypoint pairs require.
//  3. Enumerate and cache those segments across a bounded worker pool
//     (scheduler.Scheduler).
//  4. Reduce each segment to its K-fastest/K-lightest candidates
//     (reduce.Reduce).
//  5. Assemble full paths per mission against the configured budgets
//     (mission.AssembleAll).
func Run(ctx context.Context, p Params) (Outcome, error) {
	logger := p.Logger

	// 1. Expand the expression.
	missions, err := logic.Expand(p.Expression)
	if err != nil {
		return Outcome{}, fmt.Errorf("engine: Run: expand: %w", err)
	}
	logger.Info().Int("missions", len(missions)).Msg("expanded target-set expression")

	// 2. Collect the segment keys every mission needs.
	keys := collectKeys(missions)
	logger.Info().Int("segment_keys", len(keys)).Msg("collected segment keys")

	// 3. Enumerate and cache.
	enum, err := segment.NewEnumerator(p.Graph, p.Catalog, p.Config)
	if err != nil {
		return Outcome{}, fmt.Errorf("engine: Run: %w", err)
	}
	cache, err := segcache.Open(p.CacheDir)
	if err != nil {
		return Outcome{}, fmt.Errorf("engine: Run: %w", err)
	}

	sched := scheduler.NewScheduler(enum, cache, p.Config.ReservedProcessors, scheduler.WithLogger(logger))
	entries, failures := sched.Run(ctx, keys)
	for key, ferr := range failures {
		logger.Error().Str("from", key.From).Str("to", key.To).Err(ferr).Msg("segment key failed, isolated from the rest of the run")
	}

	// 4. Reduce every segment to its cutoff candidates.
	reduced := make(map[segment.SegmentKey][]segment.PathResult, len(entries))
	for key, entry := range entries {
		reduced[key] = reduce.Reduce(entry.Paths, p.Config.CutoffFastest, p.Config.CutoffLightest)
	}

	lookup := func(from, to string) ([]segment.PathResult, bool) {
		paths, ok := reduced[segment.SegmentKey{From: from, To: to}]

		return paths, ok
	}

	// 5. Assemble full paths per mission.
	result, err := mission.AssembleAll(missions, lookup, p.Config)
	if err != nil {
		return Outcome{}, fmt.Errorf("engine: Run: assemble: %w", err)
	}
	logger.Info().Int("valid", len(result.Valid)).Int("invalid", len(result.Invalid)).Msg("assembled missions")

	return Outcome{Missions: missions, Result: result}, nil
}

// collectKeys returns the deduplicated, deterministically ordered set of
// (from, to) segment keys every mission's consecutive waypoint pairs
// require, each mission implicitly starting from core.StartNodeID.
func collectKeys(missions []logic.Mission) []segment.SegmentKey {
	seen := make(map[segment.SegmentKey]bool)
	var keys []segment.SegmentKey

	for _, m := range missions {
		prev := core.StartNodeID
		for _, wp := range m.Waypoints {
			key := segment.SegmentKey{From: prev, To: wp}
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
			prev = wp
		}
	}

	return keys
}
