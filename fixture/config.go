package fixture

import "strconv"

// IDFn maps a zero-based room index to a deterministic node ID.
type IDFn func(index int) string

// EdgeFn returns the (distanceFt, deltaHeightFt) pair for the edge between
// two room indices, in topology-specific emission order.
type EdgeFn func(fromIndex, toIndex int) (distanceFt, deltaHeightFt int64)

// MaterialFn maps a zero-based room index to the material that room's
// breach catalog entry is keyed on. The empty string is a valid return
// (an unbreached, zero-cost room).
type MaterialFn func(index int) string

// Option customizes a buildConfig before a Constructor runs.
type Option func(*buildConfig)

type buildConfig struct {
	idFn       IDFn
	edgeFn     EdgeFn
	materialFn MaterialFn
}

// DefaultIDFn produces IDs "room0", "room1", ...
func DefaultIDFn(index int) string {
	return defaultIDPrefix(index)
}

// DefaultEdgeFn returns a constant 10ft, level (no rise) edge.
func DefaultEdgeFn(int, int) (int64, int64) {
	return 10, 0
}

// DefaultMaterialFn assigns every room the empty (zero-cost) material.
func DefaultMaterialFn(int) string {
	return ""
}

// WithIDFn overrides the node ID generator.
func WithIDFn(fn IDFn) Option {
	return func(cfg *buildConfig) { cfg.idFn = fn }
}

// WithEdgeFn overrides the per-edge distance/rise generator.
func WithEdgeFn(fn EdgeFn) Option {
	return func(cfg *buildConfig) { cfg.edgeFn = fn }
}

// WithMaterialFn overrides the per-room material assignment.
func WithMaterialFn(fn MaterialFn) Option {
	return func(cfg *buildConfig) { cfg.materialFn = fn }
}

func newBuildConfig(opts ...Option) *buildConfig {
	cfg := &buildConfig{
		idFn:       DefaultIDFn,
		edgeFn:     DefaultEdgeFn,
		materialFn: DefaultMaterialFn,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func defaultIDPrefix(index int) string {
	const prefix = "room"

	return prefix + strconv.Itoa(index)
}
