// Package config holds the process-wide constants a run is evaluated
// against: adversary speed, the three budget ceilings, vertical-fatigue
// coefficients, and the reducer's per-leg cutoffs.
//
// EngineConfig is built once via NewEngineConfig and is immutable
// thereafter, following the same construct-once-then-read-only contract as
// core.Graph and catalog.Catalog. It can also be loaded from YAML for
// embedding in larger systems.
package config
