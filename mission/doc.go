// Package mission implements the Mission Assembler: combining the reduced
// per-leg segment paths of a logic.Mission into whole assembled paths via a
// right-to-left cartesian fold, re-checking budgets after every
// combination and routing overflowing combinations to an invalid sink.
//
// It also exposes the frequency-tally and choke-point-partition
// instrumentation described alongside it: raw counts an external reporting
// collaborator can consume without re-walking every path itself.
package mission
