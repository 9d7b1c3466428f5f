// Package engine wires the Logic Parser, Scheduler, Segment Reducer, and
// Mission Assembler into the single top-level Run entry point a run
// actually calls: expand a target-set expression into missions, enumerate
// and cache every segment those missions touch, reduce each segment to its
// K-fastest/K-lightest candidates, then assemble full adversary paths
// against the configured budgets.
package engine
