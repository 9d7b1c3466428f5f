// Package segment implements bounded all-simple-paths enumeration between a
// single (from, to) pair of a core.Graph: the Segment Enumerator.
//
// Enumerator.Enumerate performs a depth-first walk with an explicit stack of
// frames rather than recursion (deep recursion risks the stack limit on
// pathological facility graphs, so the walk is iterative). The in-progress
// path and the visited set hold node ID strings; no integer node indexing is
// used. Every frame carries a self-contained metadata snapshot, so popping a
// frame only trims the shared path and visited set; metadata needs no undo.
//
// Budget pruning is admissible: because breach and travel costs are
// monotone non-decreasing along any path, a partial path that already
// exceeds a budget can never recover by being extended further, so it is
// dropped without descending into its neighbors.
package segment
