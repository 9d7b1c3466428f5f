package mission

import "errors"

// ErrTooFewWaypoints indicates a mission resolved to fewer than two
// full-path nodes (including the implicit "start"), leaving no legs to
// assemble. A leg absent from the lookup is not structurally invalid like
// this — it simply yields zero combinations for that mission (see
// Assemble).
var ErrTooFewWaypoints = errors.New("mission: fewer than two waypoints")
