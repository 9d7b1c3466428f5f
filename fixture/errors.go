package fixture

import "errors"

// ErrTooFewNodes is returned by a Constructor whose requested size is
// below the topology's minimum (1 for a corridor, 3 for a cycle, and so
// on).
var ErrTooFewNodes = errors.New("fixture: too few nodes requested")

// ErrBuildFailed wraps the first constructor error BuildGraph encounters.
var ErrBuildFailed = errors.New("fixture: build failed")
