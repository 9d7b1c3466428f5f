package logic

import "strings"

// Mission is one ordered waypoint sequence denoted by a target-set
// expression. A Mission always implicitly begins at "start"; Waypoints
// holds only the nodes after it.
type Mission struct {
	Waypoints []string
}

// Render returns the canonical "start:w1:w2:...:wk" string for m.
func (m Mission) Render() string {
	parts := make([]string, 0, len(m.Waypoints)+1)
	parts = append(parts, "start")
	parts = append(parts, m.Waypoints...)

	return strings.Join(parts, ":")
}
