// Package core defines the facility graph store: directed nodes and edges
// describing walls, doors, and rooms, and the breach profile each node
// resolves to once paired with a catalog.Catalog.
//
// The Graph is constructed once (AddNode/AddEdge) and treated as read-only
// by every downstream package (segment, scheduler, mission). Two separate
// RWMutex locks guard nodes and edges so concurrent readers never block on
// each other, and the loader itself is expected to be single-threaded.
//
// A synthetic node with ID StartNodeID always exists once a Graph is
// created; it carries the empty material and therefore a zero breach cost
// (see catalog.ZeroBreachProfile).
package core
