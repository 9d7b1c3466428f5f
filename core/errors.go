package core

import "errors"

// Sentinel errors for core graph operations. Callers should branch with
// errors.Is; messages are not part of the contract.
var (
	// ErrEmptyNodeID indicates an empty node identifier was supplied.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called twice for the same ID.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrUnknownNode indicates an operation referenced a node that was
	// never added to the graph (e.g. an edge endpoint).
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateEdge indicates AddEdge was called twice for the same
	// ordered (from, to) pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge for ordered pair")

	// ErrNegativeDistance indicates a negative DistanceFt was supplied;
	// distances must be non-negative per the data model (height may be
	// signed).
	ErrNegativeDistance = errors.New("core: edge distance must be non-negative")
)
