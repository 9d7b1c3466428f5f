package segment

import "errors"

// Sentinel errors for segment enumeration.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied to NewEnumerator.
	ErrNilGraph = errors.New("segment: graph is nil")

	// ErrNilCatalog indicates a nil *catalog.Catalog was supplied to
	// NewEnumerator.
	ErrNilCatalog = errors.New("segment: catalog is nil")

	// ErrUnknownNode indicates Enumerate's from or to endpoint is not
	// present in the graph.
	ErrUnknownNode = errors.New("segment: unknown node")

	// ErrInternalInconsistency indicates the enumerator's own bookkeeping
	// diverged (e.g. the walk's path stack unwound unevenly). This
	// should never happen; it signals a bug in this package rather than
	// bad input.
	ErrInternalInconsistency = errors.New("segment: internal inconsistency")
)
