package segcache

import "errors"

// Sentinel errors for segment cache operations.
var (
	// ErrCacheIO indicates a transient failure writing or reading a
	// segment artifact. Callers (the scheduler) should retry once before
	// failing the key.
	ErrCacheIO = errors.New("segcache: cache I/O failure")

	// ErrCorruptEntry indicates a finalized artifact pair could not be
	// parsed (a path-count vs. metadata-count mismatch, or a malformed
	// line).
	ErrCorruptEntry = errors.New("segcache: corrupt cache entry")

	// ErrNotOpen indicates an operation was attempted on a Cache whose
	// Open call failed or was never made.
	ErrNotOpen = errors.New("segcache: cache root directory is not open")
)
