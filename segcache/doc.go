// Package segcache implements the Segment Cache: a durable, on-disk index
// of SegmentEntry results keyed by (from, to), so an interrupted run can
// resume without recomputing completed keys.
//
// Each key's artifacts are written to a temporary "working_*" file, synced,
// then atomically renamed into place (write-temp-then-rename). On Open, any
// leftover "working_*" files are discarded as partial writes; only
// finalized files are loaded as authoritative.
package segcache
