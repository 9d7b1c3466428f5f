// Package scheduler spawns a bounded pool of Segment Enumerator workers
// over a set of requested (from, to) keys, tracking which keys are still
// waiting, currently being worked, or finalized and ready.
//
// The pool size is max(1, runtime.NumCPU()-reserved). Per-key errors are
// isolated into a result map rather than aborting the whole run, per the
// error-handling design: a CacheIOError is retried once before the key is
// failed; an UnknownNode reference is recorded as an empty entry and
// logged; an InternalInconsistency aborts only that key.
package scheduler
