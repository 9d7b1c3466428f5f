// Package reduce implements the Segment Reducer: trimming a segment's
// candidate paths down to the union of its K fastest and K lightest
// entries before the Mission Assembler combines legs.
//
// A cutoff of 0 means unlimited — the corresponding half of the reduction
// is skipped and every candidate is kept for that ordering.
package reduce
