package scheduler

import (
	"sync"

	"github.com/ferrovia/breachpath/segment"
)

// queueState tracks which keys are waiting, working, or ready, per spec
// §4.7. It exists purely for progress reporting; dispatch itself is driven
// by a channel, not by reading this state.
type queueState struct {
	mu      sync.Mutex
	waiting map[segment.SegmentKey]bool
	working map[segment.SegmentKey]bool
	ready   map[segment.SegmentKey]bool
}

func newQueueState(keys []segment.SegmentKey) *queueState {
	q := &queueState{
		waiting: make(map[segment.SegmentKey]bool, len(keys)),
		working: make(map[segment.SegmentKey]bool, len(keys)),
		ready:   make(map[segment.SegmentKey]bool, len(keys)),
	}
	for _, k := range keys {
		q.waiting[k] = true
	}

	return q
}

func (q *queueState) moveToWorking(key segment.SegmentKey) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.waiting, key)
	q.working[key] = true
}

func (q *queueState) moveToReady(key segment.SegmentKey) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.working, key)
	q.ready[key] = true
}

// Counts returns the current (waiting, working, ready) sizes.
func (q *queueState) Counts() (waiting, working, ready int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.waiting), len(q.working), len(q.ready)
}
