// Package pipeline wires the three long-running activities — Ingress,
// Matcher, Egress — together with two unbounded FIFO
// single-producer/single-consumer queues, each activity running as its
// own loop supervised by a tomb.Tomb.
package pipeline

import (
	"sync"

	"github.com/gammazero/deque"
)

// Queue is an unbounded FIFO SPSC queue. Push never blocks; Pop blocks
// until an item is available or the queue is closed. It backs both the
// orders and transactions channels between pipeline activities — a
// plain Go channel is always bounded or fully synchronous, so this
// wraps a growable ring buffer (github.com/gammazero/deque) with a
// mutex/condvar to get blocking-consumer, non-blocking-producer
// semantics.
type Queue[T any] struct {
	mu     sync.Mutex
	notify *sync.Cond
	items  deque.Deque[T]
	closed bool
}

func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.notify = sync.NewCond(&q.mu)
	return q
}

// Push enqueues v. It never blocks and never fails in normal
// operation.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items.PushBack(v)
	q.notify.Signal()
}

// Pop blocks until an item is available, returning (item, true). If
// the queue has been closed and drained, it returns (zero, false) —
// the caller's "disconnected" terminal condition.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.items.Len() == 0 && !q.closed {
		q.notify.Wait()
	}
	if q.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.items.PopFront(), true
}

// TryPop polls non-blockingly, for callers like the matcher that must
// never block waiting on an empty queue.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.items.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.items.PopFront(), true
}

// Close marks the queue disconnected; blocked and future Pop calls
// return (zero, false) once drained.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.notify.Broadcast()
}
