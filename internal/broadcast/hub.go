// Package broadcast implements a bounded, multi-consumer broadcast channel
// with ring-buffer semantics: a publisher never blocks, the oldest unconsumed
// item is dropped when the buffer is full, and a consumer that falls more
// than the buffer capacity behind receives a lag signal and resumes from the
// oldest item still retained. Delivery is at-most-once and per-subscriber
// FIFO; clients are expected to reconcile via authoritative queries.
package broadcast

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrClosed is returned by Recv after the subscription has been closed.
	ErrClosed = errors.New("subscription closed")

	// ErrEmpty is returned by TryRecv when no entry is pending.
	ErrEmpty = errors.New("no pending entries")
)

// LaggedError signals that the subscriber fell behind and Missed entries were
// dropped before it could observe them. The next Recv resumes from the oldest
// retained entry.
type LaggedError struct {
	Missed uint64
}

func (e *LaggedError) Error() string {
	return fmt.Sprintf("subscriber lagged, %d entries skipped", e.Missed)
}

// Hub is a fixed-capacity broadcast buffer. Every published value is assigned
// a monotonically increasing sequence number; each subscription keeps its own
// cursor into the sequence, so subscribers never affect the publisher or each
// other.
type Hub[T any] struct {
	mu   sync.Mutex
	buf  []T
	size uint64
	next uint64        // sequence number of the next published value
	wake chan struct{} // closed and replaced on every publish
}

// NewHub creates a hub with the given capacity. Capacities below one are
// raised to one.
func NewHub[T any](capacity int) *Hub[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Hub[T]{
		buf:  make([]T, capacity),
		size: uint64(capacity),
		wake: make(chan struct{}),
	}
}

// Publish stores v, overwriting the oldest buffered value when the buffer is
// full, and wakes all blocked subscribers. It never blocks and never fails;
// having no subscribers is not an error.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	h.buf[h.next%h.size] = v
	h.next++
	close(h.wake)
	h.wake = make(chan struct{})
	h.mu.Unlock()
}

// Subscribe returns a subscription positioned at the current tail: it only
// observes values published after this call.
func (h *Hub[T]) Subscribe() *Subscription[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return &Subscription[T]{hub: h, pos: h.next}
}

// oldestLocked returns the sequence number of the oldest retained value.
func (h *Hub[T]) oldestLocked() uint64 {
	if h.next < h.size {
		return 0
	}
	return h.next - h.size
}

// Subscription is a single consumer cursor. Not safe for concurrent use by
// multiple goroutines.
type Subscription[T any] struct {
	hub    *Hub[T]
	pos    uint64
	closed bool
}

// Recv blocks until a value is available, the context is cancelled, or the
// subscription is closed. When the subscriber has fallen more than the hub
// capacity behind, it returns a *LaggedError once and repositions the cursor
// to the oldest retained value.
func (s *Subscription[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	for {
		s.hub.mu.Lock()
		if s.closed {
			s.hub.mu.Unlock()
			return zero, ErrClosed
		}
		if oldest := s.hub.oldestLocked(); s.pos < oldest {
			missed := oldest - s.pos
			s.pos = oldest
			s.hub.mu.Unlock()
			return zero, &LaggedError{Missed: missed}
		}
		if s.pos < s.hub.next {
			v := s.hub.buf[s.pos%s.hub.size]
			s.pos++
			s.hub.mu.Unlock()
			return v, nil
		}
		wake := s.hub.wake
		s.hub.mu.Unlock()

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-wake:
		}
	}
}

// TryRecv returns the next pending value without blocking. It reports
// ErrEmpty when the subscriber has caught up with the publisher.
func (s *Subscription[T]) TryRecv() (T, error) {
	var zero T
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	if s.closed {
		return zero, ErrClosed
	}
	if oldest := s.hub.oldestLocked(); s.pos < oldest {
		missed := oldest - s.pos
		s.pos = oldest
		return zero, &LaggedError{Missed: missed}
	}
	if s.pos == s.hub.next {
		return zero, ErrEmpty
	}
	v := s.hub.buf[s.pos%s.hub.size]
	s.pos++
	return v, nil
}

// Close detaches the subscription. Pending values are discarded; subsequent
// Recv calls return ErrClosed. Closing twice is a no-op.
func (s *Subscription[T]) Close() {
	s.hub.mu.Lock()
	s.closed = true
	s.hub.mu.Unlock()
}
