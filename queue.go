// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"errors"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// DefaultQueueCapacity is the capacity used by NewQueue when the
// requested capacity is less than one.
const DefaultQueueCapacity = 16

// ErrClosed is returned by Queue.Push after Close.
var ErrClosed = errors.New("taskio: queue closed")

// Queue is a bounded Stream fed by a single producer, typically an
// interrupt handler or a driver goroutine, and polled by a single consumer.
//
// Transport is a lock-free SPSC ring from lfq: Push never blocks and
// PollNext reports Pending while the ring is empty and the queue is open.
type Queue[T any] struct {
	ring   lfq.SPSC[T]
	closed atomix.Uint32
}

// NewQueue creates a queue holding up to capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = DefaultQueueCapacity
	}
	q := &Queue[T]{}
	q.ring.Init(capacity)
	return q
}

// Push enqueues v. Producer side only.
// Returns iox.ErrWouldBlock when the ring is full and ErrClosed after Close.
func (q *Queue[T]) Push(v T) error {
	if q.closed.Load() != 0 {
		return ErrClosed
	}
	return q.ring.Enqueue(&v)
}

// Close marks the end of input. Items pushed before Close are still
// delivered. Producer side only; calling Close more than once is harmless.
func (q *Queue[T]) Close() {
	q.closed.Add(1)
}

// PollNext dequeues the next item. Consumer side only.
func (q *Queue[T]) PollNext() Poll[Option[T]] {
	if v, err := q.ring.Dequeue(); err == nil {
		return Ready(Some(v))
	}
	if q.closed.Load() == 0 {
		return Pending[Option[T]]()
	}
	// The producer may have pushed between the failed dequeue and Close.
	if v, err := q.ring.Dequeue(); err == nil {
		return Ready(Some(v))
	}
	return Ready(None[T]())
}
