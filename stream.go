// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"iter"
)

// Stream is a pull-based sequence of items produced without blocking.
//
// PollNext returns Ready(Some(item)) for the next item, Ready(None) when
// the stream is exhausted, or Pending when no item is available yet.
// A stream that returned Ready(None) should not be polled again; the
// outcome of doing so is up to the implementation.
type Stream[T any] interface {
	PollNext() Poll[Option[T]]
}

// StreamFunc adapts an ordinary function to a Stream.
type StreamFunc[T any] func() Poll[Option[T]]

// PollNext calls f.
func (f StreamFunc[T]) PollNext() Poll[Option[T]] {
	return f()
}

// SliceStream is a finite Stream over a slice. Every poll is ready.
type SliceStream[T any] struct {
	items []T
}

// FromSlice returns a Stream yielding items in order.
// The slice is borrowed, not copied.
func FromSlice[T any](items []T) *SliceStream[T] {
	return &SliceStream[T]{items: items}
}

// PollNext returns the next item, or None once all items were yielded.
func (s *SliceStream[T]) PollNext() Poll[Option[T]] {
	if len(s.items) == 0 {
		return Ready(None[T]())
	}
	v := s.items[0]
	s.items = s.items[1:]
	return Ready(Some(v))
}

// Len returns the number of items not yet yielded.
func (s *SliceStream[T]) Len() int {
	return len(s.items)
}

// SeqStream is a Stream over an iter.Seq, pulled one item per poll.
type SeqStream[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq returns a Stream pulling from seq.
// The iterator is started lazily on the first PollNext. Call Stop to
// release it when the stream is abandoned before exhaustion.
func FromSeq[T any](seq iter.Seq[T]) *SeqStream[T] {
	return &SeqStream[T]{seq: seq}
}

// PollNext pulls the next value from the iterator.
func (s *SeqStream[T]) PollNext() Poll[Option[T]] {
	if s.done {
		return Ready(None[T]())
	}
	if s.next == nil {
		s.next, s.stop = iter.Pull(s.seq)
	}
	v, ok := s.next()
	if !ok {
		s.Stop()
		return Ready(None[T]())
	}
	return Ready(Some(v))
}

// Stop releases the underlying iterator. Subsequent polls yield None.
// Stop is idempotent.
func (s *SeqStream[T]) Stop() {
	s.done = true
	if s.stop != nil {
		s.stop()
	}
}
