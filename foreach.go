// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"errors"
)

// ForEach drives a per-item Task for every item of a stream, in order.
//
// At most one per-item task is in flight; the next item is pulled only
// after it completes. A single Poll does as much work as is available and
// returns Pending only when the in-flight task or the stream is pending.
type ForEach[T any] struct {
	stream Stream[T]
	f      func(T) Task[struct{}]
	task   Task[struct{}]
	done   bool
}

// NewForEach returns a Task that completes once s is exhausted and the
// task built by f for every item has completed.
func NewForEach[T any](s Stream[T], f func(T) Task[struct{}]) *ForEach[T] {
	return &ForEach[T]{stream: s, f: f}
}

// Poll advances the in-flight task and pulls further items.
func (fe *ForEach[T]) Poll() Poll[struct{}] {
	if fe.done {
		panic("taskio: ForEach polled after completion")
	}
	for {
		if fe.task != nil {
			if fe.task.Poll().IsPending() {
				return Pending[struct{}]()
			}
			fe.task = nil
			continue
		}
		next, ok := fe.stream.PollNext().Get()
		if !ok {
			return Pending[struct{}]()
		}
		item, ok := next.Get()
		if !ok {
			fe.done = true
			return Ready(struct{}{})
		}
		fe.task = fe.f(item)
	}
}

// ErrorPolicy selects how TryForEach reacts to a failed item.
type ErrorPolicy uint8

const (
	// AbortOnError completes with the first item error and stops pulling.
	AbortOnError ErrorPolicy = iota
	// SkipOnError records the error and moves on to the next item.
	SkipOnError
)

// TryForEach is ForEach for per-item tasks that may fail.
type TryForEach[T any] struct {
	stream Stream[T]
	f      func(T) Task[error]
	policy ErrorPolicy
	task   Task[error]
	errs   []error
	done   bool
}

// NewTryForEach returns a Task driving f for every item of s.
//
// With AbortOnError the task completes with the first non-nil item error.
// With SkipOnError it runs every item and completes with the item errors
// joined by errors.Join, or nil when every item succeeded.
func NewTryForEach[T any](s Stream[T], f func(T) Task[error], policy ErrorPolicy) *TryForEach[T] {
	return &TryForEach[T]{stream: s, f: f, policy: policy}
}

// Poll advances the in-flight task and pulls further items.
func (fe *TryForEach[T]) Poll() Poll[error] {
	if fe.done {
		panic("taskio: TryForEach polled after completion")
	}
	for {
		if fe.task != nil {
			err, ok := fe.task.Poll().Get()
			if !ok {
				return Pending[error]()
			}
			fe.task = nil
			if err != nil {
				if fe.policy == AbortOnError {
					fe.done = true
					return Ready(err)
				}
				fe.errs = append(fe.errs, err)
			}
			continue
		}
		next, ok := fe.stream.PollNext().Get()
		if !ok {
			return Pending[error]()
		}
		item, ok := next.Get()
		if !ok {
			fe.done = true
			err := errors.Join(fe.errs...)
			fe.errs = nil
			return Ready(err)
		}
		fe.task = fe.f(item)
	}
}
