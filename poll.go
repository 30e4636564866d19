// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import "fmt"

// Poll reports whether a value is available or still pending.
//
// Unlike a waker-based poll result, a Pending Poll does not schedule
// anything: the caller decides when to poll again.
// The zero Poll is Pending.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a completed Poll carrying v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending returns a Poll that carries no value.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether p carries a value.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// IsPending reports whether p carries no value.
func (p Poll[T]) IsPending() bool {
	return !p.ready
}

// Get returns the carried value and true, or the zero value and false
// when p is Pending. Combinators use it to propagate Pending early:
//
//	v, ok := sub.Poll().Get()
//	if !ok {
//		return taskio.Pending[R]()
//	}
func (p Poll[T]) Get() (T, bool) {
	return p.value, p.ready
}

// Unwrap returns the carried value.
// Panics if p is Pending.
func (p Poll[T]) Unwrap() T {
	if !p.ready {
		panic("taskio: Unwrap on Pending poll")
	}
	return p.value
}

// String implements fmt.Stringer.
func (p Poll[T]) String() string {
	if !p.ready {
		return "Pending"
	}
	return fmt.Sprintf("Ready(%v)", p.value)
}

// Map transforms the value carried by a Ready poll.
// Pending passes through unchanged and f is not called.
func Map[T, U any](p Poll[T], f func(T) U) Poll[U] {
	if !p.ready {
		return Poll[U]{}
	}
	return Ready(f(p.value))
}
