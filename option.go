// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

// Option is an optional stream item.
// None marks the end of a stream.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option carrying v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o carries a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the carried value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}
