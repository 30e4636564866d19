// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

// Task is a computation that advances one step per Poll.
//
// Poll attempts to make progress and returns Ready with the output on the
// step that completes, or Pending otherwise. A Task produces its output
// exactly once; polling a completed Task is a caller bug and the
// implementations in this package panic.
//
// Failures are part of the output type (see [ReadResult]); Poll itself
// never fails. Implementations that hold references into their own state
// require a stable address once polled; such types are only usable through
// the pointer returned by their constructor.
type Task[T any] interface {
	Poll() Poll[T]
}

// TaskFunc adapts an ordinary function to a Task.
type TaskFunc[T any] func() Poll[T]

// Poll calls f.
func (f TaskFunc[T]) Poll() Poll[T] {
	return f()
}

// Mapped is the Task returned by [MapTask].
type Mapped[T, U any] struct {
	task Task[T]
	f    func(T) U
	done bool
}

// MapTask returns a Task that completes with f applied to the output of t.
func MapTask[T, U any](t Task[T], f func(T) U) *Mapped[T, U] {
	return &Mapped[T, U]{task: t, f: f}
}

// Poll steps the inner task once.
func (m *Mapped[T, U]) Poll() Poll[U] {
	if m.done {
		panic("taskio: MapTask polled after completion")
	}
	v, ok := m.task.Poll().Get()
	if !ok {
		return Pending[U]()
	}
	m.done = true
	return Ready(m.f(v))
}
