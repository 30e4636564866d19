// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"iter"
)

// Coroutine turns a plain Go function with explicit suspension points into
// a Task, using iter.Pull as the coroutine switch.
//
// The routine receives a yield function. Calling yield suspends the
// routine and makes Poll return Pending; the next Poll resumes it right
// after the call. yield returns false once the Coroutine was stopped, and
// the routine must then return promptly. Returning from the routine makes
// Poll return Ready with the returned value.
//
// A Coroutine is pinned by its first Poll and must not be copied after
// that. A suspended Coroutine holds runtime resources until it completes
// or Stop is called.
type Coroutine[O any] struct {
	noCopy  noCopy
	pin     pinned
	routine func(yield func() bool) O
	next    func() (struct{}, bool)
	stop    func()
	out     O
	done    bool
}

// FromFunc wraps routine. The routine does not start before the first Poll.
func FromFunc[O any](routine func(yield func() bool) O) *Coroutine[O] {
	return &Coroutine[O]{routine: routine}
}

// Poll resumes the routine until its next yield or its return.
// A panic in the routine propagates to the caller of Poll.
func (c *Coroutine[O]) Poll() Poll[O] {
	c.pin.check(c, "taskio: Coroutine moved after first poll")
	if c.done {
		panic("taskio: Coroutine polled after completion")
	}
	if c.next == nil {
		routine := c.routine
		c.routine = nil
		c.next, c.stop = iter.Pull(func(yield func(struct{}) bool) {
			c.out = routine(func() bool { return yield(struct{}{}) })
		})
	}
	// done stays set if the routine panics out of next.
	c.done = true
	if _, ok := c.next(); ok {
		c.done = false
		return Pending[O]()
	}
	c.stop()
	out := c.out
	var zero O
	c.out = zero
	return Ready(out)
}

// Stop abandons the routine. A suspended routine is resumed with yield
// returning false and runs until it returns; its result is discarded.
// The Coroutine must not be polled afterwards. Stop is idempotent.
func (c *Coroutine[O]) Stop() {
	c.done = true
	c.routine = nil
	if c.stop != nil {
		c.stop()
	}
}
