// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"code.hybscloud.com/iox"
)

// Block polls t until it completes and returns its output.
// Busy-waits on the calling goroutine: Pending is discarded and t is
// polled again immediately, with no yielding in between.
func Block[T any](t Task[T]) T {
	for {
		if v, ok := t.Poll().Get(); ok {
			return v
		}
	}
}

// BlockWait polls t until it completes and returns its output.
// Waits between Pending polls with adaptive backoff (iox.Backoff),
// for sources that fill from another goroutine or an interrupt handler.
func BlockWait[T any](t Task[T]) T {
	var bo iox.Backoff
	for {
		if v, ok := t.Poll().Get(); ok {
			return v
		}
		bo.Wait()
	}
}

// PollOnce steps t exactly once.
// Intended for tasks that do not depend on a stable address; the
// self-referential tasks in this package enforce that on their own.
func PollOnce[T any](t Task[T]) Poll[T] {
	return t.Poll()
}
