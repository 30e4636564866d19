// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"code.hybscloud.com/iox"
)

// Run drives two independent tasks to completion and returns both outputs.
// Each round polls every unfinished task once, in argument order, and
// backs off (iox.Backoff) when no task completed during the round.
// Runs on the calling goroutine; neither task is polled after it completes.
func Run[A, B any](a Task[A], b Task[B]) (A, B) {
	var (
		resultA      A
		resultB      B
		doneA, doneB bool
		bo           iox.Backoff
	)
	for !doneA || !doneB {
		progress := false
		if !doneA {
			if v, ok := a.Poll().Get(); ok {
				resultA, doneA, progress = v, true, true
			}
		}
		if !doneB {
			if v, ok := b.Poll().Get(); ok {
				resultB, doneB, progress = v, true, true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
