// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package taskio provides a minimal non-blocking computation model for
// polling loops without wakers, timers, or a scheduler.
//
// A computation is a [Task]: each Poll tries to make progress and reports
// [Ready] with the output, or [Pending]. Nothing registers for a wakeup;
// the caller decides when to poll again (a tight loop, a periodic check,
// or after an interrupt handler set a flag or filled a buffer).
//
// # Architecture
//
//   - Signal: [Poll] and [Option], with [Map] and [Poll.Get] for early Pending propagation.
//   - Contracts: [Task], [Stream], and [Reader], one method each.
//   - Leaves: [NewReady], [FromSlice], [FromSeq], [NewQueue] (lock-free SPSC via [code.hybscloud.com/lfq]), [FromIOReader] ([code.hybscloud.com/iox] semantics).
//   - Combinators: [NewForEach], [NewTryForEach], [Read], [ReadFull], [MapTask].
//   - Suspension: [FromEff] and [FromExpr] over [code.hybscloud.com/kont] routines that perform [Yield]; [FromFunc] over plain functions via iter.Pull.
//   - Drivers: [Block] (busy-wait), [BlockWait] (iox.Backoff), [PollOnce], [Run].
//
// # Errors
//
// Capability failures are data: a [Reader] reports them as the Left side
// of a [ReadResult] and they surface unchanged through [Read]. Polling a
// task after it completed is a caller bug and panics with a "taskio:"
// message. A task that never becomes ready simply never completes.
//
// # Address Stability
//
// [Generator] and [Coroutine] hold suspended routine state. They are
// pinned by their first Poll and panic if polled through a copy.
//
// # Example
//
//	q := taskio.NewQueue[byte](64) // filled by an interrupt handler
//	sum := 0
//	drain := taskio.NewForEach[byte](q, func(b byte) taskio.Task[struct{}] {
//		sum += int(b)
//		return taskio.NewReady(struct{}{})
//	})
//	for drain.Poll().IsPending() {
//		// sleep until the next interrupt
//	}
package taskio
