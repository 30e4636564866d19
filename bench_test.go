// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/taskio"
)

// BenchmarkForEachReady measures driving ForEach over ready items.
func BenchmarkForEachReady(b *testing.B) {
	b.ReportAllocs()
	items := make([]int, 64)
	for b.Loop() {
		fe := taskio.NewForEach[int](taskio.FromSlice(items), func(int) taskio.Task[struct{}] {
			return taskio.NewReady(struct{}{})
		})
		taskio.Block[struct{}](fe)
	}
}

// BenchmarkQueuePushPoll measures a Push/PollNext round-trip.
func BenchmarkQueuePushPoll(b *testing.B) {
	b.ReportAllocs()
	q := taskio.NewQueue[int](64)
	for b.Loop() {
		_ = q.Push(1)
		q.PollNext()
	}
}

// BenchmarkGeneratorYield measures one suspension and completion of a
// kont generator.
func BenchmarkGeneratorYield(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		taskio.Block[int](taskio.FromExpr(taskio.ExprYieldDone(1)))
	}
}

// BenchmarkGeneratorYieldEff measures the Cont-world equivalent.
func BenchmarkGeneratorYieldEff(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		taskio.Block[int](taskio.FromEff(taskio.YieldThen(kont.Pure(1))))
	}
}

// BenchmarkCoroutineYield measures one suspension and completion of an
// iter.Pull coroutine.
func BenchmarkCoroutineYield(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		taskio.Block[int](taskio.FromFunc(func(yield func() bool) int {
			yield()
			return 1
		}))
	}
}
