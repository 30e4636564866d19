// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio_test

import (
	"testing"

	"code.hybscloud.com/taskio"
)

func TestReadyOnce(t *testing.T) {
	r := taskio.NewReady("v")
	v, ok := r.Poll().Get()
	if !ok || v != "v" {
		t.Fatalf("first Poll got (%q, %v), want (\"v\", true)", v, ok)
	}
	mustPanic(t, "taskio: ReadyTask polled after completion", func() { r.Poll() })
}

func TestBlockCountsPolls(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		c := &countdown[int]{pending: n, value: n * 2}
		if got := taskio.Block[int](c); got != n*2 {
			t.Fatalf("n=%d: Block got %d, want %d", n, got, n*2)
		}
		if c.polls != n+1 {
			t.Fatalf("n=%d: polled %d times, want %d", n, c.polls, n+1)
		}
	}
}

func TestBlockWait(t *testing.T) {
	c := &countdown[string]{pending: 3, value: "done"}
	if got := taskio.BlockWait[string](c); got != "done" {
		t.Fatalf("BlockWait got %q, want %q", got, "done")
	}
	if c.polls != 4 {
		t.Fatalf("polled %d times, want 4", c.polls)
	}
}

func TestPollOnce(t *testing.T) {
	c := &countdown[int]{pending: 1, value: 9}
	if taskio.PollOnce[int](c).IsReady() {
		t.Fatal("expected Pending on first poll")
	}
	if v, ok := taskio.PollOnce[int](c).Get(); !ok || v != 9 {
		t.Fatalf("second poll got (%d, %v), want (9, true)", v, ok)
	}
}

func TestTaskFunc(t *testing.T) {
	n := 0
	f := taskio.TaskFunc[int](func() taskio.Poll[int] {
		n++
		if n < 3 {
			return taskio.Pending[int]()
		}
		return taskio.Ready(n)
	})
	if got := taskio.Block[int](f); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestMapTask(t *testing.T) {
	c := &countdown[int]{pending: 2, value: 21}
	m := taskio.MapTask[int](c, func(n int) int { return n * 2 })
	if m.Poll().IsReady() || m.Poll().IsReady() {
		t.Fatal("expected two Pending polls")
	}
	if v, ok := m.Poll().Get(); !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
	mustPanic(t, "taskio: MapTask polled after completion", func() { m.Poll() })
}

func TestRunBothTasks(t *testing.T) {
	a := &countdown[string]{pending: 3, value: "a"}
	b := &countdown[int]{pending: 1, value: 2}
	ra, rb := taskio.Run[string, int](a, b)
	if ra != "a" || rb != 2 {
		t.Fatalf("Run got (%q, %d), want (\"a\", 2)", ra, rb)
	}
	if a.polls != 4 {
		t.Fatalf("a polled %d times, want 4", a.polls)
	}
	if b.polls != 2 {
		t.Fatalf("b polled %d times after completion, want 2", b.polls)
	}
}

func TestRunReadyTasks(t *testing.T) {
	ra, rb := taskio.Run[int, int](taskio.NewReady(1), taskio.NewReady(2))
	if ra != 1 || rb != 2 {
		t.Fatalf("Run got (%d, %d), want (1, 2)", ra, rb)
	}
}
