// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/taskio"
)

// countdown reports Pending for the first pending polls, then Ready(value).
// polls counts every Poll call.
type countdown[T any] struct {
	pending int
	value   T
	polls   int
}

func (c *countdown[T]) Poll() taskio.Poll[T] {
	c.polls++
	if c.pending > 0 {
		c.pending--
		return taskio.Pending[T]()
	}
	return taskio.Ready(c.value)
}

// mustPanic runs f and fails unless it panics with the string want.
func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	f()
}

// drain collects every item of s, polling until the stream is exhausted.
func drain[T any](s taskio.Stream[T]) []T {
	var items []T
	for {
		next, ok := s.PollNext().Get()
		if !ok {
			continue
		}
		v, ok := next.Get()
		if !ok {
			return items
		}
		items = append(items, v)
	}
}

// relocate returns a copy of *p at a new address, as if the value had
// been moved. The copy goes through reflect so vet's copylocks check
// does not report the deliberate copy.
func relocate[T any](p *T) *T {
	moved := reflect.New(reflect.TypeFor[T]())
	moved.Elem().Set(reflect.ValueOf(p).Elem())
	return moved.Interface().(*T)
}
