// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"code.hybscloud.com/kont"
)

// ReadyTask is a Task that completes on its first Poll.
type ReadyTask[T any] struct {
	k *kont.Affine[T, struct{}]
}

// NewReady returns a Task that yields v on its first Poll.
func NewReady[T any](v T) *ReadyTask[T] {
	return &ReadyTask[T]{k: kont.Once(func(struct{}) T { return v })}
}

// Poll returns Ready with the stored value.
// The value is handed out once; a second Poll panics.
func (r *ReadyTask[T]) Poll() Poll[T] {
	v, ok := r.k.TryResume(struct{}{})
	if !ok {
		panic("taskio: ReadyTask polled after completion")
	}
	return Ready(v)
}
