// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"errors"
	"io"
)

// ReadFullTask is the Task returned by [ReadFull].
type ReadFullTask struct {
	r    Reader
	buf  []byte
	n    int
	done bool
}

// ReadFull returns a Task that reads from r until buf is full.
//
// It completes with ReadOK(len(buf)) once buf is full. A zero-byte read
// or io.EOF before that completes with io.EOF when nothing was read and
// io.ErrUnexpectedEOF otherwise. Other source errors are returned as is.
func ReadFull(r Reader, buf []byte) *ReadFullTask {
	return &ReadFullTask{r: r, buf: buf}
}

// Filled returns the number of bytes read into the buffer so far.
func (t *ReadFullTask) Filled() int {
	return t.n
}

// Poll reads as much as the source has available.
func (t *ReadFullTask) Poll() Poll[ReadResult] {
	if t.done {
		panic("taskio: ReadFullTask polled after completion")
	}
	for t.n < len(t.buf) {
		res, ok := t.r.PollRead(t.buf[t.n:]).Get()
		if !ok {
			return Pending[ReadResult]()
		}
		if err, failed := res.GetLeft(); failed {
			return t.finish(ReadErr(t.eof(err)))
		}
		n, _ := res.GetRight()
		if n == 0 {
			return t.finish(ReadErr(t.eof(io.EOF)))
		}
		t.n += n
	}
	return t.finish(ReadOK(t.n))
}

func (t *ReadFullTask) eof(err error) error {
	if t.n > 0 && errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

func (t *ReadFullTask) finish(r ReadResult) Poll[ReadResult] {
	t.done = true
	return Ready(r)
}
