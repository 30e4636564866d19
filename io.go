// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"errors"
	"io"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// ReadResult is the outcome of a completed read: Right(n) with the number
// of bytes written into the prefix of the buffer, or Left(err) with the
// source-specific failure.
type ReadResult = kont.Either[error, int]

// ReadOK returns a successful ReadResult of n bytes.
func ReadOK(n int) ReadResult {
	return kont.Right[error, int](n)
}

// ReadErr returns a failed ReadResult.
func ReadErr(err error) ReadResult {
	return kont.Left[error, int](err)
}

// Reader is a non-blocking byte source.
//
// PollRead copies available bytes into the prefix of p and returns
// Ready(ReadOK(n)) with n <= len(p), Ready(ReadErr(err)) on a source
// failure such as framing or overrun, or Pending when no data is
// available yet.
type Reader interface {
	PollRead(p []byte) Poll[ReadResult]
}

// ReaderFunc adapts an ordinary function to a Reader.
type ReaderFunc func(p []byte) Poll[ReadResult]

// PollRead calls f.
func (f ReaderFunc) PollRead(p []byte) Poll[ReadResult] {
	return f(p)
}

// ReadTask is the Task returned by [Read].
type ReadTask struct {
	r    Reader
	buf  []byte
	done bool
}

// Read returns a Task that reads from r into buf.
// buf is borrowed for the lifetime of the task and must not be used by
// anyone else until the task completes or is dropped.
func Read(r Reader, buf []byte) *ReadTask {
	return &ReadTask{r: r, buf: buf}
}

// Poll forwards one read attempt to the source and returns its result
// unchanged. It adds no buffering and no retry; drive it with [Block] or
// [BlockWait] to wait for data.
func (t *ReadTask) Poll() Poll[ReadResult] {
	if t.done {
		panic("taskio: ReadTask polled after completion")
	}
	p := t.r.PollRead(t.buf)
	if p.IsReady() {
		t.done = true
	}
	return p
}

// ioReader bridges an io.Reader with iox semantics to Reader.
type ioReader struct {
	r   io.Reader
	err error
}

// FromIOReader adapts a non-blocking io.Reader.
//
// iox.ErrWouldBlock with no bytes maps to Pending, and so does (0, nil)
// for a non-empty p, since io.Reader allows it to mean nothing happened.
// iox.ErrMore and nil otherwise map to ReadOK(n). Any other error maps to
// ReadErr(err); when it arrives together with bytes, ReadOK(n) is
// reported first and the error on the next poll.
func FromIOReader(r io.Reader) Reader {
	return &ioReader{r: r}
}

func (r *ioReader) PollRead(p []byte) Poll[ReadResult] {
	if r.err != nil {
		err := r.err
		r.err = nil
		return Ready(ReadErr(err))
	}
	n, err := r.r.Read(p)
	switch {
	case n == 0 && err == nil && len(p) > 0:
		return Pending[ReadResult]()
	case err == nil, errors.Is(err, iox.ErrMore):
		return Ready(ReadOK(n))
	case iox.IsWouldBlock(err):
		if n > 0 {
			return Ready(ReadOK(n))
		}
		return Pending[ReadResult]()
	case n > 0:
		r.err = err
		return Ready(ReadOK(n))
	default:
		return Ready(ReadErr(err))
	}
}
