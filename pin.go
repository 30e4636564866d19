// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

// noCopy may be embedded into structs which must not be copied after the
// first use. go vet's copylocks check reports copies of such structs.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// pinned records the address a task was first polled at.
// Suspended routines keep references into their own state, so a task
// that was copied after its first poll must not be resumed.
type pinned struct {
	addr any
}

// check pins self on first use and panics with msg if self differs from
// the pinned address.
func (p *pinned) check(self any, msg string) {
	if p.addr == nil {
		p.addr = self
	} else if p.addr != self {
		panic(msg)
	}
}
