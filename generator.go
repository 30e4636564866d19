// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"code.hybscloud.com/kont"
)

// Generator turns a suspendable kont routine into a Task.
//
// The routine suspends by performing [Yield] (see [YieldThen],
// [ExprYieldThen], [YieldLoop]). Each Poll resumes it once: a suspension
// maps to Pending, completion to Ready with the routine's result. Nothing
// reschedules the routine; the caller polls again when progress is
// possible.
//
// A Generator is pinned by its first Poll and must not be copied after
// that.
type Generator[O any] struct {
	noCopy noCopy
	pin    pinned
	start  func() kont.Expr[O]
	susp   *kont.Suspension[O]
	state  uint8
}

const (
	genIdle uint8 = iota
	genSuspended
	genDone
)

// FromExpr wraps an Expr-world routine.
// The routine does not run before the first Poll.
func FromExpr[O any](routine kont.Expr[O]) *Generator[O] {
	return &Generator[O]{start: func() kont.Expr[O] { return routine }}
}

// FromEff wraps a Cont-world routine. It is reified to Expr-world on the
// first Poll.
func FromEff[O any](routine kont.Eff[O]) *Generator[O] {
	return &Generator[O]{start: func() kont.Expr[O] { return kont.Reify(routine) }}
}

// Poll resumes the routine until its next suspension or completion.
// Panics if the routine performs an effect other than Yield.
func (g *Generator[O]) Poll() Poll[O] {
	g.pin.check(g, "taskio: Generator moved after first poll")
	var out O
	// A routine that panics leaves the Generator done.
	state := g.state
	g.state = genDone
	switch state {
	case genIdle:
		start := g.start
		g.start = nil
		out, g.susp = kont.StepExpr(start())
	case genSuspended:
		out, g.susp = g.susp.Resume(resumedYield)
	default:
		panic("taskio: Generator polled after completion")
	}
	if g.susp == nil {
		return Ready(out)
	}
	if _, ok := g.susp.Op().(Yield); !ok {
		g.susp.Discard()
		g.susp = nil
		panic("taskio: unhandled effect in Generator")
	}
	g.state = genSuspended
	return Pending[O]()
}

// Discard drops a suspended routine without resuming it.
// The Generator must not be polled afterwards.
func (g *Generator[O]) Discard() {
	if g.susp != nil {
		g.susp.Discard()
		g.susp = nil
	}
	g.start = nil
	g.state = genDone
}
