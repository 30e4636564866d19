// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"code.hybscloud.com/kont"
)

// Suspend is a suspension point of a Cont-world generator routine.
func Suspend() kont.Eff[struct{}] {
	return kont.Perform(Yield{})
}

// YieldThen suspends once and then continues with next.
// Fuses Perform(Yield{}) + Then. next is built eagerly; use [YieldBind]
// when the continuation must observe state at resumption time.
func YieldThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield{}), next)
}

// YieldBind suspends once and builds the continuation when resumed.
func YieldBind[B any](next func() kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Yield{}), func(struct{}) kont.Eff[B] {
		return next()
	})
}

// YieldLoop runs step from initial until it returns Right, suspending
// between iterations. step returns Left(nextState) to suspend and try
// again on the next poll, or Right(result) to finish.
//
// Every step runs at poll time, never at construction, so it can test
// flags set by an interrupt handler between polls.
func YieldLoop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(kont.Pure(initial), func(s S) kont.Eff[A] {
		return kont.Bind(step(s), func(e kont.Either[S, A]) kont.Eff[A] {
			if next, ok := e.GetLeft(); ok {
				return YieldBind(func() kont.Eff[A] {
					return YieldLoop(next, step)
				})
			}
			result, _ := e.GetRight()
			return kont.Pure(result)
		})
	})
}
