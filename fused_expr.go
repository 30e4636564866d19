// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"code.hybscloud.com/kont"
)

var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprSuspend is a suspension point of an Expr-world generator routine.
func ExprSuspend() kont.Expr[struct{}] {
	return kont.ExprPerform(Yield{})
}

// ExprYieldThen suspends once and then continues with next.
// Fuses ExprPerform(Yield{}) + ExprThen.
func ExprYieldThen[B any](next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprYield
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprYieldDone suspends once and then completes with a.
// Fuses ExprPerform(Yield{}) + ExprThen + ExprReturn.
func ExprYieldDone[A any](a A) kont.Expr[A] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(a), Frame: exprReturnFrame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprYield
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[A](ef)
}
