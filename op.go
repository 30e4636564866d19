// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package taskio

import (
	"code.hybscloud.com/kont"
)

// Yield is the suspension effect of a [Generator] routine.
// Perform(Yield{}) suspends the routine; the enclosing Generator reports
// Pending and resumes the routine on its next Poll.
type Yield struct {
	kont.Phantom[struct{}]
}

// Pre-boxed values to avoid per-suspension heap escapes when storing
// empty structs in kont.Erased / kont.Resumed.
var (
	exprYield    kont.Erased  = Yield{}
	resumedYield kont.Resumed = struct{}{}
)
