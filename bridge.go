// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Suspended is the effect operation a driven coroutine performs between
// invocations. The handler receives the suspended carrier, may inspect
// or persist it, and resumes with struct{}{} to run the next slice.
// Returning (v, false) from the handler short-circuits instead, leaving
// the coroutine suspended where it was.
type Suspended[C Carrier] struct {
	kont.Phantom[struct{}]

	// Co is the carrier awaiting its next invocation.
	Co C
}

// Drive lifts a coroutine into an effectful [kont.Eff] computation that
// resumes c one invocation at a time, performing [Suspended] after each
// invocation that leaves the coroutine suspended. The computation's
// result is the total number of invocations, matching [Block.Exec].
//
// Nothing runs until the computation is handled or stepped:
//
//	n := kont.Handle(coro.Drive(b, c), kont.HandleFunc[int](func(op kont.Operation) (kont.Resumed, bool) {
//		return struct{}{}, true
//	}))
//
// Drive is the hook between markers and continuation machinery: a
// handler can park the Suspended operation in a run queue, save the
// marker, or interleave many coroutines, and each resumption costs one
// invocation of the block.
func Drive[C Carrier](b *Block[C], c C) kont.Eff[int] {
	var loop func(n int) kont.Eff[int]
	loop = func(n int) kont.Eff[int] {
		return kont.Suspend[kont.Resumed, int](func(k func(int) kont.Resumed) kont.Resumed {
			if c.Mark().IsDone() {
				return k(n)
			}
			if n++; !b.Resume(c) {
				return k(n)
			}
			return kont.Bind(kont.Perform(Suspended[C]{Co: c}), func(struct{}) kont.Eff[int] {
				return loop(n)
			})(k)
		})
	}
	return loop(0)
}

// ExprDrive is the defunctionalized form of [Drive], for drivers that
// walk computation trees with [kont.StepExpr] or [kont.HandleExpr]
// rather than closures. Conversion goes through [kont.Reify], which
// evaluates up to the first suspension: the first invocation runs when
// ExprDrive is called, later ones as the expression is evaluated.
func ExprDrive[C Carrier](b *Block[C], c C) kont.Expr[int] {
	return kont.Reify(Drive(b, c))
}
