// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coro provides stackless resumable functions in Go.
//
// A resumable function is an ordinary function a caller invokes many
// times, where each invocation continues from wherever the previous one
// left off. The whole persistent state is a [Marker]: one small integer
// position plus a fork flag, cheap enough to embed in every connection,
// session or task record of a server that multiplexes thousands of
// them. No goroutine, channel or scheduler is involved; control returns
// to the caller at every suspend point, and the caller decides when and
// whether to resume.
//
// # Design Philosophy
//
// coro provides:
//   - A persistent position small enough to store anywhere an int32 fits
//   - Multi-way dispatch that re-enters a body at its recorded step
//   - Cooperative fork without stacks, threads or goroutines
//
// The trade against goroutines is explicit: a goroutine preserves its
// locals and costs a stack; a marker preserves one position and costs
// eight bytes. Bodies written against this package keep their state in
// the carrier and their control flow in the step table, and in exchange
// suspend and resume for the price of an indexed call.
//
// # Markers and Carriers
//
// [Marker] is the resume position. [Carrier] is whatever structure
// holds it, usually a struct embedding a Marker beside the fields that
// must outlive each invocation:
//
//   - [Marker.Reset]: Return to the initial position
//   - [Marker.IsDone]: Report termination
//   - [Marker.IsChild], [Marker.IsParent]: Fork side predicates
//   - [Marker.Save], [Marker.Load]: Single-integer persistence
//   - [Marker.Mark]: Carrier hook, promoted by embedding
//
// # Blocks and Steps
//
// [Block] is an immutable table of [Step] functions assembled by
// [NewBlock]. A step is the code between two suspend points; it returns
// a [Directive] choosing what happens next:
//
//   - [Next]: Proceed to the following step
//   - [Goto]: Transfer to an arbitrary step
//   - [Yield]: Suspend, re-enter at the following step
//   - [YieldTo]: Suspend, re-enter at an explicit step
//   - [Again]: Suspend, re-enter at the same step (polling)
//   - [Stop]: Terminate, skipping the remaining steps
//   - [Fork]: Duplicate the coroutine at this point
//
// [Block.Resume] runs one invocation and reports whether the coroutine
// can still make progress. [Block.Exec] resumes to termination. Blocks
// hold no execution state: build one block, drive any number of
// carriers through it.
//
// A step is an ordinary function. Any Go control flow may appear inside
// one, including the switch and for statements that macro-based
// renditions of this technique must keep away from their suspend
// points; suspension here is a return value, not a code position.
//
// # Termination
//
// A coroutine terminates by [Stop], by running off the end of the step
// table, or by transferring to the end position [Block.Len]. Termination
// is sticky and idempotent: every later resume executes nothing and
// returns false, until [Marker.Reset] starts the body over. Resuming a
// finished coroutine is not an error; drivers may blindly resume
// everything they hold.
//
// # Fork
//
// [Fork] is cooperative duplication in the manner of the fork system
// call, without any stack to copy. At the fork point the block sets the
// marker to the following step, opens the child window, and calls the
// fork expression once; the expression captures the carrier, typically
// by plain struct copy. Both the original and the copy then continue
// from the step after the fork:
//
//   - the original continues within the same invocation as the parent,
//     [Marker.IsParent] true once the window closes;
//   - the copy, resumed later by whoever kept it, reports
//     [Marker.IsChild] until its own next suspend point.
//
// The window is the only thing distinguishing the two sides, so a body
// branches on IsChild immediately after the fork point. The canonical
// shape is a dispatcher loop: poll for work, fork, and let the parent
// transfer back to the poll step while the child carries the work item
// to completion. Forked children may themselves fork; the window
// applies to whichever marker is inside it.
//
// # Persistence
//
// [Marker.Save] flattens the marker to one int32: zero for the initial
// position, a positive step for a suspended parent, -1 for terminated,
// and values below -1 for a child window. [Marker.Load] is total over
// int32 and restores exactly the saved state. A carrier can therefore
// live in a fixed-width record, a wire message or a database row, and
// resume in a process that never saw it before. Load(-1) retires a
// coroutine outright, which is all the cancellation a mechanism with
// no scheduler needs.
//
// # Driving Effectfully
//
// [Drive] lifts a block and carrier into a [kont.Eff] computation that
// performs a [Suspended] operation between invocations, with the total
// invocation count as its result. Handlers written with [kont.Handle]
// or stepped with [kont.Step] decide scheduling: resume immediately,
// park the carrier in a queue, or persist the marker and drop the rest.
// [ExprDrive] is the defunctionalized form for [kont.HandleExpr] and
// [kont.StepExpr] drivers.
//
// # Concurrency
//
// Nothing here synchronizes. A Block is immutable after NewBlock and
// safe to share; each Marker and its carrier belong to one goroutine
// at a time, the same ownership discipline as any other mutable
// session state.
//
// # Allocation
//
// Assembling a block allocates its step table; resuming does not. A
// resume, a yield, a transfer and a fork with a pre-bound expression
// are all allocation-free, so a server can drive a marker per packet
// without garbage pressure.
//
// # Example
//
//	type ticker struct {
//		coro.Marker
//		n int
//	}
//
//	seq := coro.NewBlock(
//		func(t *ticker) coro.Directive {
//			t.n++
//			if t.n < 3 {
//				return coro.Again()
//			}
//			return coro.Next()
//		},
//		func(t *ticker) coro.Directive {
//			t.n *= 10
//			return coro.Yield()
//		},
//	)
//
//	t := &ticker{}
//	for seq.Resume(t) {
//	}
//	// t.n == 30, t.IsDone() == true
//
// The dispatch technique descends from Duff's device by way of Tatham's
// coroutine macros, protothreads (Dunkels et al. 2006) and the
// stackless coroutines of Boost.Asio, rebuilt here as an explicit step
// table instead of a switch woven through the body.
package coro
