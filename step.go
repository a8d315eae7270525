// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Step is one segment of a resumable body: the statements between two
// suspend points. A step receives the carrier, runs to completion
// without blocking, and returns a [Directive] telling the block what
// happens next. Steps must not retain the carrier past their return.
type Step[C Carrier] func(C) Directive

// Directive is a step's verdict on what the block does after the step
// returns: proceed, transfer, suspend, terminate, or fork. Directives
// are constructed by [Next], [Goto], [Yield], [YieldTo], [Again],
// [Stop] and [Fork]; the zero Directive is invalid and makes the
// resume panic.
type Directive struct {
	kind   directiveKind
	target StepID
	fork   func()
}

type directiveKind uint8

const (
	dInvalid directiveKind = iota
	dNext
	dGoto
	dYield
	dYieldTo
	dAgain
	dStop
	dFork
)

// Next proceeds to the following step within the same invocation.
// A Next from the last step terminates the coroutine.
func Next() Directive { return Directive{kind: dNext} }

// Goto transfers control to step id within the same invocation. The
// target may be any step of the block, or [Block.Len] to terminate.
// A Goto cycle with no suspend point in it runs forever, the same as
// any other non-terminating loop.
func Goto(id StepID) Directive { return Directive{kind: dGoto, target: id} }

// Yield suspends the invocation. The resume returns to its caller and
// the next invocation enters at the following step. Suspending from
// the last step leaves the coroutine one invocation away from
// termination: the next resume executes nothing and marks it done.
func Yield() Directive { return Directive{kind: dYield} }

// YieldTo suspends the invocation with an explicit re-entry step: the
// next invocation enters at step id. YieldTo of the current step is
// [Again]; YieldTo of [Block.Len] terminates on the next resume.
func YieldTo(id StepID) Directive { return Directive{kind: dYieldTo, target: id} }

// Again suspends the invocation and re-enters at the same step, so the
// step runs once per invocation until it yields elsewhere. This is the
// polling primitive: check a condition, Again while it is unmet.
func Again() Directive { return Directive{kind: dAgain} }

// Stop terminates the coroutine immediately, skipping any remaining
// steps. The resume returns false and the marker reads done.
func Stop() Directive { return Directive{kind: dStop} }

// Fork duplicates the coroutine at this point. The block first moves
// the marker to the following step and opens its child window, then
// calls fn exactly once; fn captures the carrier's state, typically by
// copying the carrier while its marker reads [Marker.IsChild]. When fn
// returns, the window closes and the invocation continues at the
// following step as the parent.
//
// The copy taken inside fn resumes at the step after the fork with
// IsChild reporting true until its own next suspend point, which is
// how the two sides of the fork tell themselves apart. A nil fn is
// allowed and forks nothing.
func Fork(fn func()) Directive { return Directive{kind: dFork, fork: fn} }
