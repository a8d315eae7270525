// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Block is a resumable block: an immutable table of steps plus the
// dispatch that re-enters it wherever a carrier's [Marker] points. The
// block itself holds no execution state, so one Block may drive any
// number of carriers, concurrently or interleaved, each advancing at
// its own pace. The converse does not hold: a marker's positions are
// indices into the block that wrote them, so each marker belongs to
// one block for its lifetime.
type Block[C Carrier] struct {
	steps []Step[C]
}

// NewBlock assembles a resumable block from its steps in definition
// order. Step i has StepID i; [Block.Len] is the end position. A block
// with no steps is valid and terminates on its first resume.
func NewBlock[C Carrier](steps ...Step[C]) *Block[C] {
	return &Block[C]{steps: steps}
}

// Len returns the number of steps in the block. As a [StepID] target,
// Len means the end of the block.
func (b *Block[C]) Len() int { return len(b.steps) }

// Resume runs one invocation of the block over c: it enters at the step
// the carrier's marker points to and executes steps until one suspends
// or the coroutine terminates. Resume reports whether the coroutine can
// still make progress; once it returns false, further calls execute
// nothing and return false until the marker is reset.
//
// Resuming a marker positioned past the end of the block panics; that
// only occurs through [Marker.Load] of a value the block never saved.
func (b *Block[C]) Resume(c C) bool {
	m := c.Mark()
	pc := m.step
	if pc == done {
		return false
	}
	end := StepID(len(b.steps))
	if pc > end {
		panic("coro: resume position out of range")
	}
	for pc < end {
		d := b.steps[pc](c)
		switch d.kind {
		case dNext:
			pc++
		case dGoto:
			pc = b.target(d.target)
		case dYield:
			m.step, m.child = pc+1, false
			return true
		case dYieldTo:
			m.step, m.child = b.target(d.target), false
			return true
		case dAgain:
			m.step, m.child = pc, false
			return true
		case dStop:
			m.step, m.child = done, false
			return false
		case dFork:
			m.forkWindow(pc+1, d.fork)
			pc++
		default:
			panic("coro: invalid directive")
		}
	}
	m.step, m.child = done, false
	return false
}

// Exec resumes c until the coroutine terminates and returns the number
// of invocations performed, zero when the marker is already done. Exec
// does not return from a body that suspends forever.
func (b *Block[C]) Exec(c C) int {
	n := 0
	for m := c.Mark(); !m.IsDone(); n++ {
		b.Resume(c)
	}
	return n
}

// target validates a transfer destination. Steps of the block and the
// end position are reachable; anything else is a programming error.
func (b *Block[C]) target(id StepID) StepID {
	if id < 0 || int(id) > len(b.steps) {
		panic("coro: transfer target out of range")
	}
	return id
}

// forkWindow runs a fork expression with the marker set to the child
// state, and closes the window again even if the expression panics.
func (m *Marker) forkWindow(next StepID, fn func()) {
	m.step, m.child = next, true
	defer func() { m.child = false }()
	if fn != nil {
		fn()
	}
}
