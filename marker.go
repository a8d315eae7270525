// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// StepID indexes a step within a [Block]. Identifiers are positional:
// the first step of a block is 0, and [Block.Len] denotes the end of
// the block. A StepID is only meaningful relative to the block whose
// steps it indexes.
type StepID int32

// done is the terminal position. A marker at done executes nothing.
const done StepID = -1

// Marker is the persistent state of a stackless coroutine: the step at
// which the next invocation of its [Block] enters, plus whether that
// invocation runs on the child side of a fork. Everything else the body
// needs across suspensions lives in the surrounding [Carrier].
//
// The zero Marker is ready to use and enters at the first step. Markers
// are plain values; copying one while the coroutine is suspended is the
// duplication primitive that [Fork] builds on.
//
// A Marker is not safe for concurrent use. At most one goroutine may
// resume through a given marker at a time.
type Marker struct {
	step  StepID
	child bool
}

// Reset returns the marker to its initial state, so the next invocation
// enters at the first step. Any previous position, terminal or not, is
// discarded.
func (m *Marker) Reset() { *m = Marker{} }

// IsDone reports whether the coroutine has terminated. Resuming a done
// marker executes no body code and leaves the marker unchanged; call
// [Marker.Reset] to run the block again.
func (m *Marker) IsDone() bool { return m.step == done }

// IsChild reports whether the marker is inside the child window of a
// fork: the span from the child's first resumption to its next suspend
// point or termination. See [Fork].
func (m *Marker) IsChild() bool { return m.child }

// IsParent reports whether the marker is outside any fork child window.
// Every marker that never passed through a fork is a parent.
func (m *Marker) IsParent() bool { return !m.child }

// Mark returns the marker itself. Embedding a Marker in a struct
// promotes Mark, which is how carrier types satisfy [Carrier].
func (m *Marker) Mark() *Marker { return m }

// Save encodes the marker as a single integer, suitable for a fixed
// slot in session state or external storage:
//
//	0    initial position
//	k>0  suspended, next invocation enters at step k
//	-1   terminated
//	w<-1 child window, next invocation enters at step -w-1
//
// Forks always hand the child the step after the fork point, so a child
// position is at least 1 and its encoding never collides with the
// terminated value. Save is meaningful between invocations and inside a
// fork expression, where it captures the child; mid-step it reports the
// last position the block recorded, not the running step.
func (m *Marker) Save() int32 {
	if m.child {
		return int32(-m.step - 1)
	}
	return int32(m.step)
}

// Load restores the state encoded by [Marker.Save]. Every int32 denotes
// some marker state, so Load never fails; loading a position past the
// end of the block surfaces as a panic on the next resume instead.
func (m *Marker) Load(w int32) {
	if w < int32(done) {
		m.step, m.child = StepID(-w-1), true
		return
	}
	m.step, m.child = StepID(w), false
}

// Carrier is the state a coroutine runs over: any type carrying a
// [Marker], usually a struct that embeds one next to the fields that
// must survive suspension. The mechanism preserves no locals between
// invocations; what a later step needs, an earlier step stores in the
// carrier. A bare *Marker is itself a Carrier for bodies that keep
// their state elsewhere.
type Carrier interface {
	Mark() *Marker
}
