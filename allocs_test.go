// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
)

type counter struct {
	coro.Marker
	n int
}

func TestResumeAllocations(t *testing.T) {
	poll := coro.NewBlock(
		func(c *counter) coro.Directive {
			c.n++
			return coro.Again()
		},
	)
	c := &counter{}

	allocs := testing.AllocsPerRun(100, func() {
		poll.Resume(c)
	})
	if allocs > 0 {
		t.Errorf("Resume(Again) allocs = %v; want 0", allocs)
	}

	loop := coro.NewBlock(
		func(c *counter) coro.Directive {
			c.n++
			return coro.Next()
		},
		func(c *counter) coro.Directive {
			return coro.YieldTo(0)
		},
	)
	c2 := &counter{}

	allocs2 := testing.AllocsPerRun(100, func() {
		loop.Resume(c2)
	})
	if allocs2 > 0 {
		t.Errorf("Resume(YieldTo loop) allocs = %v; want 0", allocs2)
	}
}

func TestExecAllocations(t *testing.T) {
	seq := coro.NewBlock(
		func(c *counter) coro.Directive { c.n++; return coro.Yield() },
		func(c *counter) coro.Directive { c.n++; return coro.Yield() },
		func(c *counter) coro.Directive { c.n++; return coro.Next() },
	)
	c := &counter{}

	allocs := testing.AllocsPerRun(100, func() {
		c.Reset()
		seq.Exec(c)
	})
	if allocs > 0 {
		t.Errorf("Reset+Exec allocs = %v; want 0", allocs)
	}
}

func TestForkAllocations(t *testing.T) {
	src := &counter{}
	dst := &counter{}
	capture := func() { dst.Marker = src.Marker }

	seq := coro.NewBlock(
		func(c *counter) coro.Directive { return coro.Fork(capture) },
		func(c *counter) coro.Directive { return coro.YieldTo(0) },
	)

	allocs := testing.AllocsPerRun(100, func() {
		seq.Resume(src)
	})
	if allocs > 0 {
		t.Errorf("Resume(Fork) allocs = %v; want 0", allocs)
	}
}

func TestSaveLoadAllocations(t *testing.T) {
	var m coro.Marker

	allocs := testing.AllocsPerRun(100, func() {
		m.Load(m.Save())
	})
	if allocs > 0 {
		t.Errorf("Save+Load allocs = %v; want 0", allocs)
	}
}
