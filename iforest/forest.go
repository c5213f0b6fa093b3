// Copyright 2024 The Gigatrace Authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package iforest is the implicit forest index: an incrementally
// built, flat-array segment-forest of aggregates over a track's
// blocks, supporting O(log n) arbitrary range-reduce with O(n)
// amortized build cost and no per-node allocation.
package iforest

import (
	"fmt"

	"github.com/trishume/gigatrace/aggregate"
	"github.com/trishume/gigatrace/ints"
	"github.com/trishume/gigatrace/trace"
)

// ForestIndex is the flat-array implicit forest over a track's
// blocks. After n pushes, vals has 2n entries: even positions hold
// leaf aggregates, odd positions hold internal-node aggregates, and
// the final slot is always a not-yet-finalized pending aggregate that
// a later Push combines further once a larger subtree completes.
type ForestIndex[A any] struct {
	ops  aggregate.Ops[A]
	vals []A
}

// New returns an empty ForestIndex for the given aggregate ops.
func New[A any](ops aggregate.Ops[A]) *ForestIndex[A] {
	return &ForestIndex[A]{ops: ops}
}

// Build walks every block in track, in order, pushing each into a
// fresh ForestIndex.
func Build[A any](track *trace.Track, pool *trace.BlockPool, ops aggregate.Ops[A]) *ForestIndex[A] {
	idx := New(ops)
	for _, bi := range track.BlockLocs {
		idx.Push(pool.Get(bi))
	}
	return idx
}

// Len returns the number of leaves (blocks) indexed so far.
func (f *ForestIndex[A]) Len() int {
	return (len(f.vals) + 1) / 2
}

// Vals exposes the raw flat array, for tests and determinism checks.
func (f *ForestIndex[A]) Vals() []A {
	return f.vals
}

// Push indexes one more block. Push must be called with blocks in the
// same order they appear in the track; the index is append-only.
func (f *ForestIndex[A]) Push(block *trace.Block) {
	f.vals = append(f.vals, f.ops.Block(block))

	n := len(f.vals)
	// The new leaf is the k-th leaf indexed (1-based), so the
	// post-leaf-push length n is 2k-1 and n/2 == k-1, the number of
	// leaves indexed before this one. This matches the original formula
	// trailing_zeros(!(len/2)); trailing_zeros(!x) == trailing_ones(x)
	// for fixed-width integers, so this is TrailingOnes(n/2) directly.
	levelsToIndex := ints.TrailingOnes(uint(n / 2))

	cur := n - 1 // the leaf just pushed
	for level := 0; level < levelsToIndex; level++ {
		prevHigherLevel := cur - (1 << level)
		f.vals[prevHigherLevel] = f.ops.Combine(f.vals[prevHigherLevel], f.vals[cur])
		cur = prevHigherLevel
	}

	// Pending aggregation slot: the aggregate reaching back 2^levelsToIndex
	// leaves from the new tail. Future pushes overwrite it as larger
	// subtrees complete.
	f.vals = append(f.vals, f.vals[n-(1<<levelsToIndex)])
}

// RangeQuery returns the combine of every leaf aggregate in the
// half-open block-index range r. RangeQuery panics if r falls outside
// [0, Len()]; an empty range returns ops.Empty().
//
// The inner loop is the spec's branchless skip formula: at each step,
// skip = lsp(li | msp(ri-li)) is both the number of flat-array slots
// covered by the next aggregation node and the distance li advances,
// where lsp is the lowest set bit (x & -x) and msp is the highest
// power of two <= x.
func (f *ForestIndex[A]) RangeQuery(r ints.Interval) A {
	n := f.Len()
	assertf(r.Start >= 0 && r.Start <= n && r.End >= 0 && r.End <= n && r.Start <= r.End,
		"iforest.RangeQuery: range %v not inside [0, %d]", r, n)

	li, ri := uint(r.Start*2), uint(r.End*2)
	combined := f.ops.Empty()
	for li < ri {
		skip := ints.Lsp(li | ints.Msp(ri-li))
		combined = f.ops.Combine(combined, f.vals[li+(skip>>1)-1])
		li += skip
	}
	return combined
}

// ClampedRangeQuery is RangeQuery with r first intersected against
// [0, Len()), for callers (e.g. a viewer whose requested range was
// computed against a stale or wider bound) that want a best-effort
// result instead of a panic when r overshoots the index.
func (f *ForestIndex[A]) ClampedRangeQuery(r ints.Interval) A {
	r = r.Intersect(ints.Interval{Start: 0, End: f.Len()})
	if r.Empty() {
		return f.ops.Empty()
	}
	return f.RangeQuery(r)
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
