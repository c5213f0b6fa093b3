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

// Package step is the bucketed time-stepped aggregator: one aggregate
// per output time bucket across a view range, combining the forest
// index's whole-block range queries with a small linear scan of
// events at both ends of the visible window.
package step

import (
	"sort"

	"github.com/trishume/gigatrace/aggregate"
	"github.com/trishume/gigatrace/iforest"
	"github.com/trishume/gigatrace/ints"
	"github.com/trishume/gigatrace/trace"
)

// AggregateBySteps returns one aggregate per bucket of width step
// starting at t0, t0+step, ..., up to and including the bucket
// containing t1, using index to skip whole runs of blocks between
// bucket boundaries. index must have been built over exactly
// blockLocs (e.g. via iforest.Build).
func AggregateBySteps[A any](
	pool *trace.BlockPool,
	blockLocs []trace.BlockIndex,
	index *iforest.ForestIndex[A],
	ops aggregate.Ops[A],
	t0, t1, step uint64,
) []A {
	return aggregateBySteps(pool, blockLocs, index, ops, t0, t1, step)
}

// AggregateBySteps_Unindexed is the reference implementation: the same
// outer loop as AggregateBySteps but without the index-assisted
// whole-block skip, kept as ground truth for property testing against
// the indexed version.
func AggregateBySteps_Unindexed[A any](
	pool *trace.BlockPool,
	blockLocs []trace.BlockIndex,
	ops aggregate.Ops[A],
	t0, t1, step uint64,
) []A {
	return aggregateBySteps[A](pool, blockLocs, nil, ops, t0, t1, step)
}

func aggregateBySteps[A any](
	pool *trace.BlockPool,
	blockLocs []trace.BlockIndex,
	index *iforest.ForestIndex[A],
	ops aggregate.Ops[A],
	t0, t1, step uint64,
) []A {
	if step == 0 {
		panic("step.AggregateBySteps: time_step must be > 0")
	}

	var out []A
	bi := 0
	tau := t0
	acc := ops.Empty()

	for bi < len(blockLocs) {
		if index != nil {
			s := lastBlockAtOrBefore(pool, blockLocs, bi, tau) // 0-based offset within suffix, or -1
			if s > 1 {
				acc = ops.Combine(acc, index.RangeQuery(ints.Interval{Start: bi, End: bi + (s - 1)}))
				bi += s - 1
			}
		}

		block := pool.Get(blockLocs[bi])
		stop := false
		for _, ev := range block.Events() {
			ts := ev.Ts.Unpack()
			for ts >= tau {
				out = append(out, acc)
				acc = ops.Empty()
				tau += step
				if tau >= t1 {
					stop = true
					break
				}
			}
			acc = ops.Combine(acc, ops.FromEvent(ev))
			if stop {
				break
			}
		}
		if stop {
			break
		}
		bi++
	}

	// Blocks ran out (or the track was empty) before tau caught up to
	// t1: flush the remaining empty buckets so the output always spans
	// the full requested range, independent of where the data ends.
	for tau < t1 {
		out = append(out, acc)
		acc = ops.Empty()
		tau += step
	}

	out = append(out, acc)
	return out
}

// lastBlockAtOrBefore returns the 0-based offset, within
// blockLocs[bi:], of the last block whose start time is <= tau, or -1
// if even the first block in the suffix starts after tau.
func lastBlockAtOrBefore(pool *trace.BlockPool, blockLocs []trace.BlockIndex, bi int, tau uint64) int {
	m := len(blockLocs) - bi
	firstGreater := sort.Search(m, func(i int) bool {
		return pool.Get(blockLocs[bi+i]).StartTime() > tau
	})
	return firstGreater - 1
}
