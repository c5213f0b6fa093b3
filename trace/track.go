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

package trace

// Track is an ordered list of block indices belonging to one logical
// lane. All but possibly the final block are full; blocks are never
// empty; block start-times are monotonically non-decreasing across
// the track.
type Track struct {
	BlockLocs []BlockIndex
}

func (t *Track) newBlock(pool *BlockPool) BlockIndex {
	i := pool.Alloc()
	t.BlockLocs = append(t.BlockLocs, i)
	return i
}

// Push appends ev to the track's tail block, allocating a new block
// from pool first if the tail is absent or full.
//
// Pushing an event whose Ts is less than the previous event's Ts on
// this track is undefined behavior at the contract level; callers
// must pre-sort. This is not debug-checked on the hot path, since
// Push runs once per ingested event.
func (t *Track) Push(pool *BlockPool, ev Event) {
	var last BlockIndex
	if n := len(t.BlockLocs); n == 0 {
		last = t.newBlock(pool)
	} else {
		last = t.BlockLocs[n-1]
		if pool.Get(last).IsFull() {
			last = t.newBlock(pool)
		}
	}
	pool.Get(last).Push(ev)
}

// StartTime returns the Ts of the first event in the first block, and
// ok == false if the track is empty.
func (t *Track) StartTime(pool *BlockPool) (ts uint64, ok bool) {
	if len(t.BlockLocs) == 0 {
		return 0, false
	}
	return pool.Get(t.BlockLocs[0]).StartTime(), true
}

// EndTime returns the Ts of the last event in the last block, and
// ok == false if the track is empty.
func (t *Track) EndTime(pool *BlockPool) (ts uint64, ok bool) {
	if len(t.BlockLocs) == 0 {
		return 0, false
	}
	last := pool.Get(t.BlockLocs[len(t.BlockLocs)-1])
	events := last.Events()
	if len(events) == 0 {
		return 0, false
	}
	return events[len(events)-1].Ts.Unpack(), true
}
