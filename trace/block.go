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

import "github.com/trishume/gigatrace/ints"

// B is the fixed event capacity of a Block.
const B = 16

// Event is an immutable trace event: a kind tag, a packed start
// timestamp, and a packed duration.
type Event struct {
	Kind uint16
	Ts   Ns
	Dur  Ns
}

// Block is a fixed-capacity, append-only array of up to B events.
// Events in slots [0, Len) are valid and non-decreasing in Ts; a
// non-empty block's StartTime is the Ts of slot 0.
type Block struct {
	Len    uint16
	events [B]Event
}

// IsFull reports whether the block has reached capacity B.
func (b *Block) IsFull() bool {
	return int(b.Len) == B
}

// Push appends ev to the block. Push panics if the block is full.
func (b *Block) Push(ev Event) {
	assertf(!b.IsFull(), "trace.Block.Push: block is full (len=%d)", b.Len)
	b.events[b.Len] = ev
	b.Len++
}

// Events returns the slice of valid events in the block.
func (b *Block) Events() []Event {
	return b.events[:b.Len]
}

// StartTime returns the Ts of the first event. StartTime is only
// meaningful for a non-empty block; it returns 0 for an empty one by
// convention, but Track's invariants forbid ever addressing an empty
// block through it.
func (b *Block) StartTime() uint64 {
	if b.Len == 0 {
		return 0
	}
	return b.events[0].Ts.Unpack()
}

// BlockIndex is a dense, stable handle into a BlockPool.
type BlockIndex uint32

// BlockPool is the contiguous, append-only backing store for blocks.
// Blocks are never removed or reordered; a BlockIndex remains valid
// for the lifetime of the pool.
type BlockPool struct {
	blocks []Block
}

// allocChunk is the block-count granularity a capacity hint rounds up
// to. The hint sizes the backing slice once up front; growth past it
// falls back to append's usual doubling.
const allocChunk = 64

// NewBlockPoolWithCapacityHint returns an empty BlockPool with its
// backing slice preallocated for roughly eventsHint events, rounded up
// to a whole number of allocChunk-block chunks.
func NewBlockPoolWithCapacityHint(eventsHint int) *BlockPool {
	blocks := ints.ChunkCount(uint(eventsHint), uint(B))
	blocks = ints.AlignUp(blocks, uint(allocChunk))
	return &BlockPool{blocks: make([]Block, 0, blocks)}
}

// Alloc appends a new empty block and returns its index.
func (p *BlockPool) Alloc() BlockIndex {
	p.blocks = append(p.blocks, Block{})
	return BlockIndex(len(p.blocks) - 1)
}

// Get returns a pointer to the block at i.
func (p *BlockPool) Get(i BlockIndex) *Block {
	return &p.blocks[i]
}

// Len returns the number of blocks allocated in the pool.
func (p *BlockPool) Len() int {
	return len(p.blocks)
}
