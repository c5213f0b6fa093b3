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

import (
	"math/rand/v2"
	"testing"
)

func TestBlockPushAndFull(t *testing.T) {
	var b Block
	for i := 0; i < B; i++ {
		if b.IsFull() {
			t.Fatalf("block reported full after %d pushes", i)
		}
		b.Push(Event{Kind: 1, Ts: Pack(uint64(i)), Dur: Pack(0)})
	}
	if !b.IsFull() {
		t.Fatal("block not full after B pushes")
	}
	if len(b.Events()) != B {
		t.Fatalf("Events() len = %d, want %d", len(b.Events()), B)
	}
}

func TestBlockPushPastFullPanics(t *testing.T) {
	var b Block
	for i := 0; i < B; i++ {
		b.Push(Event{Ts: Pack(uint64(i))})
	}
	defer func() {
		if recover() == nil {
			t.Fatal("push past capacity did not panic")
		}
	}()
	b.Push(Event{Ts: Pack(999)})
}

func TestNewBlockPoolWithCapacityHintAcceptsPushes(t *testing.T) {
	pool := NewBlockPoolWithCapacityHint(1000)
	if pool.Len() != 0 {
		t.Fatalf("preallocated pool reports Len() = %d, want 0", pool.Len())
	}
	var track Track
	for i := 0; i < 1000; i++ {
		track.Push(pool, Event{Ts: Pack(uint64(i))})
	}
	if pool.Len() == 0 {
		t.Fatal("pushing 1000 events allocated no blocks")
	}
}

func TestTrackPushAllocatesBlocks(t *testing.T) {
	var pool BlockPool
	var track Track

	n := B*3 + 5
	for i := 0; i < n; i++ {
		track.Push(&pool, Event{Ts: Pack(uint64(i)), Dur: Pack(0)})
	}

	if want := 4; len(track.BlockLocs) != want {
		t.Fatalf("got %d blocks, want %d", len(track.BlockLocs), want)
	}
	for _, i := range track.BlockLocs[:3] {
		if !pool.Get(i).IsFull() {
			t.Fatal("expected all but the last block to be full")
		}
	}
	last := pool.Get(track.BlockLocs[3])
	if int(last.Len) != 5 {
		t.Fatalf("last block len = %d, want 5", last.Len)
	}

	start, ok := track.StartTime(&pool)
	if !ok || start != 0 {
		t.Fatalf("StartTime = (%d, %v), want (0, true)", start, ok)
	}
	end, ok := track.EndTime(&pool)
	if !ok || end != uint64(n-1) {
		t.Fatalf("EndTime = (%d, %v), want (%d, true)", end, ok, n-1)
	}
}

func TestEmptyTrackBounds(t *testing.T) {
	var pool BlockPool
	var track Track
	if _, ok := track.StartTime(&pool); ok {
		t.Fatal("StartTime on empty track returned ok=true")
	}
	if _, ok := track.EndTime(&pool); ok {
		t.Fatal("EndTime on empty track returned ok=true")
	}
}

func TestPushSyntheticMonotone(t *testing.T) {
	var pool BlockPool
	var track Track
	lo, hi := TrackSeed("track-0")
	rng := rand.New(rand.NewPCG(lo, hi))
	track.PushSynthetic(&pool, rng, 325)

	var prev uint64
	for _, bi := range track.BlockLocs {
		for _, ev := range pool.Get(bi).Events() {
			ts := ev.Ts.Unpack()
			if ts < prev {
				t.Fatalf("non-monotone synthetic timestamps: %d after %d", ts, prev)
			}
			prev = ts
		}
	}
}

func TestTrackSeedDeterministic(t *testing.T) {
	lo1, hi1 := TrackSeed("alpha")
	lo2, hi2 := TrackSeed("alpha")
	if lo1 != lo2 || hi1 != hi2 {
		t.Fatal("TrackSeed is not deterministic for the same name")
	}
	lo3, hi3 := TrackSeed("beta")
	if lo1 == lo3 && hi1 == hi3 {
		t.Fatal("TrackSeed collided for different names")
	}
}
