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

	"github.com/dchest/siphash"
)

// TrackSeed derives a deterministic PRNG seed pair from a track name,
// so that PushSynthetic for many tracks can run concurrently (one
// goroutine per track) and still produce reproducible output
// regardless of scheduling order - each track's seed depends only on
// its own name, not on generation order.
func TrackSeed(name string) (lo, hi uint64) {
	return siphash.Hash128(0, 0, []byte(name))
}

// PushSynthetic appends n synthetic events to the track, with
// increasing timestamps and random kind/duration, for use in tests,
// benchmarks, and demo traces. The RNG is an opaque boundary
// collaborator (spec's external-collaborator boundary, §6) - nothing
// in the aggregate, iforest, or step packages depends on how events
// were produced.
func (t *Track) PushSynthetic(pool *BlockPool, rng *rand.Rand, n int) {
	var ts uint64
	ts += rng.Uint64N(100_000)
	for i := 0; i < n; i++ {
		ts += rng.Uint64N(10_000)
		dur := rng.Uint64N(20_000)
		t.Push(pool, Event{
			Kind: uint16(4 + rng.IntN(11)),
			Ts:   Pack(ts),
			Dur:  Pack(dur),
		})
		ts += dur
	}
}
