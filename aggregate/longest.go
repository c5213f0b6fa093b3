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

package aggregate

import "github.com/trishume/gigatrace/trace"

// LongestEvent is the event with maximum duration in a range, or the
// zero value with Has == false for an empty range. Ties break toward
// the first event seen, i.e. the left argument of Combine.
type LongestEvent struct {
	Event trace.Event
	Has   bool
}

// LongestEventOps returns the Ops for LongestEvent. FromBlock is
// overridden to scan the block directly rather than fold
// event-by-event, since a block's events are already in hand as a
// slice.
func LongestEventOps() Ops[LongestEvent] {
	return Ops[LongestEvent]{
		Empty: func() LongestEvent { return LongestEvent{} },
		FromEvent: func(ev trace.Event) LongestEvent {
			return LongestEvent{Event: ev, Has: true}
		},
		Combine: longestCombine,
		FromBlock: func(b *trace.Block) LongestEvent {
			var best LongestEvent
			for _, ev := range b.Events() {
				if !best.Has || ev.Dur.Unpack() > best.Event.Dur.Unpack() {
					best = LongestEvent{Event: ev, Has: true}
				}
			}
			return best
		},
	}
}

func longestCombine(a, b LongestEvent) LongestEvent {
	switch {
	case !a.Has:
		return b
	case !b.Has:
		return a
	case b.Event.Dur.Unpack() > a.Event.Dur.Unpack():
		return b
	default:
		return a
	}
}
