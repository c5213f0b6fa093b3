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

// EventCount is the number of events in a range.
type EventCount uint64

// EventCountOps returns the Ops for EventCount. FromBlock is
// overridden to a direct len() read rather than folding one
// FromEvent call per event.
func EventCountOps() Ops[EventCount] {
	return Ops[EventCount]{
		Empty:     func() EventCount { return 0 },
		FromEvent: func(trace.Event) EventCount { return 1 },
		Combine:   func(a, b EventCount) EventCount { return a + b },
		FromBlock: func(b *trace.Block) EventCount { return EventCount(b.Len) },
	}
}

// TsSum is the sum of event timestamps in a range. Primarily useful
// for testing the forest index and step aggregator, since it is
// sensitive to event identity and order in a way EventCount is not.
type TsSum uint64

// TsSumOps returns the Ops for TsSum.
func TsSumOps() Ops[TsSum] {
	return Ops[TsSum]{
		Empty:     func() TsSum { return 0 },
		FromEvent: func(ev trace.Event) TsSum { return TsSum(ev.Ts.Unpack()) },
		Combine:   func(a, b TsSum) TsSum { return a + b },
	}
}

// KindHistogramBuckets is the number of distinct event kinds
// KindHistogram tracks; kinds are bucketed by Kind % KindHistogramBuckets.
const KindHistogramBuckets = 16

// KindHistogram is a per-kind event count over a range, useful for a
// "density by event kind" summary row in a timeline viewer.
type KindHistogram struct {
	Counts [KindHistogramBuckets]uint64
}

// KindHistogramOps returns the Ops for KindHistogram.
func KindHistogramOps() Ops[KindHistogram] {
	return Ops[KindHistogram]{
		Empty: func() KindHistogram { return KindHistogram{} },
		FromEvent: func(ev trace.Event) KindHistogram {
			var h KindHistogram
			h.Counts[int(ev.Kind)%KindHistogramBuckets] = 1
			return h
		},
		Combine: func(a, b KindHistogram) KindHistogram {
			var out KindHistogram
			for i := range out.Counts {
				out.Counts[i] = a.Counts[i] + b.Counts[i]
			}
			return out
		},
	}
}
