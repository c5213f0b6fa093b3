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

// Package view is the one non-GUI slice of the viewer boundary
// contract (spec's external-collaborator boundary, §6): picking a
// time_step wide enough to cover at least a couple of pixels, and
// quantizing a view range to whole buckets of that width. Pixel-to-ns
// screen mapping, zoom gestures, and painting are GUI concerns and
// stay out of scope.
package view

import (
	"fmt"

	"github.com/trishume/gigatrace/ints"
)

// Quantizer picks a time bucket width from a view range and pixel
// width, and rounds times and ranges down to bucket boundaries.
type Quantizer struct {
	TimeStep uint64
}

// NewQuantizer picks TimeStep so that at least minEventPx pixels'
// worth of nanoseconds fall in each bucket, rounded up to a power of
// two so bucket boundaries are cheap to compute. widthPx is clamped to
// a sane minimum of 1 so a caller-supplied zero or negative pixel
// width can't turn into a division by zero.
func NewQuantizer(t0, t1 uint64, widthPx int) Quantizer {
	const minEventPx = 2
	widthPx = ints.Clamp(widthPx, 1, 1<<30)
	nsPerPx := (t1 - t0) / uint64(widthPx)
	step := ints.NextPow2(nsPerPx * minEventPx)
	if step < 1 {
		step = 1
	}
	return Quantizer{TimeStep: step}
}

// RoundDown rounds x down to the nearest multiple of TimeStep.
func (q Quantizer) RoundDown(x uint64) uint64 {
	return ints.AlignDown(x, q.TimeStep)
}

// Quantize rounds a view range down to whole buckets, widening the
// end by one extra bucket so the range always contains at least one
// full bucket.
func (q Quantizer) Quantize(t0, t1 uint64) (uint64, uint64) {
	qt0, qt1 := q.RoundDown(t0), q.RoundDown(t1)+q.TimeStep
	assertf(ints.IsAligned(qt0, q.TimeStep) && ints.IsAligned(qt1, q.TimeStep),
		"view.Quantize: output range [%d, %d) not aligned to step %d", qt0, qt1, q.TimeStep)
	return qt0, qt1
}

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
