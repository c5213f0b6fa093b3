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

package view

import "testing"

func TestNewQuantizerStepIsPowerOfTwo(t *testing.T) {
	q := NewQuantizer(0, 1_000_000, 1000)
	if q.TimeStep == 0 || q.TimeStep&(q.TimeStep-1) != 0 {
		t.Fatalf("TimeStep = %d, want a power of two", q.TimeStep)
	}
}

func TestNewQuantizerCoversMinEventPx(t *testing.T) {
	t0, t1 := uint64(0), uint64(1_000_000)
	widthPx := 1000
	q := NewQuantizer(t0, t1, widthPx)
	nsPerPx := (t1 - t0) / uint64(widthPx)
	if q.TimeStep < nsPerPx*2 {
		t.Fatalf("TimeStep = %d, want >= %d (2px worth of ns)", q.TimeStep, nsPerPx*2)
	}
}

func TestRoundDownIsAMultipleOfTimeStep(t *testing.T) {
	q := Quantizer{TimeStep: 16}
	for _, x := range []uint64{0, 1, 15, 16, 17, 1000, 1<<40 + 3} {
		got := q.RoundDown(x)
		if got > x {
			t.Fatalf("RoundDown(%d) = %d, greater than input", x, got)
		}
		if got%q.TimeStep != 0 {
			t.Fatalf("RoundDown(%d) = %d, not a multiple of %d", x, got, q.TimeStep)
		}
		if x-got >= q.TimeStep {
			t.Fatalf("RoundDown(%d) = %d, too far below input", x, got)
		}
	}
}

func TestQuantizeWidensAndAligns(t *testing.T) {
	q := Quantizer{TimeStep: 10}
	qt0, qt1 := q.Quantize(13, 147)
	if qt0 != 10 {
		t.Fatalf("qt0 = %d, want 10", qt0)
	}
	if qt1 != 150 {
		t.Fatalf("qt1 = %d, want 150", qt1)
	}
	if (qt1-qt0)%q.TimeStep != 0 {
		t.Fatalf("quantized range %d is not a whole number of buckets", qt1-qt0)
	}
}

func TestQuantizeAlwaysCoversAtLeastOneBucket(t *testing.T) {
	q := Quantizer{TimeStep: 100}
	qt0, qt1 := q.Quantize(50, 50)
	if qt1-qt0 < q.TimeStep {
		t.Fatalf("degenerate range produced a sub-bucket span: [%d, %d)", qt0, qt1)
	}
}
