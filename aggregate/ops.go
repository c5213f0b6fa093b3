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

// Package aggregate is the monoid algebra over per-event summaries:
// an empty element, a lift from a single event, and an associative
// combine. Go has no static trait dispatch, so the capability set is
// carried as an explicit value (Ops[A]) instead of a generic
// interface with zero-argument constructors - the same "pass behavior
// as a typed function value" idiom the rest of this module's generics
// use (c.f. a sort-style less func passed alongside a type parameter).
package aggregate

import "github.com/trishume/gigatrace/trace"

// Ops is the capability set spec'd for an aggregate type A: an
// identity element, a lift from a single event, an associative
// combine, and a lift from a whole block. FromBlock is optional; when
// nil, Block falls back to folding Combine over FromEvent(ev) for
// every event in the block, which is always correct but may be
// slower than an aggregate-specific scan (e.g. LongestEventOps
// overrides it).
type Ops[A any] struct {
	Empty     func() A
	FromEvent func(trace.Event) A
	Combine   func(a, b A) A
	FromBlock func(*trace.Block) A
}

// Block lifts a whole block to an aggregate, using ops.FromBlock if
// set, otherwise the default fold over ops.FromEvent/ops.Combine.
func (ops Ops[A]) Block(b *trace.Block) A {
	if ops.FromBlock != nil {
		return ops.FromBlock(b)
	}
	acc := ops.Empty()
	for _, ev := range b.Events() {
		acc = ops.Combine(acc, ops.FromEvent(ev))
	}
	return acc
}
