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

package ints

import "golang.org/x/exp/constraints"

// Lsp returns the least-significant set bit of x (the "lowest set
// power"), or 0 if x is 0. This is the x & (-x) trick.
func Lsp[T constraints.Integer](x T) T {
	return x & -x
}

// Msp returns the highest power of two <= x, or 0 if x is 0.
func Msp[T constraints.Unsigned](x T) T {
	if x == 0 {
		return 0
	}
	var p T = 1
	for p<<1 != 0 && p<<1 <= x {
		p <<= 1
	}
	return p
}

// TrailingOnes returns the number of consecutive set bits starting at
// bit 0 of x.
func TrailingOnes[T constraints.Unsigned](x T) int {
	n := 0
	for x&1 == 1 {
		n++
		x >>= 1
	}
	return n
}

// IsPow2 reports whether x is an exact power of two.
func IsPow2[T constraints.Unsigned](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// NextPow2 returns the smallest power of two >= x (1 if x == 0).
func NextPow2[T constraints.Unsigned](x T) T {
	if x <= 1 {
		return 1
	}
	return Msp(x-1) << 1
}
