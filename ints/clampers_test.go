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

import "testing"

func TestMinMax(t *testing.T) {
	cases := []struct{ x, y, min, max int }{
		{1, 2, 1, 2},
		{2, 1, 1, 2},
		{5, 5, 5, 5},
		{-3, 4, -3, 4},
	}
	for _, c := range cases {
		if got := Min(c.x, c.y); got != c.min {
			t.Errorf("Min(%d, %d) = %d, want %d", c.x, c.y, got, c.min)
		}
		if got := Max(c.x, c.y); got != c.max {
			t.Errorf("Max(%d, %d) = %d, want %d", c.x, c.y, got, c.max)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ x, lo, hi, want int }{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", c.x, c.lo, c.hi, got, c.want)
		}
	}
}
