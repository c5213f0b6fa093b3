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

func TestIntervalEmpty(t *testing.T) {
	cases := []struct {
		in   Interval
		want bool
	}{
		{Interval{0, 0}, true},
		{Interval{5, 5}, true},
		{Interval{5, 3}, true},
		{Interval{0, 1}, false},
	}
	for _, c := range cases {
		if got := c.in.Empty(); got != c.want {
			t.Errorf("%v.Empty() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIntervalLen(t *testing.T) {
	cases := []struct {
		in   Interval
		want int
	}{
		{Interval{0, 0}, 0},
		{Interval{5, 3}, 0},
		{Interval{2, 9}, 7},
	}
	for _, c := range cases {
		if got := c.in.Len(); got != c.want {
			t.Errorf("%v.Len() = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIntervalIntersect(t *testing.T) {
	cases := []struct {
		a, b, want Interval
	}{
		{Interval{0, 10}, Interval{3, 7}, Interval{3, 7}},
		{Interval{0, 5}, Interval{5, 10}, Interval{0, 0}},
		{Interval{0, 5}, Interval{8, 10}, Interval{0, 0}},
		{Interval{0, 10}, Interval{-5, 20}, Interval{0, 10}},
	}
	for _, c := range cases {
		if got := c.a.Intersect(c.b); got != c.want {
			t.Errorf("%v.Intersect(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
