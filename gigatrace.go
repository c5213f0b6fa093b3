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

// Package gigatrace ties the block pool, tracks, and per-track zoom
// indices together into a single trace a viewer can load and query.
// The core aggregation machinery lives in the trace, aggregate,
// iforest, step, and view subpackages; this package is the glue a
// caller actually constructs and holds onto.
package gigatrace

import (
	"math/rand/v2"

	"github.com/trishume/gigatrace/aggregate"
	"github.com/trishume/gigatrace/iforest"
	"github.com/trishume/gigatrace/ints"
	"github.com/trishume/gigatrace/step"
	"github.com/trishume/gigatrace/trace"
)

// TrackInfo bundles a track with the zoom index built over it. The
// zoom index aggregates LongestEvent so the viewer can always surface
// the single most prominent event inside a bucket that's narrower than
// a pixel.
type TrackInfo struct {
	Name      string
	Track     *trace.Track
	ZoomIndex *iforest.ForestIndex[aggregate.LongestEvent]
}

// Trace is a loaded collection of tracks sharing one block pool.
type Trace struct {
	Pool   *trace.BlockPool
	Tracks []*TrackInfo
}

// NewTrace returns an empty trace with a fresh, shared block pool.
func NewTrace() *Trace {
	return &Trace{Pool: &trace.BlockPool{}}
}

// NewTraceWithCapacityHint is NewTrace, but preallocates the shared
// block pool for roughly eventsHint events total across all tracks
// that will be added to it, for callers (like DemoTrace) that know
// their bulk size up front.
func NewTraceWithCapacityHint(eventsHint int) *Trace {
	return &Trace{Pool: trace.NewBlockPoolWithCapacityHint(eventsHint)}
}

// AddTrack registers an already-populated track under name, building
// its zoom index over the trace's shared pool. Callers must not push
// further events to track after calling AddTrack without rebuilding
// the returned TrackInfo's ZoomIndex.
func (tr *Trace) AddTrack(name string, track *trace.Track) *TrackInfo {
	ti := &TrackInfo{
		Name:      name,
		Track:     track,
		ZoomIndex: iforest.Build(track, tr.Pool, aggregate.LongestEventOps()),
	}
	tr.Tracks = append(tr.Tracks, ti)
	return ti
}

// TimeBounds returns the earliest start time and latest end time
// across every track, and false if the trace has no events at all.
func (tr *Trace) TimeBounds() (lo, hi uint64, ok bool) {
	for _, ti := range tr.Tracks {
		start, has := ti.Track.StartTime(tr.Pool)
		if !has {
			continue
		}
		end, _ := ti.Track.EndTime(tr.Pool)
		if !ok || start < lo {
			lo = start
		}
		if !ok || end > hi {
			hi = end
		}
		ok = true
	}
	return lo, hi, ok
}

// DemoTrace builds a synthetic trace with numTracks tracks, each
// carrying approximately eventsPerTrack events, for smoke-testing a
// viewer without a real capture. Track contents are deterministic
// given a track's name (see trace.TrackSeed), so repeated calls with
// the same arguments produce byte-identical traces.
func DemoTrace(numTracks, eventsPerTrack int) *Trace {
	tr := NewTraceWithCapacityHint(numTracks * eventsPerTrack)
	for i := 0; i < numTracks; i++ {
		name := demoTrackName(i)
		lo, hi := trace.TrackSeed(name)
		rng := rand.New(rand.NewPCG(lo, hi))
		track := &trace.Track{}
		track.PushSynthetic(tr.Pool, rng, eventsPerTrack)
		tr.AddTrack(name, track)
	}
	return tr
}

func demoTrackName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return "track-" + string(letters[i%len(letters)])
}

// AggregateBySteps runs the bucketed step aggregator over one track of
// the trace with the LongestEvent aggregate, delegating to the step
// package and the track's pre-built zoom index. It takes no aggregate
// choice; other aggregates go through step.AggregateBySteps directly
// with an index built for them. This helper covers the common viewer
// case of sweeping LongestEvent over the visible range.
func (tr *Trace) AggregateBySteps(ti *TrackInfo, t0, t1, timeStep uint64) []aggregate.LongestEvent {
	return step.AggregateBySteps(tr.Pool, ti.Track.BlockLocs, ti.ZoomIndex, aggregate.LongestEventOps(), t0, t1, timeStep)
}

// ZoomRangeQuery returns the single most prominent event across the
// half-open block-index range [l, r) of ti's zoom index, for a viewer
// feature (e.g. a minimap) that wants one summary event over an
// arbitrary span without sweeping step.AggregateBySteps. The range is
// clamped to the index's current bounds rather than panicking, since a
// UI-driven range can overshoot a track that's still being appended to.
func (tr *Trace) ZoomRangeQuery(ti *TrackInfo, l, r int) aggregate.LongestEvent {
	iv := ints.Interval{Start: l, End: r}
	if iv.Len() == 0 {
		return aggregate.LongestEvent{}
	}
	return ti.ZoomIndex.ClampedRangeQuery(iv)
}
