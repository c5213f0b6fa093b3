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

// Command gigatrace-bench generates a synthetic trace in parallel
// (one goroutine per track, seeded independently so results don't
// depend on goroutine scheduling order), builds a zoom index over
// each track, and times the bucketed step aggregator across the
// whole trace at a given viewer pixel width. It optionally writes a
// compressed report of the run. This tool, not the core packages, is
// where persistence and compression concerns live.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/trishume/gigatrace"
	"github.com/trishume/gigatrace/aggregate"
	"github.com/trishume/gigatrace/trace"
	"github.com/trishume/gigatrace/view"
)

func fatalf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// genTrack builds one track's synthetic events against its own block
// pool. Seeding is derived solely from name, so running this
// concurrently across tracks produces a result independent of which
// goroutine finishes first.
func genTrack(name string, events int) (*trace.BlockPool, *trace.Track) {
	pool := trace.NewBlockPoolWithCapacityHint(events)
	track := &trace.Track{}
	lo, hi := trace.TrackSeed(name)
	rng := rand.New(rand.NewPCG(lo, hi))
	track.PushSynthetic(pool, rng, events)
	return pool, track
}

// mergeInto replays every event of src (built against srcPool) into
// tr as a new track named name. Replaying is a plain sequential copy;
// only generation itself is parallelized.
func mergeInto(tr *gigatrace.Trace, name string, srcPool *trace.BlockPool, src *trace.Track) {
	dst := &trace.Track{}
	for _, bi := range src.BlockLocs {
		for _, ev := range srcPool.Get(bi).Events() {
			dst.Push(tr.Pool, ev)
		}
	}
	tr.AddTrack(name, dst)
}

func buildTraceParallel(numTracks, eventsPerTrack int) *gigatrace.Trace {
	type result struct {
		name string
		pool *trace.BlockPool
		trk  *trace.Track
	}
	results := make([]result, numTracks)
	var wg sync.WaitGroup
	for i := 0; i < numTracks; i++ {
		i := i
		name := fmt.Sprintf("track-%02d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool, trk := genTrack(name, eventsPerTrack)
			results[i] = result{name, pool, trk}
		}()
	}
	wg.Wait()

	tr := gigatrace.NewTrace()
	for _, r := range results {
		mergeInto(tr, r.name, r.pool, r.trk)
	}
	return tr
}

func benchStep(tr *gigatrace.Trace, widthPx int, runFor time.Duration) (buckets int, min time.Duration) {
	lo, hi, ok := tr.TimeBounds()
	if !ok {
		return 0, 0
	}
	q := view.NewQuantizer(lo, hi, widthPx)
	qt0, qt1 := q.Quantize(lo, hi)

	deadline := time.Now().Add(runFor)
	for time.Now().Before(deadline) {
		start := time.Now()
		var out []aggregate.LongestEvent
		for _, ti := range tr.Tracks {
			out = tr.AggregateBySteps(ti, qt0, qt1, q.TimeStep)
		}
		dur := time.Since(start)
		if min == 0 || dur < min {
			min = dur
		}
		buckets = len(out)
	}
	return buckets, min
}

func writeReport(path string, body string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(body)); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func main() {
	var tracks, events, widthPx int
	var runFor time.Duration
	var report string
	flag.IntVar(&tracks, "tracks", 8, "number of synthetic tracks")
	flag.IntVar(&events, "events", 200_000, "events per track")
	flag.IntVar(&widthPx, "width", 1920, "viewer width in pixels, for bucket sizing")
	flag.DurationVar(&runFor, "for", 2*time.Second, "how long to repeat the step benchmark")
	flag.StringVar(&report, "report", "", "path to write a zstd-compressed report (optional)")
	flag.Parse()

	runID := uuid.New()
	genStart := time.Now()
	tr := buildTraceParallel(tracks, events)
	genDur := time.Since(genStart)

	lo, hi, ok := tr.TimeBounds()
	if !ok {
		fatalf("generated trace has no events")
	}

	buckets, min := benchStep(tr, widthPx, runFor)
	totalEvents := tracks * events
	multiplier := float64(time.Second) / float64(min)
	eventsPerSec := float64(totalEvents) * multiplier

	summary := fmt.Sprintf(
		"run=%s\ntracks=%d events_per_track=%d total_events=%d\nspan_ns=[%d,%d)\ngen_time=%s\nstep_width_px=%d buckets=%d min_step_time=%s events_per_sec=%.3g\n",
		runID, tracks, events, totalEvents, lo, hi, genDur, widthPx, buckets, min, eventsPerSec,
	)
	fmt.Print(summary)

	if report != "" {
		if err := writeReport(report, summary); err != nil {
			fatalf("writing report: %s", err)
		}
	}
}
