// Package tsp_test - benchmarks for the construction and local search stages.
//
// Policy:
//   - Fixed seeds (seedDet) and scattered points; no time limits.
//   - Inputs are built outside the timer; only the stage itself is measured.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourlab/tsp"
)

func benchSetup(b *testing.B, n int) (*tsp.NodeSet, *tsp.Distances) {
	b.Helper()
	ns, err := tsp.BuildNodes(scatter(n, seedDet))
	if err != nil {
		b.Fatal(err)
	}
	dist, err := tsp.NewDistances(ns)
	if err != nil {
		b.Fatal(err)
	}

	return ns, dist
}

// BenchmarkNewDistances_n200 measures the eager O(n²) cache build.
func BenchmarkNewDistances_n200(b *testing.B) {
	ns, _ := benchSetup(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := tsp.NewDistances(ns); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNearestNeighbour_n200 measures greedy construction.
func BenchmarkNearestNeighbour_n200(b *testing.B) {
	ns, dist := benchSetup(b, 200)

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := tsp.NearestNeighbourTour(ns, dist); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTwoOpt_RandomStart_n60 measures 2-opt from a shuffled tour.
func BenchmarkTwoOpt_RandomStart_n60(b *testing.B) {
	ns, dist := benchSetup(b, 60)
	start, err := tsp.RandomTour(ns, tsp.NewRand(seedDet))
	if err != nil {
		b.Fatal(err)
	}
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err = tsp.TwoOpt(start, dist, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTwoOpt_NearestStart_n200 measures 2-opt from the greedy tour.
func BenchmarkTwoOpt_NearestStart_n200(b *testing.B) {
	ns, dist := benchSetup(b, 200)
	start, err := tsp.NearestNeighbourTour(ns, dist)
	if err != nil {
		b.Fatal(err)
	}
	opts := tsp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err = tsp.TwoOpt(start, dist, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTourCost_n200 measures one cost recomputation.
func BenchmarkTourCost_n200(b *testing.B) {
	ns, dist := benchSetup(b, 200)
	route, err := tsp.NearestNeighbourTour(ns, dist)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	var sink float64
	for it := 0; it < b.N; it++ {
		sink += tsp.TourCost(route, dist)
	}
	_ = sink
}
