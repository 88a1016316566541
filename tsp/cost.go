// Package tsp - cost accounting.
//
// TourCost is a pure function of the route and the distance cache. 2-opt
// tracks cost incrementally while it runs and recomputes it with TourCost
// once at the end, so reported costs never carry accumulated drift.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums dist.Between(route[j], route[j+1]) for j in 0..len(route)-2.
// Routes with fewer than two nodes cost 0.
//
// Complexity: O(n).
func TourCost(route Route, dist *Distances) float64 {
	var sum float64
	for j := 0; j+1 < len(route); j++ {
		sum += dist.Between(route[j].ID, route[j+1].ID)
	}

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision, keeping reported
// costs stable across platforms.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
