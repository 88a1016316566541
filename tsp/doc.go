// Package tsp computes locally optimal tours for the planar Euclidean
// Travelling Salesman Problem.
//
// The pipeline is:
//
//	BuildNodes → NewDistances → RandomTour | NearestNeighbourTour → TwoOpt
//
// Stages:
//   - BuildNodes validates the input points and assigns dense ids 0..n-1.
//   - NewDistances computes the symmetric Euclidean distance matrix once.
//   - RandomTour and NearestNeighbourTour build a closed route anchored at node 0.
//   - TwoOpt reverses route segments while doing so strictly shortens the tour
//     (first improvement, scan restarts after every applied move). It accepts
//     any closed cycle and keeps its anchor in place.
//   - TourCost sums the route edges; Solve wires the whole pipeline and
//     optionally runs several seeded random restarts.
//
// Everything is single-threaded and deterministic for a fixed seed.
// A *rand.Rand is never shared between goroutines.
//
// Complexity:
//   - Distances: O(n²) time and memory.
//   - Nearest neighbour: O(n²).
//   - 2-opt: O(n²) per sweep; the number of sweeps is instance dependent.
package tsp
