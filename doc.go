// Package tourlab builds and improves tours for the planar Euclidean
// travelling-salesman problem.
//
// 🚀 What is in the box?
//
//	• Node sets with dense ids and an eager Euclidean distance cache
//	• Starting tours: uniform random shuffle or nearest neighbour
//	• 2-opt local search with move caps, time limits and restarts
//	• Point sampling, PNG rendering and the tourplot CLI
//
// Under the hood, everything is organized into packages:
//
//	matrix/          - dense row-major float64 matrix + distance-matrix validators
//	tsp/             - nodes, distances, constructors, 2-opt, cost, Solve
//	pointgen/        - seeded uniform points in a rectangle
//	render/          - route → PNG (fogleman/gg)
//	internal/config/ - TOML settings for tourplot
//	internal/cli/    - cobra commands: solve, bench, version
//	cmd/tourplot/    - program entry point
//
// Quick ASCII example:
//
//	    3───2          3   2
//	     ╲ ╱           │   │
//	     ╱ ╲    2-opt  │   │
//	    0───1   ───▶   0───1
//
//	a crossing tour over the unit square is uncrossed by one reversal.
//
//	go install github.com/katalvlaran/tourlab/cmd/tourplot@latest
package tourlab
