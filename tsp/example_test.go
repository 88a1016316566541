// Package tsp_test provides runnable, deterministic examples of the public
// API on the five-node demo instance.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/tourlab/tsp"
)

// Example builds the pipeline by hand: nodes, distances, a greedy route.
func Example() {
	ns, err := tsp.BuildNodes([]tsp.Point{
		{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 25, Y: 25}, {X: 35, Y: 50},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	dist, err := tsp.NewDistances(ns)
	if err != nil {
		fmt.Println(err)
		return
	}

	route, err := tsp.NearestNeighbourTour(ns, dist)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tsp.DebugString(route))
	fmt.Printf("%.3f\n", tsp.TourCost(route, dist))

	// Output:
	// [0 3 4 2 1 | 0]
	// 296.997
}

// ExampleTwoOpt improves the identity order of the demo instance.
func ExampleTwoOpt() {
	ns, _ := tsp.BuildNodes([]tsp.Point{
		{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 25, Y: 25}, {X: 35, Y: 50},
	})
	dist, _ := tsp.NewDistances(ns)

	start := tsp.Route(ns.Nodes())
	start = append(start, ns.Node(0))

	res, err := tsp.TwoOpt(start, dist, tsp.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tsp.DebugString(res.Route), res.Moves, res.Converged)
	fmt.Printf("%.3f -> %.3f\n", res.Initial, res.Cost)

	// Output:
	// [0 3 4 2 1 | 0] 3 true
	// 349.530 -> 296.997
}

// ExampleSolve runs the default pipeline (nearest neighbour, then 2-opt).
func ExampleSolve() {
	ns, _ := tsp.BuildNodes([]tsp.Point{
		{X: 0, Y: 0}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 25, Y: 25}, {X: 35, Y: 50},
	})

	res, err := tsp.Solve(ns, tsp.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Route.IDs())
	fmt.Printf("%.3f\n", res.Cost)

	// Output:
	// [0 3 4 2 1 0]
	// 296.997
}
