// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsCost is the tolerance for comparing reported (rounded) costs.
	epsCost = 1e-9

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)
)

// examplePoints is the five-node delivery instance used across tests.
func examplePoints() []tsp.Point {
	return []tsp.Point{
		{X: 0, Y: 0},
		{X: 100, Y: 50},
		{X: 50, Y: 100},
		{X: 25, Y: 25},
		{X: 35, Y: 50},
	}
}

// unitSquare lists the corners of the unit square counter-clockwise.
func unitSquare() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// scatter samples n points uniformly in [0,100)² from a fixed seed.
func scatter(n int, seed int64) []tsp.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]tsp.Point, n)
	for i := range pts {
		pts[i] = tsp.Point{X: 100 * r.Float64(), Y: 100 * r.Float64()}
	}

	return pts
}

// circle places n points on a circle of radius 10, counter-clockwise.
func circle(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = tsp.Point{X: 10 * math.Cos(th), Y: 10 * math.Sin(th)}
	}

	return pts
}

// mustSetup builds the node set and the distance cache or fails the test.
func mustSetup(t *testing.T, pts []tsp.Point) (*tsp.NodeSet, *tsp.Distances) {
	t.Helper()
	ns, err := tsp.BuildNodes(pts)
	require.NoError(t, err)
	dist, err := tsp.NewDistances(ns)
	require.NoError(t, err)

	return ns, dist
}

// routeOf turns an id sequence into a Route over ns.
func routeOf(ns *tsp.NodeSet, ids ...int) tsp.Route {
	r := make(tsp.Route, len(ids))
	for i, id := range ids {
		r[i] = ns.Node(id)
	}

	return r
}

// requireTour asserts the Hamiltonian-cycle invariants for a route over n nodes.
func requireTour(t *testing.T, r tsp.Route, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateRoute(r, n), "route %s", tsp.DebugString(r))
}

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}
