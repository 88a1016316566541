// Package tsp - initial route constructors.
//
// Both constructors anchor node 0 at the first and last position so the
// closing edge is always (route[n-1], 0). They fail before allocating the
// route; a partially built route is never returned.
package tsp

import (
	"fmt"
	"math/rand"
)

// RandomTour returns [0, shuffled(1..n-1)..., 0]. The shuffle is a uniform
// Fisher–Yates over the non-anchor nodes driven by rng (nil ⇒ default seed).
//
// Complexity: O(n).
func RandomTour(ns *NodeSet, rng *rand.Rand) (Route, error) {
	if ns == nil || ns.Len() < 1 {
		return nil, fmt.Errorf("%w: empty node set", ErrInvalidInput)
	}
	n := ns.Len()

	rest := make([]Node, n-1)
	copy(rest, ns.nodes[1:])
	shuffleInPlace(rest, rng)

	route := make(Route, 0, n+1)
	route = append(route, ns.nodes[0])
	route = append(route, rest...)
	route = append(route, ns.nodes[0])

	return route, nil
}

// NearestNeighbourTour starts at node 0 and repeatedly moves to the unvisited
// node with the smallest cached distance from the current one. Ties go to
// the lowest id, so the result is fully deterministic.
//
// Errors: ErrInvalidInput when inputs are nil or the cache does not match
// the node set.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbourTour(ns *NodeSet, dist *Distances) (Route, error) {
	if ns == nil || ns.Len() < 1 {
		return nil, fmt.Errorf("%w: empty node set", ErrInvalidInput)
	}
	if dist == nil || dist.Len() != ns.Len() {
		return nil, fmt.Errorf("%w: distance cache does not match node set", ErrInvalidInput)
	}
	n := ns.Len()

	visited := make([]bool, n)
	route := make(Route, 0, n+1)
	route = append(route, ns.nodes[0])
	visited[0] = true

	var (
		cur, v, step int
		best         int
		bestD, d     float64
	)
	for step = 1; step < n; step++ {
		best = -1
		// Ascending id scan with strict < keeps the lowest id on ties.
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			d = dist.Between(cur, v)
			if best == -1 || d < bestD {
				best, bestD = v, d
			}
		}
		visited[best] = true
		route = append(route, ns.nodes[best])
		cur = best
	}
	route = append(route, ns.nodes[0])

	return route, nil
}
