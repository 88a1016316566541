// Package tsp - pipeline dispatcher.
//
// Solve wires the whole pipeline for a node set: distances, initial route,
// 2-opt. With InitRandom and Restarts > 1 every restart draws from its own
// RNG stream derived from Options.Seed, and the cheapest result wins (the
// earliest restart on equal cost). Restarts run one after another.
package tsp

import (
	"fmt"
	"math/rand"
)

// Solve builds the distance cache for ns and delegates to SolveWithDistances.
//
// Complexity: O(n²) for the cache plus the cost of each 2-opt run.
func Solve(ns *NodeSet, opts Options) (Result, error) {
	if ns == nil {
		return Result{}, fmt.Errorf("%w: nil node set", ErrInvalidInput)
	}
	dist, err := NewDistances(ns)
	if err != nil {
		return Result{}, err
	}

	return SolveWithDistances(ns, dist, opts)
}

// SolveWithDistances runs the pipeline against an existing distance cache.
//
// Errors: ErrInvalidInput, ErrInvalidOptions, ErrUnknownInit.
func SolveWithDistances(ns *NodeSet, dist *Distances, opts Options) (Result, error) {
	if ns == nil || dist == nil || dist.Len() != ns.Len() {
		return Result{}, fmt.Errorf("%w: node set and distance cache do not match", ErrInvalidInput)
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if opts.Restarts < 0 {
		return Result{}, fmt.Errorf("%w: restarts must be ≥ 0, got %d", ErrInvalidOptions, opts.Restarts)
	}
	if _, err := ParseInitMethod(string(opts.Init)); err != nil {
		return Result{}, err
	}

	restarts := max(opts.Restarts, 1)
	if opts.Init == InitNearestNeighbour {
		restarts = 1 // deterministic constructor: every restart would repeat the first
	}

	var (
		base  = rngFromSeed(opts.Seed)
		best  Result
		found bool
	)
	for r := 0; r < restarts; r++ {
		start, err := initialRoute(ns, dist, opts.Init, deriveRNG(base, uint64(r)))
		if err != nil {
			return Result{}, err
		}
		res, err := TwoOpt(start, dist, opts)
		if err != nil {
			return Result{}, err
		}
		if !found || res.Cost < best.Cost {
			best, found = res, true
		}
	}

	return best, nil
}

// initialRoute dispatches to the constructor selected by method.
func initialRoute(ns *NodeSet, dist *Distances, method InitMethod, rng *rand.Rand) (Route, error) {
	switch method {
	case InitRandom:
		return RandomTour(ns, rng)
	case InitNearestNeighbour:
		return NearestNeighbourTour(ns, dist)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInit, method)
	}
}
