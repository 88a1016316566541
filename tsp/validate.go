// Package tsp - validation helpers shared by the constructors and 2-opt.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending detail.
package tsp

import (
	"fmt"
	"math"
)

// validatePoints checks the minimum size and finiteness of the input.
// Complexity: O(n).
func validatePoints(points []Point) error {
	if len(points) < MinNodes {
		return fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidInput, MinNodes, len(points))
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: point %d has a non-finite coordinate (%g, %g)", ErrInvalidInput, i, p.X, p.Y)
		}
	}

	return nil
}

// validateOptions checks the knobs of a single 2-opt run. Init and Restarts
// are checked by SolveWithDistances since TwoOpt does not use them.
func validateOptions(opts Options) error {
	switch {
	case opts.Eps < 0 || math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0):
		return fmt.Errorf("%w: eps must be finite and ≥ 0, got %g", ErrInvalidOptions, opts.Eps)
	case opts.MaxMoves < 0:
		return fmt.Errorf("%w: max moves must be ≥ 0, got %d", ErrInvalidOptions, opts.MaxMoves)
	case opts.TimeLimit < 0:
		return fmt.Errorf("%w: time limit must be ≥ 0, got %s", ErrInvalidOptions, opts.TimeLimit)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
