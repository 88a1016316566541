// Package tsp - 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed route.
// For a candidate pair (i,k) with a=T[i−1], b=T[i], c=T[k], d=T[k+1]:
//
//	removed = w(a,b) + w(c,d)
//	added   = w(a,c) + w(b,d)
//	delta   = removed − added
//
// A move is applied when delta > Eps by reversing T[i..k] in place, which
// swaps the two edges while keeping the route a Hamiltonian cycle.
//
// Policy:
//   - Scan order is i ascending, then k ascending, 1 ≤ i < k ≤ len(T)−2, so the
//     anchor positions never move.
//   - After an applied move the scan restarts from i = 1.
//   - The search stops when a full scan applies nothing (local optimum), or
//     earlier when MaxMoves/TimeLimit is reached.
//
// Termination: every applied move strictly decreases the tour cost, which is
// bounded below, and there are finitely many routes.
//
// Complexity:
//   - One scan: O(n²) candidate checks, each O(1) against the cache.
//   - Each applied move costs O(k−i).
package tsp

import (
	"fmt"
	"time"
)

// TwoOpt improves a copy of route until no single segment reversal shortens
// it. Any closed cycle is accepted; its first node stays the anchor. The
// caller's route is left untouched.
//
// Errors: ErrInvalidInput (nil cache), ErrInvalidOptions, ErrInvalidRoute.
func TwoOpt(route Route, dist *Distances, opts Options) (Result, error) {
	if dist == nil {
		return Result{}, fmt.Errorf("%w: nil distance cache", ErrInvalidInput)
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := ValidateCycle(route, dist.Len()); err != nil {
		return Result{}, err
	}

	cur := route.Clone()
	cost := TourCost(cur, dist)
	res := Result{Initial: round1e9(cost)}

	var (
		useDeadline bool
		deadline    time.Time
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}

	last := len(cur) - 2 // highest index k may take; cur[last+1] is the closing anchor

	for {
		res.Sweeps++
		improved := false

		var (
			a, b, c, d          int
			removed, added, dlt float64
			i, k                int
		)
	scan:
		for i = 1; i < last; i++ {
			for k = i + 1; k <= last; k++ {
				a = cur[i-1].ID
				b = cur[i].ID
				c = cur[k].ID
				d = cur[k+1].ID

				removed = dist.Between(a, b) + dist.Between(c, d)
				added = dist.Between(a, c) + dist.Between(b, d)
				dlt = removed - added
				if !(dlt > opts.Eps) {
					continue
				}

				reverseSegmentInPlace(cur, i, k)
				cost -= dlt
				res.Moves++
				improved = true
				if opts.OnImprove != nil {
					opts.OnImprove(Move{I: i, K: k, Delta: dlt, Cost: cost})
				}

				break scan
			}
		}

		if !improved {
			res.Converged = true
			break
		}
		if opts.MaxMoves > 0 && res.Moves >= opts.MaxMoves {
			break
		}
		if useDeadline && time.Now().After(deadline) {
			break
		}
	}

	// Segment reversal cannot break the cycle; a failure here is a bug.
	if err := ValidateCycle(cur, dist.Len()); err != nil {
		panic(fmt.Sprintf("tsp: 2-opt broke route invariant: %v", err))
	}

	res.Route = cur
	res.Cost = round1e9(TourCost(cur, dist))

	return res, nil
}
