// Package tsp - route utilities shared by constructors and local search.
//
// Provided helpers:
//   - ValidateCycle: enforce Hamiltonian cycle invariants for any anchor.
//   - ValidateRoute: ValidateCycle anchored at node 0 (constructor output).
//   - reverseSegmentInPlace: in-place segment reversal (2-opt core).
//   - DebugString: compact printable representation for logs/tests.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateCycle checks that route is a closed Hamiltonian cycle over a node
// set of size n, anchored at any node:
//
//	len(route) == n+1, route[0] == route[n],
//	each id v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateCycle(route Route, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: node count %d", ErrInvalidRoute, n)
	}
	if len(route) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidRoute, len(route), n+1)
	}
	if route[0].ID != route[n].ID {
		return fmt.Errorf("%w: not closed, starts at %d and ends at %d", ErrInvalidRoute, route[0].ID, route[n].ID)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i].ID
		if v < 0 || v >= n {
			return fmt.Errorf("%w: id %d out of range at position %d", ErrInvalidRoute, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: id %d visited twice", ErrInvalidRoute, v)
		}
		seen[v] = true
	}

	return nil
}

// ValidateRoute is ValidateCycle plus the constructor convention that the
// route starts and ends at node 0.
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(route Route, n int) error {
	if err := ValidateCycle(route, n); err != nil {
		return err
	}
	if route[0].ID != 0 {
		return fmt.Errorf("%w: must start and end at node 0, got %d", ErrInvalidRoute, route[0].ID)
	}

	return nil
}

// reverseSegmentInPlace reverses route[i..k] (inclusive). Callers guarantee
// 1 ≤ i < k ≤ len(route)-2, so the anchors are never moved.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(route Route, i, k int) {
	for i < k {
		route[i], route[k] = route[k], route[i]
		i++
		k--
	}
}

// DebugString returns a compact representation such as "[0 3 1 2 | 0]",
// where the bar marks the closing node.
//
// Complexity: O(n).
func DebugString(route Route) string {
	if len(route) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		n  = len(route) - 1
	)
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(route[i].ID))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(route[n].ID))
	sb.WriteByte(']')

	return sb.String()
}
