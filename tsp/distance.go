// Package tsp - the distance cache shared by constructors and local search.
//
// Distances are computed eagerly, once per NodeSet, and stored in a
// *matrix.Dense. Every pair is written through SetSymmetric so d(a,b) and
// d(b,a) are the same float64, and the diagonal stays exactly zero. The
// cache is read-only after NewDistances returns.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourlab/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal re-checks.
const symTol = 1e-12

// Distances is a symmetric matrix of pairwise Euclidean distances.
type Distances struct {
	n int
	m *matrix.Dense
}

// NewDistances computes sqrt((xa-xb)² + (ya-yb)²) for every pair of nodes.
//
// Errors: ErrInvalidInput for a nil or empty node set.
//
// Complexity: O(n²) time and memory.
func NewDistances(ns *NodeSet) (*Distances, error) {
	if ns == nil || ns.Len() == 0 {
		return nil, fmt.Errorf("%w: empty node set", ErrInvalidInput)
	}
	n := ns.Len()
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		a, b Node
	)
	for i = 0; i < n; i++ {
		a = ns.nodes[i]
		for j = i + 1; j < n; j++ {
			b = ns.nodes[j]
			if err = m.SetSymmetric(i, j, euclidean(a, b)); err != nil {
				return nil, err
			}
		}
	}

	return &Distances{n: n, m: m}, nil
}

func euclidean(a, b Node) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Len returns the number of nodes covered by the cache.
func (d *Distances) Len() int {
	return d.n
}

// Between returns the cached distance between nodes a and b in O(1).
// Ids outside [0, Len()) violate the caller contract and panic.
func (d *Distances) Between(a, b int) float64 {
	v, err := d.m.At(a, b)
	if err != nil {
		panic(fmt.Sprintf("tsp: distance lookup: %v", err))
	}

	return v
}

// Matrix returns an independent copy of the underlying matrix for callers
// that work with matrix.Matrix directly.
func (d *Distances) Matrix() matrix.Matrix {
	return d.m.Clone()
}

// Validate re-checks the zero diagonal and symmetry of the cache.
// Complexity: O(n²).
func (d *Distances) Validate() error {
	return matrix.ValidateDistanceMatrix(d.m, symTol)
}
