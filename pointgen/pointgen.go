// Package pointgen samples random problem instances for the tour solvers.
//
// Points are drawn uniformly inside an axis-aligned rectangle from an
// explicitly passed *rand.Rand, so every instance is reproducible from its
// seed. The package never reads global random state.
package pointgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tourlab/tsp"
)

var (
	// ErrInvalidCount is returned when fewer than one point is requested.
	ErrInvalidCount = errors.New("pointgen: count must be ≥ 1")

	// ErrInvalidRect is returned for empty, inverted or non-finite rectangles.
	ErrInvalidRect = errors.New("pointgen: invalid rectangle")
)

// Rect is the sampling area [MinX, MaxX) × [MinY, MaxY).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Default returns the rectangle [0, width) × [0, height).
func Default(width, height float64) Rect {
	return Rect{MaxX: width, MaxY: height}
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Validate reports ErrInvalidRect unless the rectangle has finite corners
// and positive width and height.
func (r Rect) Validate() error {
	for _, v := range []float64{r.MinX, r.MinY, r.MaxX, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite corner %v", ErrInvalidRect, r)
		}
	}
	if !(r.Width() > 0) || !(r.Height() > 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidRect, r.Width(), r.Height())
	}

	return nil
}

// Uniform draws n points uniformly inside r. X and Y are drawn alternately
// from rng, point by point. rng==nil uses tsp.NewRand(0).
//
// Complexity: O(n).
func Uniform(n int, r Rect, rng *rand.Rand) ([]tsp.Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = tsp.NewRand(0)
	}

	var (
		pts  = make([]tsp.Point, n)
		w, h = r.Width(), r.Height()
	)
	for i := range pts {
		pts[i].X = r.MinX + rng.Float64()*w
		pts[i].Y = r.MinY + rng.Float64()*h
	}

	return pts, nil
}

// Nodes is Uniform followed by tsp.BuildNodes.
func Nodes(n int, r Rect, rng *rand.Rand) (*tsp.NodeSet, error) {
	pts, err := Uniform(n, r, rng)
	if err != nil {
		return nil, err
	}

	return tsp.BuildNodes(pts)
}
