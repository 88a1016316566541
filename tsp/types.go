package tsp

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors. Callers match them with errors.Is; context may be added by
// wrapping with %w.
var (
	// ErrInvalidInput is returned when the node set cannot form a tour
	// (fewer than MinNodes points, non-finite coordinates, nil inputs).
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrInvalidRoute signals a route that is not a closed Hamiltonian cycle
	// (or, for ValidateRoute, one not anchored at node 0).
	ErrInvalidRoute = errors.New("tsp: invalid route")

	// ErrInvalidOptions signals negative limits or tolerances in Options.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrUnknownInit is returned for an unsupported initial tour method.
	ErrUnknownInit = errors.New("tsp: unknown initial tour method")
)

// MinNodes is the smallest node set that forms a tour (a triangle).
const MinNodes = 3

// Point is a raw input coordinate.
type Point struct {
	X, Y float64
}

// Node is a labelled point. Nodes are immutable once a NodeSet owns them.
type Node struct {
	ID   int
	X, Y float64
}

// Route is a closed visiting order: Route[0] == Route[len-1] and every node
// of the NodeSet appears exactly once among positions [0..len-2]. Any node
// may anchor the cycle; the constructors use node 0.
type Route []Node

// IDs returns the id sequence of the route, closing id included.
func (r Route) IDs() []int {
	ids := make([]int, len(r))
	for i := range r {
		ids[i] = r[i].ID
	}

	return ids
}

// Clone returns an independent copy of the route.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	cp := make(Route, len(r))
	copy(cp, r)

	return cp
}

// Bounds returns the bounding box of the visited nodes. An empty route
// yields two zero points.
func (r Route) Bounds() (lo, hi Point) {
	if len(r) == 0 {
		return Point{}, Point{}
	}
	return boundsOf(r)
}

// InitMethod selects how the initial route is built.
type InitMethod string

const (
	// InitRandom anchors node 0 and shuffles the rest uniformly.
	InitRandom InitMethod = "random"

	// InitNearestNeighbour walks greedily to the closest unvisited node.
	InitNearestNeighbour InitMethod = "nearest"
)

// ParseInitMethod maps a user-facing name to an InitMethod.
// Accepted: "random", "nearest" (aliases "nn", "nearest-neighbour").
func ParseInitMethod(s string) (InitMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return InitRandom, nil
	case "nearest", "nn", "nearest-neighbour", "nearest-neighbor":
		return InitNearestNeighbour, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownInit, s)
	}
}

// Move describes one applied 2-opt move: the segment [I..K] was reversed,
// shortening the tour by Delta. Cost is the running tour cost after the move.
type Move struct {
	I, K  int
	Delta float64
	Cost  float64
}

// Options configures Solve and TwoOpt.
type Options struct {
	// Init selects the initial tour constructor used by Solve.
	Init InitMethod

	// Seed feeds the random constructor. 0 selects the package default seed.
	Seed int64

	// Restarts is the number of independent random starts run by Solve.
	// Values ≤ 1 mean a single run. Ignored for InitNearestNeighbour.
	Restarts int

	// Eps is the improvement threshold: a move is applied only when
	// delta > Eps. Zero means strict improvement.
	Eps float64

	// MaxMoves caps the number of applied moves per 2-opt run (0 = unlimited).
	MaxMoves int

	// TimeLimit caps the wall-clock time of each 2-opt run (0 = unlimited).
	TimeLimit time.Duration

	// OnImprove, when set, is called after every applied move.
	OnImprove func(Move)
}

// DefaultOptions returns nearest-neighbour construction, a single run,
// strict improvement and no caps.
func DefaultOptions() Options {
	return Options{
		Init:     InitNearestNeighbour,
		Restarts: 1,
	}
}

// Result is the outcome of a 2-opt run.
type Result struct {
	// Route is the improved closed route.
	Route Route

	// Cost is the total length of Route (rounded to 1e-9).
	Cost float64

	// Initial is the cost of the route the search started from.
	Initial float64

	// Moves is the number of applied 2-opt moves.
	Moves int

	// Sweeps counts the scans started, including the final scan that found
	// nothing to improve.
	Sweeps int

	// Converged is true when the last sweep found no improving move, i.e.
	// Route is a 2-opt local optimum. False when a cap stopped the search.
	Converged bool
}
