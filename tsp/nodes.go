package tsp

import "fmt"

// NodeSet is the immutable problem input: nodes with dense ids 0..n-1 in
// input order.
type NodeSet struct {
	nodes []Node
}

// BuildNodes assigns ids 0..n-1 to points in input order.
//
// Errors: ErrInvalidInput when fewer than MinNodes points are given or a
// coordinate is NaN/±Inf.
//
// Complexity: O(n).
func BuildNodes(points []Point) (*NodeSet, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	nodes := make([]Node, len(points))
	for i, p := range points {
		nodes[i] = Node{ID: i, X: p.X, Y: p.Y}
	}

	return &NodeSet{nodes: nodes}, nil
}

// PointsFromPairs converts [x, y] pairs into Points.
func PointsFromPairs(pairs [][2]float64) []Point {
	pts := make([]Point, len(pairs))
	for i, p := range pairs {
		pts[i] = Point{X: p[0], Y: p[1]}
	}

	return pts
}

// Len returns the number of nodes.
func (ns *NodeSet) Len() int {
	return len(ns.nodes)
}

// Node returns the node with the given id. An out-of-range id is a caller
// bug and panics.
func (ns *NodeSet) Node(id int) Node {
	if id < 0 || id >= len(ns.nodes) {
		panic(fmt.Sprintf("tsp: node id %d outside [0,%d)", id, len(ns.nodes)))
	}

	return ns.nodes[id]
}

// Nodes returns a copy of all nodes ordered by id.
func (ns *NodeSet) Nodes() []Node {
	cp := make([]Node, len(ns.nodes))
	copy(cp, ns.nodes)

	return cp
}

// Bounds returns the lower-left and upper-right corners of the axis-aligned
// bounding box of the node set.
//
// Complexity: O(n).
func (ns *NodeSet) Bounds() (lo, hi Point) {
	return boundsOf(ns.nodes)
}

// boundsOf computes the bounding box of a non-empty node slice.
func boundsOf(nodes []Node) (lo, hi Point) {
	lo = Point{X: nodes[0].X, Y: nodes[0].Y}
	hi = lo
	for _, nd := range nodes[1:] {
		lo.X = min(lo.X, nd.X)
		lo.Y = min(lo.Y, nd.Y)
		hi.X = max(hi.X, nd.X)
		hi.Y = max(hi.Y, nd.Y)
	}

	return lo, hi
}
