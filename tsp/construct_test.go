package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTour_ExampleShape(t *testing.T) {
	ns, _ := mustSetup(t, examplePoints())

	r, err := tsp.RandomTour(ns, tsp.NewRand(seedDet))
	require.NoError(t, err)
	require.Len(t, r, 6)
	assert.Equal(t, 0, r[0].ID)
	assert.Equal(t, 0, r[5].ID)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, r.IDs()[1:5])
}

func TestRandomTour_IsPermutationAcrossSeeds(t *testing.T) {
	ns, _ := mustSetup(t, scatter(30, 1))
	for seed := int64(0); seed < 20; seed++ {
		r, err := tsp.RandomTour(ns, tsp.NewRand(seed))
		require.NoError(t, err)
		requireTour(t, r, ns.Len())
	}
}

func TestRandomTour_DeterministicForSeed(t *testing.T) {
	ns, _ := mustSetup(t, scatter(20, 2))

	a, err := tsp.RandomTour(ns, tsp.NewRand(42))
	require.NoError(t, err)
	b, err := tsp.RandomTour(ns, tsp.NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, a.IDs(), b.IDs())

	// nil falls back to the default stream, which equals seed 0.
	c, err := tsp.RandomTour(ns, nil)
	require.NoError(t, err)
	d, err := tsp.RandomTour(ns, tsp.NewRand(0))
	require.NoError(t, err)
	assert.Equal(t, c.IDs(), d.IDs())
}

// TestRandomTour_Uniform checks every ordering of the three non-anchor nodes
// shows up with roughly equal frequency.
func TestRandomTour_Uniform(t *testing.T) {
	ns, _ := mustSetup(t, unitSquare())
	rng := rand.New(rand.NewSource(99))

	const draws = 6000
	counts := map[[3]int]int{}
	for i := 0; i < draws; i++ {
		r, err := tsp.RandomTour(ns, rng)
		require.NoError(t, err)
		counts[[3]int{r[1].ID, r[2].ID, r[3].ID}]++
	}

	require.Len(t, counts, 6)
	for perm, c := range counts {
		assert.InDelta(t, draws/6, c, 200, "permutation %v", perm)
	}
}

func TestRandomTour_RejectsNil(t *testing.T) {
	_, err := tsp.RandomTour(nil, nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}

// TestNearestNeighbourTour_ExamplePinned pins the greedy order of the demo
// instance: 3 is closest to the origin, then 4, 2 and finally 1.
func TestNearestNeighbourTour_ExamplePinned(t *testing.T) {
	ns, dist := mustSetup(t, examplePoints())

	r, err := tsp.NearestNeighbourTour(ns, dist)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4, 2, 1, 0}, r.IDs())
	assert.InDelta(t, 296.9967726332, tsp.TourCost(r, dist), 1e-9)
}

func TestNearestNeighbourTour_TiesGoToLowestID(t *testing.T) {
	// Nodes 1..4 are all at distance 1 from node 0; 1 and 3 coincide.
	pts := []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: -1, Y: 0}}
	ns, dist := mustSetup(t, pts)

	r, err := tsp.NearestNeighbourTour(ns, dist)
	require.NoError(t, err)
	// 0 → 1 (tie with 2, 3, 4), 1 → 3 (distance 0), 3 → 2 (√2 beats 2), 2 → 4.
	assert.Equal(t, []int{0, 1, 3, 2, 4, 0}, r.IDs())
}

func TestNearestNeighbourTour_IsPermutation(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ns, dist := mustSetup(t, scatter(40, seed))
		r, err := tsp.NearestNeighbourTour(ns, dist)
		require.NoError(t, err)
		requireTour(t, r, ns.Len())
	}
}

func TestNearestNeighbourTour_IdenticalPoints(t *testing.T) {
	pts := []tsp.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}}
	ns, dist := mustSetup(t, pts)

	r, err := tsp.NearestNeighbourTour(ns, dist)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, r.IDs())
	assert.Equal(t, 0.0, tsp.TourCost(r, dist))
}

func TestNearestNeighbourTour_MismatchedCache(t *testing.T) {
	ns, _ := mustSetup(t, examplePoints())
	_, other := mustSetup(t, unitSquare())

	_, err := tsp.NearestNeighbourTour(ns, other)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)

	_, err = tsp.NearestNeighbourTour(ns, nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidInput)
}
