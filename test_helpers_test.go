package kdtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kdtree3"
	"github.com/stretchr/testify/require"
)

// newRand returns a seeded RNG so property tests are reproducible.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomPoint returns a uniformly random point in [-extent, extent]^3.
func randomPoint(rnd *rand.Rand, extent float64) kdtree.Point {
	return kdtree.Point{
		X: (rnd.Float64()*2 - 1) * extent,
		Y: (rnd.Float64()*2 - 1) * extent,
		Z: (rnd.Float64()*2 - 1) * extent,
	}
}

// randomPoints returns n random points in [-extent, extent]^3.
func randomPoints(rnd *rand.Rand, n int, extent float64) []kdtree.Point {
	pts := make([]kdtree.Point, n)
	for i := range pts {
		pts[i] = randomPoint(rnd, extent)
	}

	return pts
}

// requireInvariants checks the structural invariants a caller can observe
// through the public API alone (spec P1): Size is never negative, and a
// NearestSearch for the entire live set returns exactly Size() points in
// non-decreasing distance order from an arbitrary query.
func requireInvariants(t *testing.T, tr *kdtree.Tree) {
	t.Helper()

	size := tr.Size()
	require.GreaterOrEqual(t, size, 0)

	if size == 0 {
		got, err := tr.NearestSearch(kdtree.Point{}, 1)
		require.NoError(t, err)
		require.Empty(t, got)

		return
	}

	q := kdtree.Point{X: 1, Y: 2, Z: 3}
	got, err := tr.NearestSearch(q, size)
	require.NoError(t, err)
	require.Len(t, got, size)

	prevDist := -1.0
	for _, p := range got {
		d := sqDistHelper(q, p)
		require.GreaterOrEqual(t, d, prevDist)
		prevDist = d
	}
}
