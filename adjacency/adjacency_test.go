package adjacency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNew_Errors verifies input validation.
func TestNew_Errors(t *testing.T) {
	_, err := New(0, 5, Radius8)
	require.ErrorIs(t, err, ErrEmptyGrid)
	_, err = New(5, 5, 0.5)
	require.ErrorIs(t, err, ErrBadRadius)
}

// TestDegree verifies that radius 1.0 yields 4-connectivity and 1.5 yields 8.
func TestDegree(t *testing.T) {
	r4, err := New(3, 3, Radius4)
	require.NoError(t, err)
	require.Equal(t, 4, r4.Degree())

	r8, err := New(3, 3, Radius8)
	require.NoError(t, err)
	require.Equal(t, 8, r8.Degree())
}

// collect gathers ForEachNeighbor output.
func collect(r *Relation, p int) []int {
	var out []int
	r.ForEachNeighbor(p, func(q int) { out = append(out, q) })
	return out
}

// TestForEachNeighbor_CenterAndBorder verifies in-bounds filtering on a 3×3
// grid: the center sees all 8 neighbors, a corner only 3.
func TestForEachNeighbor_CenterAndBorder(t *testing.T) {
	r, err := New(3, 3, Radius8)
	require.NoError(t, err)

	require.ElementsMatch(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, collect(r, 4))
	require.ElementsMatch(t, []int{1, 3, 4}, collect(r, 0))
	require.ElementsMatch(t, []int{4, 5, 7}, collect(r, 8))
}

// TestForEachNeighbor_Deterministic verifies two enumerations agree.
func TestForEachNeighbor_Deterministic(t *testing.T) {
	r, err := New(4, 4, Radius8)
	require.NoError(t, err)
	require.Equal(t, collect(r, 5), collect(r, 5))
}

// TestForward_EmitsEachPairOnce verifies a full-grid forward sweep emits
// each unordered neighboring pair exactly once.
func TestForward_EmitsEachPairOnce(t *testing.T) {
	r, err := New(3, 4, Radius8)
	require.NoError(t, err)

	seen := map[[2]int]int{}
	for p := 0; p < 12; p++ {
		r.ForEachNeighborForward(p, func(q int) {
			key := [2]int{p, q}
			if q < p {
				key = [2]int{q, p}
			}
			seen[key]++
		})
	}
	total := 0
	for pair, n := range seen {
		require.Equalf(t, 1, n, "pair %v emitted %d times", pair, n)
		require.True(t, r.IsAdjacent(pair[0], pair[1]))
		total++
	}
	// 3×4 grid, 8-connectivity: 17 horizontal+vertical edges plus 12 diagonals.
	require.Equal(t, 29, total)
}

// TestIsAdjacent verifies symmetry and the row-wrap guard: the last pixel of
// one row is not adjacent to the first pixel of the next.
func TestIsAdjacent(t *testing.T) {
	r, err := New(2, 4, Radius4)
	require.NoError(t, err)
	require.True(t, r.IsAdjacent(0, 1))
	require.True(t, r.IsAdjacent(1, 0))
	require.True(t, r.IsAdjacent(0, 4))
	require.False(t, r.IsAdjacent(3, 4))
	require.False(t, r.IsAdjacent(2, 2))
}
