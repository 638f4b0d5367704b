package fzgraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/fzgraph"
	"github.com/katalvlaran/morphtree/imgu8"
)

// variants enumerates the three implementations under their shared contract.
var variants = []struct {
	name string
	opts fzgraph.Options
}{
	{"FullEdges", fzgraph.Options{Variant: fzgraph.VariantFullEdges}},
	{"Boundary", fzgraph.Options{Variant: fzgraph.VariantBoundary}},
	{"FullScan", fzgraph.Options{Variant: fzgraph.VariantFullScan}},
}

func build(t *testing.T, rows, cols int, data []uint8, opts fzgraph.Options) fzgraph.Graph {
	t.Helper()
	im, err := imgu8.FromBytes(rows, cols, data)
	require.NoError(t, err)
	rel, err := adjacency.New(rows, cols, adjacency.Radius8)
	require.NoError(t, err)
	g, err := fzgraph.New(im, rel, opts)
	require.NoError(t, err)
	return g
}

func neighbors(g fzgraph.Graph, rep int) []int {
	var out []int
	g.ForEachAdjacentFlatzone(rep, func(n int) { out = append(out, n) })
	sort.Ints(out)
	return out
}

// checker: a 2×2 image with four distinct levels — four singleton zones.
var checker = []uint8{1, 2, 3, 4}

// stripes: 3×3 with three horizontal stripes.
var stripes = []uint8{
	5, 5, 5,
	9, 9, 9,
	5, 5, 5,
}

// TestConstruction verifies zone discovery and representatives per variant.
func TestConstruction(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			g := build(t, 3, 3, stripes, v.opts)
			require.Equal(t, 3, g.NumFlatZones())
			// The representative of a zone is its smallest pixel index.
			require.Equal(t, 0, g.FindRepresentative(2))
			require.Equal(t, 3, g.FindRepresentative(5))
			require.Equal(t, 6, g.FindRepresentative(8))
			require.Equal(t, 3, g.FlatzoneSize(4))

			var pixels []int
			g.ForEachPixelOfFlatzone(4, func(p int) { pixels = append(pixels, p) })
			sort.Ints(pixels)
			require.Equal(t, []int{3, 4, 5}, pixels)
		})
	}
}

// TestFindRepresentative_Idempotent verifies find(find(p)) == find(p).
func TestFindRepresentative_Idempotent(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			g := build(t, 2, 2, checker, v.opts)
			for p := 0; p < 4; p++ {
				rep := g.FindRepresentative(p)
				require.Equal(t, rep, g.FindRepresentative(rep))
			}
		})
	}
}

// TestAdjacency verifies each neighbor is visited exactly once and only
// zones sharing an edge appear.
func TestAdjacency(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			g := build(t, 3, 3, stripes, v.opts)
			// Middle stripe touches both outer stripes.
			require.Equal(t, []int{0, 6}, neighbors(g, 3))
			// Outer stripes touch only the middle one (8-connectivity does
			// not leap across it).
			require.Equal(t, []int{3}, neighbors(g, 0))
			require.Equal(t, []int{3}, neighbors(g, 6))

			// Static variant agrees before any merge.
			var static []int
			g.ForEachAdjacentFlatzoneStatic(3, func(n int) { static = append(static, n) })
			sort.Ints(static)
			require.Equal(t, []int{0, 6}, static)
		})
	}
}

// TestMergeAdjacentCandidates verifies the contract: only actually adjacent
// candidates merge, the winner is the minimum representative, and the
// candidate slice ends with exactly the surviving entries plus the winner.
func TestMergeAdjacentCandidates(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			g := build(t, 3, 3, stripes, v.opts)

			// Base: middle stripe (rep 3). Candidates: both outer stripes.
			cands := []int{0, 6}
			winner := g.MergeAdjacentCandidatesInPlace(3, &cands)
			require.Equal(t, 0, winner, "winner must be the smallest rep")
			require.Equal(t, []int{0}, cands, "candidates collapse to the canonical winner")
			require.Equal(t, 1, g.NumFlatZones())
			require.Equal(t, 9, g.FlatzoneSize(8))
			for p := 0; p < 9; p++ {
				require.Equal(t, 0, g.FindRepresentative(p))
			}
		})
	}
}

// TestMergeAdjacentCandidates_NonAdjacentSurvive verifies that a candidate
// not touching the base zone is left in place.
func TestMergeAdjacentCandidates_NonAdjacentSurvive(t *testing.T) {
	// 1×5 row: zones {0}, {1}, {2}, {3}, {4} with alternating levels.
	row := []uint8{0, 7, 0, 7, 0}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			im, err := imgu8.FromBytes(1, 5, row)
			require.NoError(t, err)
			rel, err := adjacency.New(1, 5, adjacency.Radius4)
			require.NoError(t, err)
			g, err := fzgraph.New(im, rel, v.opts)
			require.NoError(t, err)
			require.Equal(t, 5, g.NumFlatZones())

			// Base zone {1}; candidate {0} is adjacent, {4} is not.
			cands := []int{0, 4}
			winner := g.MergeAdjacentCandidatesInPlace(1, &cands)
			require.Equal(t, 0, winner)
			require.ElementsMatch(t, []int{0, 4}, cands)
			require.Equal(t, 4, g.NumFlatZones())
			require.Equal(t, 0, g.FindRepresentative(1))
			require.Equal(t, 4, g.FindRepresentative(4))
		})
	}
}

// TestMergeBases verifies base unification plus candidate attachment, with
// and without a winner hint.
func TestMergeBases(t *testing.T) {
	row := []uint8{3, 8, 3, 8, 3}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			im, err := imgu8.FromBytes(1, 5, row)
			require.NoError(t, err)
			rel, err := adjacency.New(1, 5, adjacency.Radius4)
			require.NoError(t, err)
			g, err := fzgraph.New(im, rel, v.opts)
			require.NoError(t, err)

			// Bases {1} and {2} are adjacent; candidate {3} touches {2}.
			cands := []int{3}
			winner := g.MergeBasesWithAdjacentCandidatesInPlace([]int{1, 2}, &cands, 1)
			require.Equal(t, 1, winner)
			require.Equal(t, []int{1}, cands)
			require.Equal(t, 3, g.NumFlatZones())
			require.Equal(t, 3, g.FlatzoneSize(1))
			require.Equal(t, 1, g.FindRepresentative(3))
			require.Equal(t, 0, g.FindRepresentative(0))

			// Empty bases: contract returns -1.
			require.Equal(t, -1, g.MergeBasesWithAdjacentCandidatesInPlace(nil, &cands, -1))
		})
	}
}

// TestVariantEquivalence runs an identical merge sequence on all three
// variants and compares the resulting zone partitions.
func TestVariantEquivalence(t *testing.T) {
	img := []uint8{
		4, 4, 7, 7, 2,
		4, 9, 7, 2, 2,
		4, 4, 7, 7, 2,
	}
	partition := func(opts fzgraph.Options) map[int]int {
		g := build(t, 3, 5, img, opts)
		cands := []int{g.FindRepresentative(2)}
		g.MergeAdjacentCandidatesInPlace(0, &cands)
		out := map[int]int{}
		for p := 0; p < 15; p++ {
			out[p] = g.FindRepresentative(p)
		}
		return out
	}

	want := partition(fzgraph.Options{Variant: fzgraph.VariantFullEdges})
	for _, v := range variants[1:] {
		t.Run(v.name, func(t *testing.T) {
			require.Equal(t, want, partition(v.opts))
		})
	}
}

// TestConstruction_Errors verifies nil and mismatch guards.
func TestConstruction_Errors(t *testing.T) {
	rel, err := adjacency.New(2, 2, adjacency.Radius4)
	require.NoError(t, err)
	_, err = fzgraph.New(nil, rel, fzgraph.DefaultOptions())
	require.ErrorIs(t, err, fzgraph.ErrNilImage)

	im, err := imgu8.FromBytes(3, 3, make([]uint8, 9))
	require.NoError(t, err)
	_, err = fzgraph.New(im, rel, fzgraph.DefaultOptions())
	require.ErrorIs(t, err, fzgraph.ErrDimensionMismatch)

	_, err = fzgraph.New(im, nil, fzgraph.DefaultOptions())
	require.ErrorIs(t, err, fzgraph.ErrNilAdjacency)

	rel3, err := adjacency.New(3, 3, adjacency.Radius4)
	require.NoError(t, err)
	_, err = fzgraph.New(im, rel3, fzgraph.Options{Variant: fzgraph.Variant(99)})
	require.ErrorIs(t, err, fzgraph.ErrUnknownVariant)
}
