package tree_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/fzgraph"
	"github.com/katalvlaran/morphtree/imgu8"
	"github.com/katalvlaran/morphtree/tree"
)

func buildTree(t *testing.T, rows, cols int, data []uint8, maxtree bool) *tree.Tree {
	t.Helper()
	im, err := imgu8.FromBytes(rows, cols, data)
	require.NoError(t, err)
	rel, err := adjacency.New(rows, cols, adjacency.Radius8)
	require.NoError(t, err)
	g, err := fzgraph.New(im, rel, fzgraph.DefaultOptions())
	require.NoError(t, err)
	tr, err := tree.New(g, maxtree)
	require.NoError(t, err)
	return tr
}

// bump: a 3×3 image with one bright spot.
var bump = []uint8{
	0, 0, 0,
	0, 2, 0,
	0, 0, 0,
}

// TestBuild_Bump verifies the shape of both dual trees over the bump image.
func TestBuild_Bump(t *testing.T) {
	maxtree := buildTree(t, 3, 3, bump, true)
	require.True(t, maxtree.IsMaxtree())
	require.Equal(t, 2, maxtree.NumNodes())
	root := maxtree.Root()
	require.Equal(t, 0, maxtree.Level(root))
	require.Equal(t, 9, maxtree.Area(root))
	require.Equal(t, 1, maxtree.NumChildren(root))
	child := maxtree.ChildrenIDs(root)[0]
	require.Equal(t, 2, maxtree.Level(child))
	require.Equal(t, 1, maxtree.Area(child))
	require.True(t, maxtree.IsLeaf(child))
	require.Equal(t, child, maxtree.NodeOf(4))
	require.Equal(t, root, maxtree.NodeOf(0))

	mintree := buildTree(t, 3, 3, bump, false)
	require.Equal(t, 2, mintree.NumNodes())
	require.Equal(t, 2, mintree.Level(mintree.Root()))
	leaf := mintree.ChildrenIDs(mintree.Root())[0]
	require.Equal(t, 0, mintree.Level(leaf))
	require.Equal(t, 8, mintree.Area(leaf))
}

// TestRoundTrip verifies build → reconstruct yields the input image, for
// both polarities and several images.
func TestRoundTrip(t *testing.T) {
	images := []struct {
		name       string
		rows, cols int
		data       []uint8
	}{
		{"Bump", 3, 3, bump},
		{"Flat", 2, 4, []uint8{7, 7, 7, 7, 7, 7, 7, 7}},
		{"Gradient", 2, 3, []uint8{0, 1, 2, 3, 4, 5}},
		{"Checker", 2, 2, []uint8{9, 3, 3, 9}},
	}
	for _, im := range images {
		for _, maxtree := range []bool{true, false} {
			tr := buildTree(t, im.rows, im.cols, im.data, maxtree)
			require.NoError(t, tr.ValidateStructure())
			got := tr.ReconstructImage()
			want, _ := imgu8.FromBytes(im.rows, im.cols, im.data)
			require.Truef(t, want.Equal(got), "%s maxtree=%v: reconstruction differs", im.name, maxtree)
		}
	}
}

// TestInvariants_PixelNodeAgreement verifies that reconstruction matches the
// level of the node containing each pixel.
func TestInvariants_PixelNodeAgreement(t *testing.T) {
	tr := buildTree(t, 3, 3, bump, true)
	recon := tr.ReconstructImage()
	for p := 0; p < 9; p++ {
		require.Equal(t, tr.Level(tr.NodeOf(p)), int(recon.Data[p]))
	}
}

// TestLeaves verifies leaf collection on a two-peak image.
func TestLeaves(t *testing.T) {
	peaks := []uint8{
		5, 0, 5,
		0, 0, 0,
	}
	tr := buildTree(t, 2, 3, peaks, true)
	leaves := tr.Leaves()
	require.Len(t, leaves, 2)
	levels := []int{tr.Level(leaves[0]), tr.Level(leaves[1])}
	require.Equal(t, []int{5, 5}, levels)
}

// TestPruneLeaf verifies that pruning a leaf flattens its pixels into the
// parent and keeps the structure valid.
func TestPruneLeaf(t *testing.T) {
	tr := buildTree(t, 3, 3, bump, true)
	leaf := tr.ChildrenIDs(tr.Root())[0]
	tr.Prune(leaf)

	require.NoError(t, tr.ValidateStructure())
	require.Equal(t, 1, tr.NumNodes())
	flat, _ := imgu8.FromBytes(3, 3, make([]uint8, 9))
	require.True(t, flat.Equal(tr.ReconstructImage()))
	// The parent absorbed the zone; the map resolves through the merge.
	require.Equal(t, tr.Root(), tr.NodeOf(4))
	require.Equal(t, 9, tr.NumCNPs(tr.Root()))
}

// TestPruneSubtree verifies pruning an inner node removes its whole subtree.
func TestPruneSubtree(t *testing.T) {
	nested := []uint8{
		0, 0, 0, 0, 0,
		0, 3, 3, 3, 0,
		0, 3, 8, 3, 0,
		0, 3, 3, 3, 0,
		0, 0, 0, 0, 0,
	}
	tr := buildTree(t, 5, 5, nested, true)
	require.Equal(t, 3, tr.NumNodes())
	mid := tr.ChildrenIDs(tr.Root())[0]
	require.Equal(t, 3, tr.Level(mid))

	tr.Prune(mid)
	require.NoError(t, tr.ValidateStructure())
	require.Equal(t, 1, tr.NumNodes())
	flat, _ := imgu8.FromBytes(5, 5, make([]uint8, 25))
	require.True(t, flat.Equal(tr.ReconstructImage()))
}

// TestPruneRoot_Panics verifies the precondition: a single-node tree (or any
// root) cannot be pruned.
func TestPruneRoot_Panics(t *testing.T) {
	tr := buildTree(t, 2, 2, []uint8{1, 1, 1, 1}, true)
	require.Equal(t, 1, tr.NumNodes())
	require.Panics(t, func() { tr.Prune(tr.Root()) })
}

// TestNodesBelowThreshold verifies selection semantics and the ±Inf bounds.
func TestNodesBelowThreshold(t *testing.T) {
	tr := buildTree(t, 3, 3, bump, true)
	attr := make([]float64, tr.Capacity())
	for i := range attr {
		attr[i] = math.Inf(1)
	}
	require.Empty(t, tr.NodesBelowThreshold(attr, 100), "+Inf attributes select nothing")

	for i := range attr {
		attr[i] = math.Inf(-1)
	}
	selected := tr.NodesBelowThreshold(attr, 100)
	require.Len(t, selected, 1, "-Inf selects everything below the root, as subtree roots")
	require.NotContains(t, selected, tr.Root())

	// Area-style selection: the leaf has area 1.
	leaf := tr.ChildrenIDs(tr.Root())[0]
	area := make([]float64, tr.Capacity())
	area[tr.Root()] = 9
	area[leaf] = 1
	require.Equal(t, []tree.NodeID{leaf}, tr.NodesBelowThreshold(area, 1))
	require.Empty(t, tr.NodesBelowThreshold(area, 0.5))
}

// TestTraversals verifies post-order, BFS and path-to-root on the nested
// image.
func TestTraversals(t *testing.T) {
	nested := []uint8{
		0, 0, 0, 0, 0,
		0, 3, 3, 3, 0,
		0, 3, 8, 3, 0,
		0, 3, 3, 3, 0,
		0, 0, 0, 0, 0,
	}
	tr := buildTree(t, 5, 5, nested, true)
	root := tr.Root()
	mid := tr.ChildrenIDs(root)[0]
	top := tr.ChildrenIDs(mid)[0]

	require.Equal(t, []tree.NodeID{top, mid, root}, tr.PostOrderIDs(root))
	require.Equal(t, []tree.NodeID{root, mid, top}, tr.BFSIDs(root))

	var path []tree.NodeID
	tr.ForEachPathToRoot(top, func(n tree.NodeID) bool {
		path = append(path, n)
		return true
	})
	require.Equal(t, []tree.NodeID{top, mid, root}, path)

	require.Equal(t, 2, tr.NumDescendants(root))
	require.Equal(t, 2, tr.NumFlatzoneDescendants(root))

	reps := tr.RepsOfCC(mid)
	sort.Ints(reps)
	require.Equal(t, []int{6, 12}, reps)
}

// TestFreeListReuse verifies released slots are recycled before growth.
func TestFreeListReuse(t *testing.T) {
	tr := buildTree(t, 3, 3, bump, true)
	leaf := tr.ChildrenIDs(tr.Root())[0]
	capBefore := tr.Capacity()
	tr.Prune(leaf)
	require.True(t, tr.IsFree(leaf))

	fresh := tr.CreateNode(0, tr.Root(), 1)
	require.Equal(t, leaf, fresh, "freed slot must be reused")
	require.Equal(t, capBefore, tr.Capacity())
	require.False(t, tr.IsFree(fresh))
}
