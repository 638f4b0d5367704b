package adjust

import "github.com/katalvlaran/morphtree/tree"

// ByLeaf adjusts one tree of a dual pair after a leaf is pruned in the
// other. The leaf owns exactly one flat zone; its pixels drop (or rise) from
// the leaf's level a to its parent's level b, and UpdateTree rewires the
// target tree between those levels so it remains the component tree of the
// filtered image.
type ByLeaf struct {
	engine
}

// NewByLeaf builds a leaf-driven adjuster for a dual tree pair sharing one
// flat-zone graph.
func NewByLeaf(mintree, maxtree *tree.Tree) *ByLeaf {
	return &ByLeaf{engine: newEngine(mintree, maxtree)}
}

// UpdateTree rewires t after the upcoming removal of leaf in the
// complementary tree. The caller prunes the leaf afterwards.
//
// Preconditions (panic): leaf is a leaf of the complementary tree and not
// its root.
func (a *ByLeaf) UpdateTree(t *tree.Tree, leaf tree.NodeID) {
	other := a.other(t)
	if leaf == other.Root() {
		panic("adjust: leaf trigger is the root")
	}
	if !other.IsLeaf(leaf) {
		panic("adjust: ByLeaf trigger is not a leaf")
	}
	if other.NumFlatzones(leaf) != 1 {
		panic("adjust: leaf owns more than one flat zone")
	}

	b := other.Level(other.Parent(leaf))   // g(p): level after removal
	rep := other.RepCNPs(leaf)[0]          // the leaf's single flat zone
	tauL := t.NodeOf(rep)                  // carrier of that zone in t
	tauLvl := t.Level(tauL)                // f(p) seen from t
	tauSingle := t.NumFlatzones(tauL) == 1 // tauL dies once the zone leaves

	triggerReps := []int{rep}
	a.buildCollections(t, triggerReps, tauL, b)

	connectAtB := func(u tree.NodeID) {
		t.MergeRepsIntoConnectedFlatzone(u, triggerReps, -1)
		t.RemoveFlatzone(tauL, rep)
	}

	first := a.f.firstLambda()
	seed := tree.InvalidNode
	if first != b {
		seed = a.materializeAtB(t, tauL, b, rep, connectAtB)
	}

	nodeUnion := a.mergeWalk(t, first, tauLvl, b, seed, nil, connectAtB)
	a.terminate(t, tauL, nodeUnion, tauSingle)
}

// AdjustMinTree walks each pruned max-tree subtree in post-order — every
// node is a leaf by the time its turn comes — updating the min-tree before
// each leaf prune.
func (a *ByLeaf) AdjustMinTree(mintree, maxtree *tree.Tree, nodesToPrune []tree.NodeID) {
	for _, node := range nodesToPrune {
		for _, lmax := range maxtree.PostOrderIDs(node) {
			a.UpdateTree(mintree, lmax)
			maxtree.Prune(lmax)
		}
	}
}

// AdjustMaxTree is the dual of AdjustMinTree: leaves pruned from the
// min-tree, max-tree updated.
func (a *ByLeaf) AdjustMaxTree(maxtree, mintree *tree.Tree, nodesToPrune []tree.NodeID) {
	for _, node := range nodesToPrune {
		for _, lmin := range mintree.PostOrderIDs(node) {
			a.UpdateTree(maxtree, lmin)
			mintree.Prune(lmin)
		}
	}
}
