package tree

import "github.com/katalvlaran/morphtree/imgu8"

// Prune removes the subtree rooted at id and merges its pixels into the
// parent: the subtree's flat zones (one connected region) are unioned, via
// the shared graph, with whichever zones of the parent they touch; the
// parent's zone list is rewritten so absorbed entries collapse into the
// canonical winner. The subtree's nodes are disconnected and released.
//
// The parent's area is untouched — it already counted the pruned pixels.
// Pruning the root is a precondition violation and panics.
func (t *Tree) Prune(id NodeID) {
	if id == t.root {
		panic("tree: prune of the root")
	}
	parent := t.arena.parentID[id]

	subtree := t.PostOrderIDs(id)
	subtreeReps := t.RepsOfCC(id)

	parentReps := t.arena.repCNPs[parent]
	winner := t.graph.MergeBasesWithAdjacentCandidatesInPlace(subtreeReps, &parentReps, -1)
	t.arena.repCNPs[parent] = parentReps
	t.pixelToNode[winner] = parent

	// Post-order release: children are gone before each node is freed.
	t.RemoveChild(parent, id, false)
	for _, n := range subtree {
		t.arena.repCNPs[n] = t.arena.repCNPs[n][:0]
		if n != id {
			t.Disconnect(n, true)
		} else {
			t.arena.release(n)
			t.numNodes--
		}
	}
}

// NodesBelowThreshold collects, top-down, the highest nodes whose attribute
// value is <= threshold. The BFS does not descend into a selected node:
// descendants share its fate as one pruned subtree. The root is never
// selected — it cannot be pruned. attr is indexed by NodeID; released slots
// are never read.
func (t *Tree) NodesBelowThreshold(attr []float64, threshold float64) []NodeID {
	var out []NodeID
	queue := t.ChildrenIDs(t.root)
	for qi := 0; qi < len(queue); qi++ {
		id := queue[qi]
		if attr[id] > threshold {
			t.ForEachChild(id, func(c NodeID) { queue = append(queue, c) })
		} else {
			out = append(out, id)
		}
	}

	return out
}

// ReconstructImage materializes the image represented by the tree: every
// pixel of every node's own zones is written at the node's level.
// Complexity: O(pixels).
func (t *Tree) ReconstructImage() *imgu8.Image {
	im := t.graph.Image()
	out, _ := imgu8.New(im.Rows, im.Cols)
	t.ForEachValidNodeID(func(id NodeID) {
		level := uint8(t.arena.level[id])
		for _, rep := range t.arena.repCNPs[id] {
			t.graph.ForEachPixelOfFlatzone(rep, func(p int) {
				out.Data[p] = level
			})
		}
	})

	return out
}
