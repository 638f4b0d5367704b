package tree

// Construction follows the classic counting-sort + union-find scheme, run
// over flat zones instead of raw pixels: zones are ordered by gray level,
// merged bottom-up through the static adjacency of the freshly built graph,
// and emitted as nodes in a single ascending pass. Plateau collapsing falls
// out of the ordering — a zone whose union-find parent sits at the same gray
// level joins that parent's node.

import (
	"github.com/katalvlaran/morphtree/fzgraph"
)

// New builds a component tree of the requested polarity over the flat zones
// of g. The graph must be freshly constructed (no merges yet); both dual
// trees of an image are expected to share one graph.
// Complexity: O(N·α(N)) over N flat zones, plus O(pixels) for areas.
func New(g fzgraph.Graph, maxtree bool) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	t := &Tree{
		maxtree:     maxtree,
		graph:       g,
		pixelToNode: make([]NodeID, g.Image().Size()),
	}
	for i := range t.pixelToNode {
		t.pixelToNode[i] = InvalidNode
	}

	orderedReps := t.countingSortFlatzones()
	t.createByUnionFind(orderedReps)
	t.fillRepCNPs()
	t.ComputeAreas(t.root)

	return t, nil
}

// countingSortFlatzones orders flat-zone representatives by gray level:
// ascending for a max-tree, descending for a min-tree. Stable within a level
// (slot order), so construction is deterministic.
func (t *Tree) countingSortFlatzones() []int {
	view := t.graph.Pixels().View()
	img := t.graph.Image().Data
	numFZ := t.graph.Pixels().NumSets()

	maxValue := 0
	for i := 0; i < numFZ; i++ {
		if v := int(img[view.IndexToPixel[i]]); v > maxValue {
			maxValue = v
		}
	}

	key := func(gray int) int { return gray }
	if !t.maxtree {
		key = func(gray int) int { return maxValue - gray }
	}

	counter := make([]int, maxValue+1)
	for i := 0; i < numFZ; i++ {
		counter[key(int(img[view.IndexToPixel[i]]))]++
	}
	for i := 1; i <= maxValue; i++ {
		counter[i] += counter[i-1]
	}

	ordered := make([]int, numFZ)
	for i := numFZ - 1; i >= 0; i-- {
		rep := view.IndexToPixel[i]
		k := key(int(img[rep]))
		counter[k]--
		ordered[counter[k]] = rep
	}

	return ordered
}

// createByUnionFind runs the bottom-up union-find over zone slots in reverse
// order (deepest levels first), then emits nodes in forward order. A zone
// whose parent zone shares its gray level maps onto the parent's node.
func (t *Tree) createByUnionFind(orderedReps []int) {
	view := t.graph.Pixels().View()
	img := t.graph.Image().Data
	numFZ := t.graph.Pixels().NumSets()

	zPar := make([]int, numFZ)
	parent := make([]int, numFZ)
	for i := range zPar {
		zPar[i] = -1
		parent[i] = -1
	}
	findRoot := func(p int) int {
		for zPar[p] != p {
			zPar[p] = zPar[zPar[p]]
			p = zPar[p]
		}
		return p
	}

	for i := numFZ - 1; i >= 0; i-- {
		p := orderedReps[i]
		slotP := view.PixelToIndex[p]
		zPar[slotP] = slotP
		parent[slotP] = slotP
		t.graph.ForEachAdjacentFlatzoneStatic(p, func(q int) {
			slotQ := view.PixelToIndex[q]
			if zPar[slotQ] == -1 {
				return
			}
			r := findRoot(slotQ)
			if slotP != r {
				parent[r] = slotP
				zPar[r] = slotP
			}
		})
	}

	// Node emission: parents always precede children in ordered traversal,
	// including equal-level chains, so every lookup below is already filled.
	numNodes := 0
	for i := 0; i < numFZ; i++ {
		slot := view.PixelToIndex[orderedReps[i]]
		if parent[slot] == slot || img[orderedReps[i]] != img[view.IndexToPixel[parent[slot]]] {
			numNodes++
		}
	}
	t.arena.reserve(numNodes)

	for i := 0; i < numFZ; i++ {
		p := orderedReps[i]
		slotP := view.PixelToIndex[p]
		slotParent := parent[slotP]
		pParent := view.IndexToPixel[slotParent]

		switch {
		case slotP == slotParent:
			t.root = t.CreateNode(p, InvalidNode, int(img[p]))
			t.pixelToNode[p] = t.root
		case img[p] != img[pParent]:
			t.pixelToNode[p] = t.CreateNode(p, t.pixelToNode[pParent], int(img[p]))
		default:
			t.pixelToNode[p] = t.pixelToNode[pParent]
		}
	}
}

// fillRepCNPs assigns every flat zone to its owning node's rep list, in slot
// order for determinism.
func (t *Tree) fillRepCNPs() {
	view := t.graph.Pixels().View()
	for slot := 0; slot < t.graph.Pixels().NumSets(); slot++ {
		rep := view.IndexToPixel[slot]
		id := t.pixelToNode[rep]
		t.arena.repCNPs[id] = append(t.arena.repCNPs[id], rep)
	}
}

// ComputeAreas recomputes area over the subtree of id in post-order:
// own zone pixels plus the children's areas.
// Complexity: O(nodes + zones) of the subtree.
func (t *Tree) ComputeAreas(id NodeID) {
	for _, n := range t.PostOrderIDs(id) {
		area := t.NumCNPs(n)
		t.ForEachChild(n, func(c NodeID) {
			area += int(t.arena.area[c])
		})
		t.arena.area[n] = int32(area)
	}
}
