package adjust

import "github.com/katalvlaran/morphtree/tree"

// properParts collects, for one BySubtree call, the flat zones of the pruned
// subtree mapped into the target tree: each zone's representative paired
// with the node that carries it there, the removal marks for carriers that
// end up with zero zones, the bounding node tauStar, and the smallest
// representative seen (the merge winner hint).
type properParts struct {
	maxtree bool

	reps     []int         // trigger zone representatives, in discovery order
	carriers []tree.NodeID // parallel: node of the target tree owning each zone

	removedMark  []bool
	marked       []tree.NodeID // marks to clear on reset
	removedCount int

	tauStar    tree.NodeID
	repTauStar int
	fzWinner   int
}

// reset clears the collections without freeing storage and records the
// target polarity for tauStar election.
func (c *properParts) reset(maxtree bool, capacity int) {
	c.maxtree = maxtree
	c.reps = c.reps[:0]
	c.carriers = c.carriers[:0]
	for _, id := range c.marked {
		c.removedMark[id] = false
	}
	c.marked = c.marked[:0]
	c.removedCount = 0
	c.tauStar = tree.InvalidNode
	c.repTauStar = -1
	c.fzWinner = -1

	if len(c.removedMark) < capacity {
		c.removedMark = append(c.removedMark, make([]bool, capacity-len(c.removedMark))...)
	}
}

// addNode records one trigger zone and its carrier, promoting the carrier to
// tauStar when its level lies strictly closer to the trigger side: the
// maximum level for a min-tree target, the minimum for a max-tree target.
func (c *properParts) addNode(t *tree.Tree, carrier tree.NodeID, rep int) {
	prevLevel := -1
	if c.tauStar != tree.InvalidNode {
		prevLevel = t.Level(c.tauStar)
	}
	c.reps = append(c.reps, rep)
	c.carriers = append(c.carriers, carrier)

	level := t.Level(carrier)
	if c.tauStar == tree.InvalidNode ||
		(!c.maxtree && level > prevLevel) || (c.maxtree && level < prevLevel) {
		c.tauStar = carrier
		c.repTauStar = rep
	}
	if c.fzWinner == -1 || rep < c.fzWinner {
		c.fzWinner = rep
	}
}

// removeFlatzones deletes every collected zone from its carrier and marks
// carriers whose zone count reached zero.
func (c *properParts) removeFlatzones(t *tree.Tree) {
	for i, rep := range c.reps {
		carrier := c.carriers[i]
		t.RemoveFlatzone(carrier, rep)
		if t.NumFlatzones(carrier) == 0 && !c.removedMark[carrier] {
			c.removedMark[carrier] = true
			c.marked = append(c.marked, carrier)
			c.removedCount++
		}
	}
}

// isRemoved answers the walk's union-node election queries.
func (c *properParts) isRemoved(id tree.NodeID) bool { return c.removedMark[id] }

// BySubtree adjusts one tree of a dual pair after an entire subtree is
// pruned in the other. Unlike ByLeaf, the trigger spans several flat zones
// at several levels; the proper-parts collector tracks their carriers in the
// target tree and the removal marks the walk consults.
type BySubtree struct {
	engine
	collector properParts
}

// NewBySubtree builds a subtree-driven adjuster for a dual tree pair sharing
// one flat-zone graph.
func NewBySubtree(mintree, maxtree *tree.Tree) *BySubtree {
	return &BySubtree{engine: newEngine(mintree, maxtree)}
}

// UpdateTree rewires t after the upcoming removal of the subtree rooted at
// rootSubtree in the complementary tree. The caller prunes that subtree
// afterwards.
//
// Precondition (panic): rootSubtree is not the complementary tree's root.
func (a *BySubtree) UpdateTree(t *tree.Tree, rootSubtree tree.NodeID) {
	other := a.other(t)
	if rootSubtree == other.Root() {
		panic("adjust: subtree trigger is the root")
	}

	b := other.Level(other.Parent(rootSubtree)) // g(p)

	// Collect the proper parts: every trigger zone with its carrier in t.
	a.collector.reset(t.IsMaxtree(), t.Capacity())
	for _, n := range other.BFSIDs(rootSubtree) {
		for _, rep := range other.RepCNPs(n) {
			a.collector.addNode(t, t.NodeOf(rep), rep)
		}
	}

	tauStar := a.collector.tauStar
	tauStarLvl := t.Level(tauStar)

	// Build F and Fb from the zones' neighborhoods.
	a.buildCollections(t, a.collector.reps, tauStar, b)

	connectAtB := func(u tree.NodeID) {
		t.MergeRepsIntoConnectedFlatzone(u, a.collector.reps, a.collector.fzWinner)
		a.collector.removeFlatzones(t)
	}

	first := a.f.firstLambda()
	seed := tree.InvalidNode
	if first != b {
		seed = a.materializeAtB(t, tauStar, b, a.collector.fzWinner, connectAtB)
	}

	nodeUnion := a.mergeWalk(t, first, tauStarLvl, b, seed, a.collector.isRemoved, connectAtB)
	a.terminate(t, tauStar, nodeUnion, a.collector.isRemoved(tauStar))
}

// AdjustMinTree updates the min-tree for each max-tree subtree about to be
// pruned, then prunes it.
func (a *BySubtree) AdjustMinTree(mintree, maxtree *tree.Tree, nodesToPrune []tree.NodeID) {
	for _, rSubtree := range nodesToPrune {
		a.UpdateTree(mintree, rSubtree)
		maxtree.Prune(rSubtree)
	}
}

// AdjustMaxTree is the dual of AdjustMinTree.
func (a *BySubtree) AdjustMaxTree(maxtree, mintree *tree.Tree, nodesToPrune []tree.NodeID) {
	for _, rSubtree := range nodesToPrune {
		a.UpdateTree(maxtree, rSubtree)
		mintree.Prune(rSubtree)
	}
}
