package adjust

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/katalvlaran/morphtree/tree"
)

// engine holds the scratch state shared by the ByLeaf and BySubtree
// algorithms: the dual tree pair, the level-bucketed collection F, the carry
// set Fb of sub-roots discovered outside the adjustment interval, and the
// visited marks used to deduplicate adjacent-node gathering. All buffers are
// reused across calls; only one adjustment call may be active at a time.
type engine struct {
	mintree *tree.Tree
	maxtree *tree.Tree

	f       collectionF
	fb      *set3.Set3[tree.NodeID]
	visited []bool

	adjacentBuf []tree.NodeID
}

func newEngine(mintree, maxtree *tree.Tree) engine {
	if mintree == nil || maxtree == nil {
		panic("adjust: nil tree")
	}
	if mintree.IsMaxtree() || !maxtree.IsMaxtree() {
		panic("adjust: tree polarity mismatch")
	}
	if mintree.Graph() != maxtree.Graph() {
		panic("adjust: trees do not share a flat-zone graph")
	}

	return engine{
		mintree: mintree,
		maxtree: maxtree,
		fb:      set3.Empty[tree.NodeID](),
	}
}

// other returns the complementary tree of t.
func (e *engine) other(t *tree.Tree) *tree.Tree {
	switch t {
	case e.mintree:
		return e.maxtree
	case e.maxtree:
		return e.mintree
	default:
		panic("adjust: tree does not belong to this engine")
	}
}

// ensureCapacity sizes the visited marks for the larger arena.
func (e *engine) ensureCapacity() {
	n := e.mintree.Capacity()
	if m := e.maxtree.Capacity(); m > n {
		n = m
	}
	if len(e.visited) < n {
		e.visited = append(e.visited, make([]bool, n-len(e.visited))...)
	}
}

// adjacentNodes gathers, deduplicated, the nodes of t owning flat zones
// adjacent to any trigger zone and lying beyond the zone's own level in the
// tree's polarity direction (deeper than the trigger in t).
func (e *engine) adjacentNodes(t *tree.Tree, triggerReps []int) []tree.NodeID {
	isMax := t.IsMaxtree()
	g := t.Graph()
	out := e.adjacentBuf[:0]

	for _, rep := range triggerReps {
		gray := t.Level(t.NodeOf(rep))
		g.ForEachAdjacentFlatzone(rep, func(neighRep int) {
			node := t.NodeOf(neighRep)
			if e.visited[node] {
				return
			}
			level := t.Level(node)
			if (isMax && level > gray) || (!isMax && level < gray) {
				e.visited[node] = true
				out = append(out, node)
			}
		})
	}
	for _, n := range out {
		e.visited[n] = false
	}
	e.adjacentBuf = out

	return out
}

// buildCollections classifies, for one adjustment of t, every gathered
// neighbor into F or Fb:
// neighbors inside the closed level interval between b and the trigger contribute
// their parent path up to tauStar; neighbors beyond b contribute the root of
// their maximal subtree on the b-side — into F when that root sits exactly
// at b (or, rare case, when its parent is not tauStar, via the parent's
// path), into Fb otherwise.
func (e *engine) buildCollections(t *tree.Tree, triggerReps []int, tauStar tree.NodeID, b int) {
	isMax := t.IsMaxtree()
	e.ensureCapacity()
	e.f.reset(isMax, b, t.Capacity())
	e.fb = set3.Empty[tree.NodeID]()

	for _, nl := range e.adjacentNodes(t, triggerReps) {
		if level := t.Level(nl); (isMax && level <= b) || (!isMax && level >= b) {
			e.f.addNodesOfPath(t, nl, tauStar)
			continue
		}
		// nl lies beyond b: climb to the last ancestor still beyond the
		// interval on the b-side.
		sub := nl
		t.ForEachPathToRoot(nl, func(n tree.NodeID) bool {
			level := t.Level(n)
			if (isMax && b > level) || (!isMax && b < level) {
				return false
			}
			sub = n
			return true
		})
		switch parent := t.Parent(sub); {
		case t.Level(sub) == b:
			e.f.addNodesOfPath(t, sub, tauStar)
		case parent != tree.InvalidNode && parent != tauStar:
			e.f.addNodesOfPath(t, parent, tauStar)
		default:
			e.fb.Add(sub)
		}
	}
}

// attachFb re-parents every carry node under nodeUnion.
func (e *engine) attachFb(t *tree.Tree, nodeUnion tree.NodeID) {
	for id := range e.fb.MutableRange() {
		t.Disconnect(id, false)
		t.AddChild(nodeUnion, id)
	}
}

// refreshArea recomputes a node's area as its own pixel count plus the sum
// of its children's areas.
func refreshArea(t *tree.Tree, id tree.NodeID) {
	area := t.NumCNPs(id)
	t.ForEachChild(id, func(c tree.NodeID) { area += t.Area(c) })
	t.SetArea(id, area)
}

// materializeAtB hosts the trigger zones in a fresh node at level b when no
// F bucket exists at that level: the node becomes a child of tauStar, the
// trigger zones merge into it, and the Fb carry set hangs below it.
func (e *engine) materializeAtB(t *tree.Tree, tauStar tree.NodeID, b, seedRep int, connectAtB func(u tree.NodeID)) tree.NodeID {
	newNode := t.CreateNode(seedRep, tauStar, b)
	connectAtB(newNode)
	e.attachFb(t, newNode)
	refreshArea(t, newNode)

	return newNode
}

// mergeWalk executes the merge loop shared by both algorithms: for every
// non-empty level from b toward the trigger, elect a union node, absorb the
// rest of the bucket into it, connect the trigger zones and the Fb carry set
// at level b, and chain the previous union node below the current one.
// Returns the last union node, which terminate links to tauStar.
//
// isRemoved (BySubtree only) skips nodes whose flat zones were all consumed;
// nil accepts every node. firstLambda is the value the caller obtained from
// F before deciding on materialization; seed, when valid, is a materialized
// level-b node that opens the chain.
func (e *engine) mergeWalk(
	t *tree.Tree,
	firstLambda, tauStarLvl, b int,
	seed tree.NodeID,
	isRemoved func(tree.NodeID) bool,
	connectAtB func(u tree.NodeID),
) tree.NodeID {
	isMax := t.IsMaxtree()
	nodeUnion := seed
	nodeUnionPrev := seed

	for lambda := firstLambda; lambda != -1 &&
		((isMax && lambda > tauStarLvl) || (!isMax && lambda < tauStarLvl)); lambda = e.f.nextLambda() {

		bucket := e.f.mergedNodes(lambda)

		// Elect the first bucket node not marked for removal.
		pick := tree.InvalidNode
		for _, n := range bucket {
			if isRemoved == nil || !isRemoved(n) {
				pick = n
				break
			}
		}
		if pick == tree.InvalidNode {
			// Every node at this level was emptied: hoist their children to
			// their parents and release them; the chain continues unchanged.
			for _, n := range bucket {
				t.SpliceChildren(t.Parent(n), n)
				t.Disconnect(n, true)
			}
			continue
		}

		nodeUnion = pick
		t.Disconnect(nodeUnion, false)

		// Absorb the rest of the bucket into the union node.
		for _, n := range bucket {
			if n == nodeUnion {
				continue
			}
			if isRemoved == nil || !isRemoved(n) {
				t.AbsorbDisjointReps(nodeUnion, n)
			}
			t.SpliceChildren(nodeUnion, n)
			t.Disconnect(n, true)
		}

		// Destination level: connect the trigger zones and attach Fb.
		if lambda == b {
			connectAtB(nodeUnion)
			e.attachFb(t, nodeUnion)
		}

		// Chain the previous union node below the current one.
		if nodeUnionPrev != tree.InvalidNode && nodeUnionPrev != nodeUnion {
			t.Disconnect(nodeUnionPrev, false)
			t.AddChild(nodeUnion, nodeUnionPrev)
		}

		// Refresh the area from own zones plus children.
		refreshArea(t, nodeUnion)

		nodeUnionPrev = nodeUnion
	}

	return nodeUnion
}

// terminate finishes the walk at tauStar. When replace is set, nodeUnion takes
// tauStar's place: it adopts tauStar's position under its parent and its
// remaining children, and tauStar is released; a tauStar that was the root
// hands the root to the highest-precedence candidate so the level-monotone
// edge invariant holds. Otherwise nodeUnion is attached as a child of
// tauStar, which stays in place.
func (e *engine) terminate(t *tree.Tree, tauStar, nodeUnion tree.NodeID, replace bool) {
	if !replace {
		if nodeUnion != tauStar && nodeUnion != tree.InvalidNode && t.Parent(nodeUnion) != tauStar {
			t.Disconnect(nodeUnion, false)
			t.AddChild(tauStar, nodeUnion)
		}
		return
	}

	isMax := t.IsMaxtree()
	parent := t.Parent(tauStar)

	if parent != tree.InvalidNode {
		t.Disconnect(nodeUnion, false)
		t.AddChild(parent, nodeUnion)
		for _, n := range t.ChildrenIDs(tauStar) {
			if n != nodeUnion && !t.HasChild(nodeUnion, n) {
				t.RemoveChild(tauStar, n, false)
				t.AddChild(nodeUnion, n)
				t.SetArea(nodeUnion, t.Area(nodeUnion)+t.Area(n))
			}
		}
		t.Disconnect(tauStar, true)
		return
	}

	// tauStar was the root: elect the level-extreme candidate among nodeUnion
	// and tauStar's children (lowest level in a max-tree, highest in a
	// min-tree) as the new root.
	newRoot := nodeUnion
	children := t.ChildrenIDs(tauStar)
	for _, n := range children {
		if (isMax && t.Level(n) < t.Level(newRoot)) || (!isMax && t.Level(n) > t.Level(newRoot)) {
			newRoot = n
		}
	}
	for _, n := range children {
		t.RemoveChild(tauStar, n, false)
	}
	if newRoot != nodeUnion {
		t.Disconnect(nodeUnion, false)
		t.AddChild(newRoot, nodeUnion)
	}
	for _, n := range children {
		if n != newRoot && !t.HasChild(nodeUnion, n) && n != nodeUnion {
			t.AddChild(newRoot, n)
		}
	}
	t.SetArea(newRoot, t.Area(tauStar))
	t.Disconnect(tauStar, true)
	t.SetRoot(newRoot)
}
