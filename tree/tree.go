package tree

import (
	"github.com/katalvlaran/morphtree/fzgraph"
	"github.com/katalvlaran/morphtree/imgu8"
)

// Tree is a component tree over the flat zones of a grayscale image.
// A max-tree node at level λ is a connected component of {p : image[p] >= λ};
// the min-tree is the dual. Nodes live in a struct-of-arrays arena addressed
// by NodeID; parent/child/sibling linkage is stored as ID fields with
// InvalidNode as the absence sentinel, so no pointers are chased and freed
// slots are recycled.
//
// Two dual trees share one fzgraph.Graph (and through it one pixel-set
// manager); only one adjustment call may be active at a time.
type Tree struct {
	arena nodeArena
	root  NodeID

	maxtree  bool
	graph    fzgraph.Graph
	numNodes int

	// pixelToNode resolves a flat-zone representative to the node owning that
	// zone. Entries for non-canonical pixels go stale after merges; NodeOf
	// canonicalizes through the graph first.
	pixelToNode []NodeID
}

// IsMaxtree reports the tree polarity.
func (t *Tree) IsMaxtree() bool { return t.maxtree }

// NumNodes returns the number of live nodes.
func (t *Tree) NumNodes() int { return t.numNodes }

// Graph returns the shared flat-zone graph.
func (t *Tree) Graph() fzgraph.Graph { return t.graph }

// Image returns the underlying image.
func (t *Tree) Image() *imgu8.Image { return t.graph.Image() }

// Root returns the root node ID.
func (t *Tree) Root() NodeID { return t.root }

// SetRoot promotes id to root, clearing its parent link.
func (t *Tree) SetRoot(id NodeID) {
	t.arena.parentID[id] = InvalidNode
	t.root = id
}

// Level returns the gray level of node id.
func (t *Tree) Level(id NodeID) int { return t.arena.level[id] }

// SetLevel overwrites the gray level of node id. Only root promotion may
// change a node's level.
func (t *Tree) SetLevel(id NodeID, level int) { t.arena.level[id] = level }

// Area returns the pixel count of the component of node id.
func (t *Tree) Area(id NodeID) int { return int(t.arena.area[id]) }

// SetArea overwrites the area of node id.
func (t *Tree) SetArea(id NodeID, area int) { t.arena.area[id] = int32(area) }

// Parent returns the parent of id, or InvalidNode at the root.
func (t *Tree) Parent(id NodeID) NodeID { return t.arena.parentID[id] }

// NumChildren returns the cached child count of id.
func (t *Tree) NumChildren(id NodeID) int { return t.arena.childCount[id] }

// IsLeaf reports whether id has no children.
func (t *Tree) IsLeaf(id NodeID) bool { return t.arena.childCount[id] == 0 }

// IsFree reports whether the slot of id has been released.
func (t *Tree) IsFree(id NodeID) bool { return t.arena.isFree(id) }

// HasChild reports whether child's parent link points at id.
func (t *Tree) HasChild(id, child NodeID) bool { return t.arena.parentID[child] == id }

// RepCNPs returns the ordered flat-zone representatives owned by id. The
// slice aliases arena storage; mutate it only through tree methods.
func (t *Tree) RepCNPs(id NodeID) []int { return t.arena.repCNPs[id] }

// NumFlatzones returns how many flat zones node id owns.
func (t *Tree) NumFlatzones(id NodeID) int { return len(t.arena.repCNPs[id]) }

// NumCNPs returns the total pixel count of the zones owned by id itself
// (children excluded). Complexity: O(zones of id).
func (t *Tree) NumCNPs(id NodeID) int {
	total := 0
	for _, rep := range t.arena.repCNPs[id] {
		total += t.graph.FlatzoneSize(rep)
	}

	return total
}

// NodeOf resolves an arbitrary pixel to the node owning its flat zone,
// canonicalizing through the graph's union-find first.
func (t *Tree) NodeOf(p int) NodeID {
	return t.pixelToNode[t.graph.FindRepresentative(p)]
}

// AddRepCNP appends a flat-zone representative to id and records the
// rep-to-node mapping.
func (t *Tree) AddRepCNP(id NodeID, rep int) {
	t.arena.repCNPs[id] = append(t.arena.repCNPs[id], rep)
	t.pixelToNode[rep] = id
}

// RemoveFlatzone deletes the given representative from id's zone list,
// preserving the order of the remaining entries. Removing an absent rep is a
// programmer error.
func (t *Tree) RemoveFlatzone(id NodeID, rep int) {
	reps := t.arena.repCNPs[id]
	for i, r := range reps {
		if r == rep {
			t.arena.repCNPs[id] = append(reps[:i], reps[i+1:]...)
			return
		}
	}
	panic("tree: RemoveFlatzone of a representative the node does not own")
}

// AbsorbDisjointReps moves every flat zone of from onto to, remapping each
// representative. The zones are already pairwise disjoint; the graph is not
// consulted. Complexity: O(zones moved).
func (t *Tree) AbsorbDisjointReps(to, from NodeID) {
	for _, rep := range t.arena.repCNPs[from] {
		t.arena.repCNPs[to] = append(t.arena.repCNPs[to], rep)
		t.pixelToNode[rep] = to
	}
	t.arena.repCNPs[from] = t.arena.repCNPs[from][:0]
}

// MergeRepsIntoConnectedFlatzone unions the trigger zones (triggerReps, a
// connected region) with whichever zones of id they touch, via the shared
// graph. Absorbed entries of id's zone list are replaced by the single
// canonical winner, which is remapped to id. Returns the winner.
func (t *Tree) MergeRepsIntoConnectedFlatzone(id NodeID, triggerReps []int, winnerHint int) int {
	reps := t.arena.repCNPs[id]
	winner := t.graph.MergeBasesWithAdjacentCandidatesInPlace(triggerReps, &reps, winnerHint)
	t.arena.repCNPs[id] = reps
	t.pixelToNode[winner] = id

	return winner
}

// AddChild appends child to id's child list and sets its parent link.
// Precondition: child is currently detached.
func (t *Tree) AddChild(id, child NodeID) {
	a := &t.arena
	if a.firstChild[id] == InvalidNode {
		a.firstChild[id] = child
		a.lastChild[id] = child
		a.prevSib[child] = InvalidNode
	} else {
		last := a.lastChild[id]
		a.nextSib[last] = child
		a.prevSib[child] = last
		a.lastChild[id] = child
	}
	a.nextSib[child] = InvalidNode
	a.parentID[child] = id
	a.childCount[id]++
}

// RemoveChild unlinks child from id's child list and clears its parent link.
// When release is true the slot is returned to the free list; the child must
// then have no children and own no flat zones.
func (t *Tree) RemoveChild(id, child NodeID, release bool) {
	a := &t.arena
	prev, next := a.prevSib[child], a.nextSib[child]
	if prev != InvalidNode {
		a.nextSib[prev] = next
	} else {
		a.firstChild[id] = next
	}
	if next != InvalidNode {
		a.prevSib[next] = prev
	} else {
		a.lastChild[id] = prev
	}
	a.prevSib[child] = InvalidNode
	a.nextSib[child] = InvalidNode
	a.parentID[child] = InvalidNode
	a.childCount[id]--

	if release {
		a.release(child)
		t.numNodes--
	}
}

// Disconnect detaches id from its parent if it has one. With release true the
// slot is also freed.
func (t *Tree) Disconnect(id NodeID, release bool) {
	if parent := t.arena.parentID[id]; parent != InvalidNode {
		t.RemoveChild(parent, id, release)
	} else if release {
		t.arena.release(id)
		t.numNodes--
	}
}

// SpliceChildren moves the entire child list of from onto the end of to's
// list: O(1) link surgery plus O(children moved) parent-pointer updates.
func (t *Tree) SpliceChildren(to, from NodeID) {
	a := &t.arena
	first := a.firstChild[from]
	if first == InvalidNode || to == from {
		return
	}
	for c := first; c != InvalidNode; c = a.nextSib[c] {
		a.parentID[c] = to
	}
	if a.firstChild[to] == InvalidNode {
		a.firstChild[to] = first
	} else {
		a.nextSib[a.lastChild[to]] = first
		a.prevSib[first] = a.lastChild[to]
	}
	a.lastChild[to] = a.lastChild[from]
	a.childCount[to] += a.childCount[from]

	a.firstChild[from] = InvalidNode
	a.lastChild[from] = InvalidNode
	a.childCount[from] = 0
}

// CreateNode allocates a fresh node at the given level, seeded from rep, and
// attaches it under parent (pass InvalidNode for a detached node).
func (t *Tree) CreateNode(rep int, parent NodeID, level int) NodeID {
	id := t.arena.allocate(rep, level)
	if parent != InvalidNode {
		t.AddChild(parent, id)
	}
	t.numNodes++

	return id
}

// Capacity returns the arena slot count (live plus free). Useful for sizing
// per-node scratch buffers in callers that index by NodeID.
func (t *Tree) Capacity() int { return t.arena.size() }
