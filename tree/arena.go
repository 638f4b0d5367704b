package tree

// nodeArena stores every node field in parallel slices indexed by NodeID,
// giving O(1) field access and cache-friendly traversals. Released slots are
// recycled through a LIFO free list before the slices grow; a free slot is
// recognizable by repNode == -1 and carries no live references.
type nodeArena struct {
	repNode    []int     // flat-zone representative the node was created from; -1 marks a free slot
	level      []int     // gray level of the node's component
	area       []int32   // pixel count of the component (subtree union)
	repCNPs    [][]int   // ordered flat-zone representatives owned by the node
	parentID   []NodeID  // -1 at the root
	firstChild []NodeID
	nextSib    []NodeID
	prevSib    []NodeID
	lastChild  []NodeID
	childCount []int

	freeIDs []NodeID
}

// reserve grows slice capacity for n nodes without changing length.
func (a *nodeArena) reserve(n int) {
	if cap(a.repNode) >= n {
		return
	}
	grow := func(s []int) []int { out := make([]int, len(s), n); copy(out, s); return out }
	growID := func(s []NodeID) []NodeID { out := make([]NodeID, len(s), n); copy(out, s); return out }

	a.repNode = grow(a.repNode)
	a.level = grow(a.level)
	a.childCount = grow(a.childCount)
	a.parentID = growID(a.parentID)
	a.firstChild = growID(a.firstChild)
	a.nextSib = growID(a.nextSib)
	a.prevSib = growID(a.prevSib)
	a.lastChild = growID(a.lastChild)

	area := make([]int32, len(a.area), n)
	copy(area, a.area)
	a.area = area
	reps := make([][]int, len(a.repCNPs), n)
	copy(reps, a.repCNPs)
	a.repCNPs = reps
}

// size returns the number of allocated slots (live and free).
func (a *nodeArena) size() int { return len(a.repNode) }

// isFree reports whether the slot looks released.
func (a *nodeArena) isFree(id NodeID) bool {
	return id >= 0 && int(id) < len(a.repNode) && a.repNode[id] == -1
}

// allocate returns a node slot with all fields reset to defaults, reusing a
// freed ID when one is available.
func (a *nodeArena) allocate(rep, level int) NodeID {
	if n := len(a.freeIDs); n > 0 {
		id := a.freeIDs[n-1]
		a.freeIDs = a.freeIDs[:n-1]

		a.repNode[id] = rep
		a.level[id] = level
		a.area[id] = 0
		a.repCNPs[id] = a.repCNPs[id][:0]
		a.parentID[id] = InvalidNode
		a.firstChild[id] = InvalidNode
		a.nextSib[id] = InvalidNode
		a.prevSib[id] = InvalidNode
		a.lastChild[id] = InvalidNode
		a.childCount[id] = 0

		return id
	}

	id := NodeID(len(a.repNode))
	a.repNode = append(a.repNode, rep)
	a.level = append(a.level, level)
	a.area = append(a.area, 0)
	a.repCNPs = append(a.repCNPs, nil)
	a.parentID = append(a.parentID, InvalidNode)
	a.firstChild = append(a.firstChild, InvalidNode)
	a.nextSib = append(a.nextSib, InvalidNode)
	a.prevSib = append(a.prevSib, InvalidNode)
	a.lastChild = append(a.lastChild, InvalidNode)
	a.childCount = append(a.childCount, 0)

	return id
}

// release resets the slot and pushes its ID onto the free list.
// Precondition: the node is disconnected (no parent, no children) and owns
// no flat zones.
func (a *nodeArena) release(id NodeID) {
	if a.parentID[id] != InvalidNode || a.firstChild[id] != InvalidNode || len(a.repCNPs[id]) != 0 {
		panic("tree: release of a still-connected node")
	}
	a.repNode[id] = -1
	a.level[id] = 0
	a.area[id] = 0
	a.repCNPs[id] = a.repCNPs[id][:0]
	a.parentID[id] = InvalidNode
	a.firstChild[id] = InvalidNode
	a.nextSib[id] = InvalidNode
	a.prevSib[id] = InvalidNode
	a.lastChild[id] = InvalidNode
	a.childCount[id] = 0

	a.freeIDs = append(a.freeIDs, id)
}
