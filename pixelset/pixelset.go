package pixelset

// Manager owns the pixel-set arrays for one image.
type Manager struct {
	pixelsNext   []int // successor in the circular list of the pixel's set
	pixelToIndex []int // pixel -> slot assigned at build time (may be stale after merges)
	indexToPixel []int // slot -> head pixel; -1 once the slot lost a merge
	sizeSets     []int // slot -> cardinality (valid only at live slots)
	numSets      int
}

// View exposes the backing arrays for builders that fill the manager in bulk
// during flat-zone discovery. The slices alias the manager's storage.
type View struct {
	PixelsNext   []int
	PixelToIndex []int
	IndexToPixel []int
	SizeSets     []int
}

// New allocates a manager for numPixels pixels with slot capacity for up to
// numPixels sets. List and slot entries start at the inactive sentinel -1;
// set sizes start at 0.
// Complexity: O(numPixels).
func New(numPixels int) *Manager {
	m := &Manager{
		pixelsNext:   make([]int, numPixels),
		pixelToIndex: make([]int, numPixels),
		indexToPixel: make([]int, numPixels),
		sizeSets:     make([]int, numPixels),
	}
	for i := range m.pixelsNext {
		m.pixelsNext[i] = -1
		m.pixelToIndex[i] = -1
		m.indexToPixel[i] = -1
	}

	return m
}

// View returns aliasing slices over the manager's arrays.
func (m *Manager) View() View {
	return View{
		PixelsNext:   m.pixelsNext,
		PixelToIndex: m.pixelToIndex,
		IndexToPixel: m.indexToPixel,
		SizeSets:     m.sizeSets,
	}
}

// NumSets returns the number of sets fixed by ShrinkToNumSets. Merges do not
// decrease it; callers track live sets through the graph's union-find.
func (m *Manager) NumSets() int { return m.numSets }

// SizeOfSlot returns the cardinality stored at a slot.
func (m *Manager) SizeOfSlot(slot int) int { return m.sizeSets[slot] }

// HeadOfSlot returns the head pixel of a slot, or -1 if the slot was absorbed.
func (m *Manager) HeadOfSlot(slot int) int { return m.indexToPixel[slot] }

// SlotOf returns the build-time slot of pixel p (possibly stale after merges).
func (m *Manager) SlotOf(p int) int { return m.pixelToIndex[p] }

// ForEachPixelOfSet walks the circular list of the set containing start,
// invoking visit for every member. The order is internal list order, not
// pixel-index order. start must belong to a live set.
// Complexity: O(set size).
func (m *Manager) ForEachPixelOfSet(start int, visit func(p int)) {
	p := start
	for {
		visit(p)
		p = m.pixelsNext[p]
		if p == start {
			return
		}
	}
}

// MergeSetsByRep merges the set headed by loser into the set headed by
// winner: the circular lists are spliced in O(1) by swapping the heads'
// successors, sizes accumulate on the winner slot, and the loser slot is
// invalidated. Both arguments must be live heads of distinct sets.
func (m *Manager) MergeSetsByRep(winner, loser int) {
	winnerSlot := m.pixelToIndex[winner]
	loserSlot := m.pixelToIndex[loser]

	m.pixelsNext[winner], m.pixelsNext[loser] = m.pixelsNext[loser], m.pixelsNext[winner]

	m.sizeSets[winnerSlot] += m.sizeSets[loserSlot]
	m.sizeSets[loserSlot] = 0
	m.indexToPixel[loserSlot] = -1
}

// ShrinkToNumSets trims the slot-indexed arrays to the n sets actually
// produced by construction and records n as the set count.
// Complexity: O(1) (reslice).
func (m *Manager) ShrinkToNumSets(n int) {
	m.indexToPixel = m.indexToPixel[:n]
	m.sizeSets = m.sizeSets[:n]
	m.numSets = n
}
