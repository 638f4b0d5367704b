package fzgraph

import (
	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/imgu8"
	"github.com/katalvlaran/morphtree/pixelset"
)

// core holds the state shared by all graph variants: the image, the neighbor
// relation, the pixel-set manager, a union-find over set slots tracking
// merges, and the generation-stamp machinery for per-query deduplication.
type core struct {
	img    *imgu8.Image
	adj    *adjacency.Relation
	pixels *pixelset.Manager
	view   pixelset.View

	parent   []int // union-find over set slots; parent[i] == i at roots
	liveSets int

	// Generation stamps: a slot is "seen in this query" iff stamp[slot] == token.
	// The token advances per query; the O(n) clear runs only on wraparound.
	stamp []uint32
	token uint32

	tmpCandidates []int
}

func newCore(im *imgu8.Image, rel *adjacency.Relation) (*core, error) {
	if im == nil {
		return nil, ErrNilImage
	}
	if rel == nil {
		return nil, ErrNilAdjacency
	}
	if rel.Rows() != im.Rows || rel.Cols() != im.Cols {
		return nil, ErrDimensionMismatch
	}
	c := &core{img: im, adj: rel, pixels: pixelset.New(im.Size())}
	c.view = c.pixels.View()

	return c, nil
}

// buildFlatZones discovers every flat zone by BFS over equal-valued
// neighbors, filling the pixel-set arrays and the circular pixel lists.
// onBorder, when non-nil, is invoked once per pixel that has at least one
// differently-valued neighbor, tagged with its zone slot.
// Complexity: O(N·deg) time, O(N) memory.
func (c *core) buildFlatZones(onBorder func(slot, pixel int)) {
	numPixels := c.img.Size()
	data := c.img.Data
	visited := make([]bool, numPixels)
	queue := make([]int, 0, numPixels/4)
	numFZ := 0

	for p := 0; p < numPixels; p++ {
		if visited[p] {
			continue
		}
		slot := numFZ
		numFZ++
		tail := p
		size := 0
		level := data[p]

		queue = queue[:0]
		queue = append(queue, p)
		visited[p] = true
		c.view.PixelToIndex[p] = slot
		c.view.IndexToPixel[slot] = p

		for qi := 0; qi < len(queue); qi++ {
			q := queue[qi]
			size++
			hasDiff := false
			c.adj.ForEachNeighbor(q, func(nq int) {
				if data[nq] == level {
					if !visited[nq] {
						visited[nq] = true
						queue = append(queue, nq)
						c.view.PixelToIndex[nq] = slot
						c.view.PixelsNext[tail] = nq
						tail = nq
					}
				} else {
					hasDiff = true
				}
			})
			if hasDiff && onBorder != nil {
				onBorder(slot, q)
			}
		}
		// Close the circular list of this zone.
		c.view.PixelsNext[tail] = p
		c.view.SizeSets[slot] = size
	}

	c.pixels.ShrinkToNumSets(numFZ)
	c.view = c.pixels.View()
	c.liveSets = numFZ

	c.parent = make([]int, numFZ)
	for i := range c.parent {
		c.parent[i] = i
	}
	c.stamp = make([]uint32, numFZ)
	c.token = 1
	c.tmpCandidates = make([]int, 0, numFZ)
}

// findSlot resolves slot i to its union-find root with path compression.
func (c *core) findSlot(i int) int {
	root := i
	for c.parent[root] != root {
		root = c.parent[root]
	}
	for c.parent[i] != i {
		next := c.parent[i]
		c.parent[i] = root
		i = next
	}

	return root
}

// rootSlotOfPixel resolves pixel p to the root slot of its current zone.
func (c *core) rootSlotOfPixel(p int) int {
	return c.findSlot(c.view.PixelToIndex[p])
}

// beginToken starts a fresh deduplication generation. On uint32 wraparound
// the stamp array is cleared once, keeping amortized cost flat.
func (c *core) beginToken() {
	c.token++
	if c.token == 0 {
		for i := range c.stamp {
			c.stamp[i] = 0
		}
		c.token = 1
	}
}

// unionSlots points loserRoot at winnerRoot in the union-find and splices the
// two circular pixel lists. Both arguments must be distinct roots, and
// winnerRep must be the smaller canonical representative.
func (c *core) unionSlots(winnerRoot, loserRoot, winnerRep, loserRep int) {
	c.parent[loserRoot] = winnerRoot
	c.pixels.MergeSetsByRep(winnerRep, loserRep)
	c.liveSets--
}

// mergeByMinRep merges the zones of repA and repB, the smaller canonical
// representative winning. Returns the winner rep and both root slots;
// merged is false when the two pixels already share a zone.
func (c *core) mergeByMinRep(repA, repB int) (winnerRep, winnerRoot, loserRoot int, merged bool) {
	rootA := c.rootSlotOfPixel(repA)
	rootB := c.rootSlotOfPixel(repB)
	if rootA == rootB {
		return c.view.IndexToPixel[rootA], rootA, rootA, false
	}

	headA := c.view.IndexToPixel[rootA]
	headB := c.view.IndexToPixel[rootB]
	winnerRoot, loserRoot = rootA, rootB
	winnerRep, loserRep := headA, headB
	if headB < headA {
		winnerRoot, loserRoot = rootB, rootA
		winnerRep, loserRep = headB, headA
	}
	c.unionSlots(winnerRoot, loserRoot, winnerRep, loserRep)

	return winnerRep, winnerRoot, loserRoot, true
}

// Image returns the underlying grayscale image.
func (c *core) Image() *imgu8.Image { return c.img }

// Adjacency returns the pixel neighbor relation.
func (c *core) Adjacency() *adjacency.Relation { return c.adj }

// Pixels returns the shared pixel-set manager.
func (c *core) Pixels() *pixelset.Manager { return c.pixels }

// NumFlatZones returns the current number of live flat zones.
func (c *core) NumFlatZones() int { return c.liveSets }

// FindRepresentative returns the canonical pixel of the zone containing p:
// the head of the root slot, which is always the smallest pixel of the zone.
// Idempotent. Complexity: α(N) amortized.
func (c *core) FindRepresentative(p int) int {
	slot := c.view.PixelToIndex[p]
	if slot < 0 {
		return p
	}

	return c.view.IndexToPixel[c.findSlot(slot)]
}

// FlatzoneSize returns the pixel count of the zone containing rep.
func (c *core) FlatzoneSize(rep int) int {
	return c.view.SizeSets[c.rootSlotOfPixel(rep)]
}

// ForEachPixelOfFlatzone walks the circular pixel list of the zone of rep.
// Complexity: O(zone size).
func (c *core) ForEachPixelOfFlatzone(rep int, visit func(p int)) {
	c.pixels.ForEachPixelOfSet(c.FindRepresentative(rep), visit)
}

// rewriteCandidates drops from candidates every entry whose canonical
// representative collapsed into winner, then appends the winner itself.
func (c *core) rewriteCandidates(candidates *[]int, winner int) {
	wCanon := c.FindRepresentative(winner)
	out := (*candidates)[:0]
	for _, x := range *candidates {
		if c.FindRepresentative(x) != wCanon {
			out = append(out, x)
		}
	}
	*candidates = append(out, wCanon)
}

// minCanonicalBase canonicalizes baseReps and returns the smallest canonical
// representative, honoring a non-negative hint when it resolves to that
// minimum. Returns -1 on an empty input.
func (c *core) minCanonicalBase(baseReps []int, winnerHint int) int {
	if len(baseReps) == 0 {
		return -1
	}
	winner := -1
	for _, r := range baseReps {
		canon := c.FindRepresentative(r)
		if winner < 0 || canon < winner {
			winner = canon
		}
	}
	if winnerHint >= 0 {
		if h := c.FindRepresentative(winnerHint); h == winner {
			return h
		}
	}

	return winner
}
