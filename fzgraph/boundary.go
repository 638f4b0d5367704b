package fzgraph

import (
	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/imgu8"
)

// Boundary is the on-demand graph variant that stores, per zone, only the
// linked list of its boundary pixels (pixels with a differently-valued
// neighbor). Merges concatenate boundary lists in O(1) and mark the zone
// dirty; queries scan boundary pixels, resolve neighbor zones through the
// union-find, and deduplicate via generation stamps. Dirty boundaries are
// cleaned incrementally: each query spends a bounded budget removing pixels
// that became interior after merges.
//
// Invariants:
//   - borderNext forms an acyclic list per zone; borderCount matches it;
//   - a clean zone's list holds only true boundary pixels;
//   - a zone is clean once the refilter cursor reaches the list end.
type Boundary struct {
	*core

	borderHead  []int
	borderTail  []int
	borderNext  []int // per pixel
	borderCount []int

	borderCursor     []int
	borderCursorPrev []int
	borderDirty      []bool
}

// NewBoundary builds the boundary variant: BFS flat-zone discovery collecting
// boundary pixels into per-zone linked lists.
// Complexity: O(N·deg) time, O(N) memory.
func NewBoundary(im *imgu8.Image, rel *adjacency.Relation) (*Boundary, error) {
	c, err := newCore(im, rel)
	if err != nil {
		return nil, err
	}
	g := &Boundary{core: c}

	numPixels := im.Size()
	g.borderHead = make([]int, numPixels)
	g.borderTail = make([]int, numPixels)
	g.borderNext = make([]int, numPixels)
	g.borderCount = make([]int, numPixels)
	for i := 0; i < numPixels; i++ {
		g.borderHead[i] = -1
		g.borderTail[i] = -1
		g.borderNext[i] = -1
	}

	c.buildFlatZones(g.appendBorderPixel)

	numFZ := c.pixels.NumSets()
	g.borderHead = g.borderHead[:numFZ]
	g.borderTail = g.borderTail[:numFZ]
	g.borderCount = g.borderCount[:numFZ]
	g.borderCursor = make([]int, numFZ)
	g.borderCursorPrev = make([]int, numFZ)
	g.borderDirty = make([]bool, numFZ)
	for i := 0; i < numFZ; i++ {
		g.borderCursor[i] = g.borderHead[i]
		g.borderCursorPrev[i] = -1
	}

	return g, nil
}

// appendBorderPixel links pixel p at the tail of slot's boundary list.
func (g *Boundary) appendBorderPixel(slot, p int) {
	if g.borderHead[slot] == -1 {
		g.borderHead[slot] = p
		g.borderTail[slot] = p
	} else {
		g.borderNext[g.borderTail[slot]] = p
		g.borderTail[slot] = p
	}
	g.borderNext[p] = -1
	g.borderCount[slot]++
}

// forEachBorderPixel walks the boundary list of a root slot. The successor is
// read before visit runs, so visit may unlink the current pixel.
func (g *Boundary) forEachBorderPixel(root int, visit func(p int)) {
	p := g.borderHead[root]
	for p != -1 {
		next := g.borderNext[p]
		visit(p)
		p = next
	}
}

// concatBorders appends the loser's boundary list onto the winner's in O(1)
// and clears the loser's list state.
func (g *Boundary) concatBorders(winnerRoot, loserRoot int) {
	loserHead := g.borderHead[loserRoot]
	if loserHead != -1 {
		if g.borderHead[winnerRoot] == -1 {
			g.borderHead[winnerRoot] = loserHead
		} else {
			g.borderNext[g.borderTail[winnerRoot]] = loserHead
		}
		g.borderTail[winnerRoot] = g.borderTail[loserRoot]
		g.borderCount[winnerRoot] += g.borderCount[loserRoot]
	}
	g.borderHead[loserRoot] = -1
	g.borderTail[loserRoot] = -1
	g.borderCount[loserRoot] = 0
	g.borderCursor[loserRoot] = -1
	g.borderCursorPrev[loserRoot] = -1
	g.borderDirty[loserRoot] = false
}

// mergeZones merges the zones of repA and repB around the smaller canonical
// representative, concatenating boundaries and marking the winner dirty.
func (g *Boundary) mergeZones(repA, repB int) int {
	winnerRep, winnerRoot, loserRoot, merged := g.mergeByMinRep(repA, repB)
	if merged {
		g.concatBorders(winnerRoot, loserRoot)
		g.borderDirty[winnerRoot] = true
		g.borderCursor[winnerRoot] = g.borderHead[winnerRoot]
		g.borderCursorPrev[winnerRoot] = -1
	}

	return winnerRep
}

// isBorderPixelForRoot reports whether p still touches a zone other than root.
func (g *Boundary) isBorderPixelForRoot(p, root int) bool {
	isBorder := false
	g.adj.ForEachNeighbor(p, func(q int) {
		if isBorder {
			return
		}
		if g.rootSlotOfPixel(q) != root {
			isBorder = true
		}
	})

	return isBorder
}

// refilterBudget sizes the incremental cleanup step by boundary length.
// Any budget in [8, 4096] that is at least sqrt(count) keeps the amortized
// guarantees; these buckets stay comfortably above that floor.
func (g *Boundary) refilterBudget(root int) int {
	count := g.borderCount[root]
	var budget int
	switch {
	case count <= 0:
		return 0
	case count < 64:
		budget = 8
	case count < 256:
		budget = 16
	case count < 1024:
		budget = count / 8
	default:
		budget = count / 4
	}
	if budget < 8 {
		budget = 8
	}
	if budget > 4096 {
		budget = 4096
	}

	return budget
}

// partialRefilterStep advances the cleanup cursor up to budget pixels,
// unlinking pixels that are no longer on the zone boundary. When the cursor
// reaches the list end the zone is considered clean again.
func (g *Boundary) partialRefilterStep(root, budget int) {
	if budget <= 0 {
		return
	}
	current := g.borderCursor[root]
	prev := g.borderCursorPrev[root]
	if current == -1 {
		current = g.borderHead[root]
		prev = -1
	}

	for processed := 0; current != -1 && processed < budget; processed++ {
		next := g.borderNext[current]
		if !g.isBorderPixelForRoot(current, root) {
			if prev == -1 {
				g.borderHead[root] = next
			} else {
				g.borderNext[prev] = next
			}
			if g.borderTail[root] == current {
				g.borderTail[root] = prev
			}
			g.borderNext[current] = -1
			g.borderCount[root]--
		} else {
			prev = current
		}
		current = next
	}

	g.borderCursor[root] = current
	g.borderCursorPrev[root] = prev
	if g.borderHead[root] == -1 {
		g.borderTail[root] = -1
		g.borderCursor[root] = -1
		g.borderCursorPrev[root] = -1
	} else if current == -1 {
		g.borderCursorPrev[root] = -1
	}
}

// markAdjacentRoots stamps every root adjacent to the zone rooted at root.
// Callers read stamps against the current token.
func (g *Boundary) markAdjacentRoots(root int) {
	g.beginToken()
	g.forEachBorderPixel(root, func(p int) {
		g.adj.ForEachNeighbor(p, func(q int) {
			rootQ := g.rootSlotOfPixel(q)
			if rootQ != root {
				g.stamp[rootQ] = g.token
			}
		})
	})
}

// ForEachAdjacentFlatzone scans the boundary pixels of the zone of rep,
// deduplicating neighbor zones by generation stamp. A dirty boundary is
// partially refiltered first.
// Complexity: O(|boundary|·deg) amortized.
func (g *Boundary) ForEachAdjacentFlatzone(rep int, visit func(neighRep int)) {
	root := g.rootSlotOfPixel(rep)

	if g.borderDirty[root] {
		g.partialRefilterStep(root, g.refilterBudget(root))
		if g.borderCursor[root] == -1 {
			g.borderDirty[root] = false
		}
	}

	g.beginToken()
	g.forEachBorderPixel(root, func(p int) {
		g.adj.ForEachNeighbor(p, func(q int) {
			rootQ := g.rootSlotOfPixel(q)
			if rootQ == root || g.stamp[rootQ] == g.token {
				return
			}
			g.stamp[rootQ] = g.token
			visit(g.view.IndexToPixel[rootQ])
		})
	})
}

// ForEachAdjacentFlatzoneStatic is the pre-merge fast path: slots are still
// roots, so union-find lookups are skipped.
func (g *Boundary) ForEachAdjacentFlatzoneStatic(rep int, visit func(neighRep int)) {
	base := g.view.PixelToIndex[rep]

	g.beginToken()
	g.forEachBorderPixel(base, func(p int) {
		g.adj.ForEachNeighbor(p, func(q int) {
			slotQ := g.view.PixelToIndex[q]
			if slotQ == base || g.stamp[slotQ] == g.token {
				return
			}
			g.stamp[slotQ] = g.token
			visit(g.view.IndexToPixel[slotQ])
		})
	})
}

// MergeAdjacentCandidatesInPlace implements the Graph contract using a
// stamped boundary scan as the adjacency test.
func (g *Boundary) MergeAdjacentCandidatesInPlace(baseRep int, candidates *[]int) int {
	baseCanon := g.FindRepresentative(baseRep)
	baseRoot := g.rootSlotOfPixel(baseCanon)
	g.markAdjacentRoots(baseRoot)

	g.tmpCandidates = g.tmpCandidates[:0]
	winner := baseCanon
	for _, r := range *candidates {
		canon := g.FindRepresentative(r)
		if canon == baseCanon {
			continue
		}
		if g.stamp[g.rootSlotOfPixel(canon)] != g.token {
			continue
		}
		g.tmpCandidates = append(g.tmpCandidates, canon)
		if canon < winner {
			winner = canon
		}
	}
	if winner != baseCanon {
		g.tmpCandidates = append(g.tmpCandidates, baseCanon)
	}

	for _, loser := range g.tmpCandidates {
		if loser != winner {
			g.mergeZones(winner, loser)
		}
	}

	g.rewriteCandidates(candidates, winner)

	return g.FindRepresentative(winner)
}

// MergeBasesWithAdjacentCandidatesInPlace implements the Graph contract.
func (g *Boundary) MergeBasesWithAdjacentCandidatesInPlace(baseReps []int, candidates *[]int, winnerHint int) int {
	winner := g.minCanonicalBase(baseReps, winnerHint)
	if winner < 0 {
		return -1
	}

	for _, r := range baseReps {
		canon := g.FindRepresentative(r)
		if canon != winner {
			g.mergeZones(winner, canon)
		}
	}

	return g.MergeAdjacentCandidatesInPlace(winner, candidates)
}
