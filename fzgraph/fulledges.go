package fzgraph

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/imgu8"
)

// FullEdges is the eager graph variant: every cross-zone edge is materialized
// at construction into a per-zone neighbor set keyed by canonical pixel
// representatives. Merges rewire the loser's neighbor set into the winner's
// in O(deg(loser)); adjacency queries walk one set in O(deg).
//
// Invariants:
//   - neighbor sets hold only canonical, live representatives (rewiring on
//     every merge keeps them current);
//   - no self-loops; adjacency is symmetric.
type FullEdges struct {
	*core

	// adjSets[slot] holds the neighbor representatives of the zone rooted at
	// slot; cleared once the slot loses a merge.
	adjSets []*set3.Set3[int]
}

// NewFullEdges builds the eager variant: BFS flat-zone discovery, then one
// boundary-pixel sweep emitting each cross-zone edge symmetrically.
// Complexity: O(N·deg + E) time, O(N + E) memory.
func NewFullEdges(im *imgu8.Image, rel *adjacency.Relation) (*FullEdges, error) {
	c, err := newCore(im, rel)
	if err != nil {
		return nil, err
	}
	g := &FullEdges{core: c}

	isBoundary := make([]bool, im.Size())
	c.buildFlatZones(func(_, pixel int) { isBoundary[pixel] = true })

	numFZ := c.pixels.NumSets()
	g.adjSets = make([]*set3.Set3[int], numFZ)
	for i := 0; i < numFZ; i++ {
		g.adjSets[i] = set3.EmptyWithCapacity[int](8)
	}

	// Emit edges once per unordered pixel pair via the forward half-relation;
	// the sets absorb duplicates from multiple boundary contacts.
	data := im.Data
	for p := 0; p < im.Size(); p++ {
		if !isBoundary[p] {
			continue
		}
		slotP := c.view.PixelToIndex[p]
		rel.ForEachNeighborForward(p, func(q int) {
			if data[q] == data[p] {
				return
			}
			slotQ := c.view.PixelToIndex[q]
			g.adjSets[slotP].Add(c.view.IndexToPixel[slotQ])
			g.adjSets[slotQ].Add(c.view.IndexToPixel[slotP])
		})
	}

	return g, nil
}

// ForEachAdjacentFlatzone visits each neighbor representative of the zone of
// rep. The stored set is already deduplicated and canonical.
func (g *FullEdges) ForEachAdjacentFlatzone(rep int, visit func(neighRep int)) {
	root := g.rootSlotOfPixel(rep)
	for neighRep := range g.adjSets[root].MutableRange() {
		visit(neighRep)
	}
}

// ForEachAdjacentFlatzoneStatic is the pre-merge fast path: the build-time
// slot of rep is still its root, so the union-find lookup is skipped.
func (g *FullEdges) ForEachAdjacentFlatzoneStatic(rep int, visit func(neighRep int)) {
	for neighRep := range g.adjSets[g.view.PixelToIndex[rep]].MutableRange() {
		visit(neighRep)
	}
}

// mergeInto rewires loser's adjacency onto winner (symmetric, no self-loop),
// clears the loser's set, and unions the zones. winner must be the smaller
// canonical representative of the merged group.
func (g *FullEdges) mergeInto(winner, loser int) {
	winnerRoot := g.rootSlotOfPixel(winner)
	loserRoot := g.rootSlotOfPixel(loser)
	if winnerRoot == loserRoot {
		return
	}

	for neighRep := range g.adjSets[loserRoot].MutableRange() {
		if neighRep == winner {
			continue
		}
		neighRoot := g.view.PixelToIndex[neighRep]
		g.adjSets[winnerRoot].Add(neighRep)
		g.adjSets[neighRoot].Add(winner)
		g.adjSets[neighRoot].Remove(loser)
	}
	g.adjSets[winnerRoot].Remove(loser)
	g.adjSets[loserRoot] = set3.Empty[int]()

	g.unionSlots(winnerRoot, loserRoot, winner, loser)
}

// MergeAdjacentCandidatesInPlace implements the Graph contract using set
// membership as the adjacency test.
// Complexity: O(R + Σ deg(loser)) for R candidates.
func (g *FullEdges) MergeAdjacentCandidatesInPlace(baseRep int, candidates *[]int) int {
	baseCanon := g.FindRepresentative(baseRep)
	adjBase := g.adjSets[g.view.PixelToIndex[baseCanon]]

	g.tmpCandidates = g.tmpCandidates[:0]
	winner := baseCanon
	for _, r := range *candidates {
		canon := g.FindRepresentative(r)
		if canon == baseCanon || !adjBase.Contains(canon) {
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
			g.mergeInto(winner, loser)
		}
	}

	g.rewriteCandidates(candidates, winner)

	return g.FindRepresentative(winner)
}

// MergeBasesWithAdjacentCandidatesInPlace implements the Graph contract:
// bases collapse into the minimum-representative winner first, then the
// adjacent candidates are attached.
func (g *FullEdges) MergeBasesWithAdjacentCandidatesInPlace(baseReps []int, candidates *[]int, winnerHint int) int {
	winner := g.minCanonicalBase(baseReps, winnerHint)
	if winner < 0 {
		return -1
	}

	for _, r := range baseReps {
		canon := g.FindRepresentative(r)
		if canon != winner {
			g.mergeInto(winner, canon)
		}
	}

	return g.MergeAdjacentCandidatesInPlace(winner, candidates)
}
