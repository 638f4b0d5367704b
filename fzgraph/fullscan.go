package fzgraph

import (
	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/imgu8"
)

// FullScan is the leanest graph variant: no adjacency storage at all.
// Merges touch only the union-find and the pixel lists; every adjacency
// query scans all pixels of the base zone and tests their neighbors.
type FullScan struct {
	*core
}

// NewFullScan builds the scan variant: flat-zone discovery only.
// Complexity: O(N·deg) time, O(N) memory.
func NewFullScan(im *imgu8.Image, rel *adjacency.Relation) (*FullScan, error) {
	c, err := newCore(im, rel)
	if err != nil {
		return nil, err
	}
	c.buildFlatZones(nil)

	return &FullScan{core: c}, nil
}

// mergeZones merges the zones of repA and repB around the smaller canonical
// representative. Complexity: O(1) amortized.
func (g *FullScan) mergeZones(repA, repB int) int {
	winnerRep, _, _, _ := g.mergeByMinRep(repA, repB)

	return winnerRep
}

// markAdjacentRoots stamps every root adjacent to the zone rooted at root by
// scanning all of the zone's pixels.
func (g *FullScan) markAdjacentRoots(rep, root int) {
	g.beginToken()
	g.pixels.ForEachPixelOfSet(rep, func(p int) {
		g.adj.ForEachNeighbor(p, func(q int) {
			rootQ := g.rootSlotOfPixel(q)
			if rootQ != root {
				g.stamp[rootQ] = g.token
			}
		})
	})
}

// ForEachAdjacentFlatzone scans every pixel of the zone of rep, deduplicating
// neighbor zones by generation stamp.
// Complexity: O(|zone|·deg).
func (g *FullScan) ForEachAdjacentFlatzone(rep int, visit func(neighRep int)) {
	baseRep := g.FindRepresentative(rep)
	root := g.rootSlotOfPixel(baseRep)

	g.beginToken()
	g.pixels.ForEachPixelOfSet(baseRep, func(p int) {
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

// ForEachAdjacentFlatzoneStatic is the pre-merge fast path.
func (g *FullScan) ForEachAdjacentFlatzoneStatic(rep int, visit func(neighRep int)) {
	base := g.view.PixelToIndex[rep]

	g.beginToken()
	g.pixels.ForEachPixelOfSet(rep, func(p int) {
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
// stamped full-zone scan as the adjacency test.
func (g *FullScan) MergeAdjacentCandidatesInPlace(baseRep int, candidates *[]int) int {
	baseCanon := g.FindRepresentative(baseRep)
	baseRoot := g.rootSlotOfPixel(baseCanon)
	g.markAdjacentRoots(baseCanon, baseRoot)

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
func (g *FullScan) MergeBasesWithAdjacentCandidatesInPlace(baseReps []int, candidates *[]int, winnerHint int) int {
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
