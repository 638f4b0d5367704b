// Package pixelset manages disjoint sets of pixels as circular singly
// linked lists threaded through one pixel-indexed array.
//
// The representation is chosen for exactly one property: merging two sets
// is a constant-time splice. If set A is ... → a → next(a) → ... and set B
// is ... → b → next(b) → ..., swapping next(a) and next(b) concatenates the
// two cycles. Sizes accumulate on the winner's slot and the loser's slot is
// invalidated by the sentinel -1; membership of individual pixels is never
// rewritten. Resolving a stale slot to its current set is the flat-zone
// graph's job (a union-find over slots), not this package's.
//
//	m := pixelset.New(numPixels)
//	// builders fill m through m.View() during flat-zone discovery
//	m.MergeSetsByRep(winner, loser)          // O(1)
//	m.ForEachPixelOfSet(winner, visit)       // O(|set|)
package pixelset
