// Package morphtree maintains a pair of dual component trees (max-tree and
// min-tree) of a grayscale image under incremental pruning: after each
// pruning step of one tree, the other is rewired in place so it remains the
// component tree of the reconstructed image — no rebuild from scratch.
//
// The repository is organized one package per concern:
//
//	imgu8/      — 8-bit grayscale image container
//	adjacency/  — disk-shaped pixel neighbor relations (4-/8-connectivity)
//	pixelset/   — disjoint pixel sets as circular lists with O(1) splices
//	fzgraph/    — flat-zone graph: union-find + three adjacency variants
//	tree/       — node arena, component trees, construction, pruning
//	adjust/     — the ByLeaf and BySubtree tree-adjustment engines
//	attribute/  — incremental post-order attribute computers
//	casf/       — connected alternating sequential filtering driver
//
// Quick start:
//
//	im, _ := imgu8.FromBytes(rows, cols, pixels)
//	s, _ := casf.NewSession(im, casf.DefaultOptions())
//	out, _ := s.Filter(attribute.Area, []float64{50, 100, 150})
//
// The motivating use case is iterated connected alternating sequential
// filtering (CASF): at each scale one tree is pruned by an attribute
// threshold and the complementary tree must track the filtered image. The
// incremental engine and the naive rebuild pipeline produce bit-identical
// images; the engine just gets there without reconstructing trees.
package morphtree
