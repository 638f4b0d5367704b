// Package fzgraph maintains the flat zones of a grayscale image and their
// adjacencies under incremental merging.
//
// A flat zone is a maximal connected set of equal-valued pixels; zones
// partition the image. Each zone is named by its representative — the
// smallest pixel index it contains — and a union-find over zone slots tracks
// merges so that FindRepresentative stays O(α(N)). Pixel membership lives in
// a pixelset.Manager, whose circular lists make zone merges O(1) splices.
//
// Three variants implement the same Graph contract:
//
//   - FullEdges  — eager per-zone neighbor sets; fastest queries, O(E) memory
//   - Boundary   — per-zone boundary pixel lists with incremental refiltering
//   - FullScan   — no adjacency storage; queries scan the whole zone
//
// The tie-break rule is shared by all variants and is an invariant: the
// winner of any merge is the zone with the smallest canonical representative.
//
// Typical use:
//
//	rel, _ := adjacency.New(rows, cols, adjacency.Radius8)
//	g, _ := fzgraph.New(im, rel, fzgraph.DefaultOptions())
//	rep := g.FindRepresentative(p)
//	g.ForEachAdjacentFlatzone(rep, func(neigh int) { ... })
package fzgraph
