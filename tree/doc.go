// Package tree implements component trees (max-tree and min-tree) over the
// flat zones of a grayscale image.
//
// Nodes are stored in a struct-of-arrays arena addressed by dense NodeID
// indices, with InvalidNode (-1) as the absence sentinel and a LIFO free
// list recycling released slots. Parent/child/sibling linkage is a
// doubly-linked multichild encoding across three ID arrays; every structural
// mutation maintains the invariants checked by ValidateStructure.
//
// Construction runs counting sort over flat zones followed by a bottom-up
// union-find through the graph's static adjacency. Pruning removes a subtree
// and merges its pixels into the parent's flat zones through the shared
// fzgraph.Graph. ReconstructImage materializes the image the tree currently
// represents; building a tree from an image and reconstructing yields the
// image back.
//
// Two dual trees over one image share a single flat-zone graph; the
// adjustment engine (package adjust) mutates one tree to track pruning in
// the other.
package tree
