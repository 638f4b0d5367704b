// Package attribute computes per-node attributes of a component tree by a
// single incremental post-order pass: a pre step seeds each node from its
// own flat zones, a merge step folds each finished child into its parent,
// and a post step finalizes the node. The generic ComputeIncremental walk
// mirrors how filtering criteria are composed without temporary trees.
package attribute

import (
	"errors"

	"github.com/katalvlaran/morphtree/tree"
)

// ErrUnknownKind is returned for an unrecognized attribute kind.
var ErrUnknownKind = errors.New("attribute: unknown attribute kind")

// Kind selects the attribute computed by Compute.
type Kind int

const (
	// Area is the pixel count of the node's component.
	Area Kind = iota
	// BoxWidth is the width of the component's bounding box.
	BoxWidth
	// BoxHeight is the height of the component's bounding box.
	BoxHeight
	// GrayHeight is the absolute level span between the node and the deepest
	// node of its subtree.
	GrayHeight
)

// ComputeIncremental runs the post-order composition over the subtree of
// root: pre(n) before descending, merge(n, c) after each child c's subtree
// finished, post(n) last. Depth is bounded by the gray range, so recursion
// is safe.
func ComputeIncremental(t *tree.Tree, root tree.NodeID, pre func(tree.NodeID), merge func(parent, child tree.NodeID), post func(tree.NodeID)) {
	pre(root)
	t.ForEachChild(root, func(c tree.NodeID) {
		ComputeIncremental(t, c, pre, merge, post)
		merge(root, c)
	})
	post(root)
}

// Compute fills a dense buffer, indexed by NodeID, with the requested
// attribute over the whole tree. Entries at released slots are undefined and
// must not be read by callers.
// Complexity: O(nodes) for Area and GrayHeight, O(pixels) for the boxes.
func Compute(t *tree.Tree, kind Kind) ([]float64, error) {
	buf := make([]float64, t.Capacity())
	switch kind {
	case Area:
		ComputeIncremental(t, t.Root(),
			func(n tree.NodeID) { buf[n] = float64(t.NumCNPs(n)) },
			func(p, c tree.NodeID) { buf[p] += buf[c] },
			func(tree.NodeID) {})
	case BoxWidth, BoxHeight:
		computeBox(t, kind, buf)
	case GrayHeight:
		extreme := make([]int, t.Capacity())
		ComputeIncremental(t, t.Root(),
			func(n tree.NodeID) { extreme[n] = t.Level(n) },
			func(p, c tree.NodeID) {
				if (t.IsMaxtree() && extreme[c] > extreme[p]) || (!t.IsMaxtree() && extreme[c] < extreme[p]) {
					extreme[p] = extreme[c]
				}
			},
			func(n tree.NodeID) {
				d := extreme[n] - t.Level(n)
				if d < 0 {
					d = -d
				}
				buf[n] = float64(d)
			})
	default:
		return nil, ErrUnknownKind
	}

	return buf, nil
}

// computeBox fills buf with bounding-box width or height per node.
func computeBox(t *tree.Tree, kind Kind, buf []float64) {
	cols := t.Image().Cols
	n := t.Capacity()
	minRow := make([]int, n)
	maxRow := make([]int, n)
	minCol := make([]int, n)
	maxCol := make([]int, n)

	ComputeIncremental(t, t.Root(),
		func(id tree.NodeID) {
			minRow[id], minCol[id] = t.Image().Rows, cols
			maxRow[id], maxCol[id] = -1, -1
			for _, rep := range t.RepCNPs(id) {
				t.Graph().ForEachPixelOfFlatzone(rep, func(p int) {
					row, col := p/cols, p%cols
					if row < minRow[id] {
						minRow[id] = row
					}
					if row > maxRow[id] {
						maxRow[id] = row
					}
					if col < minCol[id] {
						minCol[id] = col
					}
					if col > maxCol[id] {
						maxCol[id] = col
					}
				})
			}
		},
		func(p, c tree.NodeID) {
			if minRow[c] < minRow[p] {
				minRow[p] = minRow[c]
			}
			if maxRow[c] > maxRow[p] {
				maxRow[p] = maxRow[c]
			}
			if minCol[c] < minCol[p] {
				minCol[p] = minCol[c]
			}
			if maxCol[c] > maxCol[p] {
				maxCol[p] = maxCol[c]
			}
		},
		func(id tree.NodeID) {
			if kind == BoxWidth {
				buf[id] = float64(maxCol[id] - minCol[id] + 1)
			} else {
				buf[id] = float64(maxRow[id] - minRow[id] + 1)
			}
		})
}
