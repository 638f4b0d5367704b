// Package casf drives iterated connected alternating sequential filtering
// over a dual component-tree pair maintained incrementally by the
// adjustment engine.
package casf

import (
	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/adjust"
	"github.com/katalvlaran/morphtree/attribute"
	"github.com/katalvlaran/morphtree/fzgraph"
	"github.com/katalvlaran/morphtree/imgu8"
	"github.com/katalvlaran/morphtree/tree"
)

// Session owns the shared mutable state of one filtering run: the flat-zone
// graph and the two dual trees built over it, plus the adjustment engines.
// Only one engine call is active at a time; a Session must not be used from
// multiple goroutines.
type Session struct {
	graph   fzgraph.Graph
	maxtree *tree.Tree
	mintree *tree.Tree

	mode      Mode
	byLeaf    *adjust.ByLeaf
	bySubtree *adjust.BySubtree
}

// NewSession builds the graph and both trees for im and wires the engines.
func NewSession(im *imgu8.Image, opts Options) (*Session, error) {
	if im == nil {
		return nil, ErrNilImage
	}
	if opts.Mode != ModeByLeaf && opts.Mode != ModeBySubtree {
		return nil, ErrUnknownMode
	}
	rel, err := adjacency.New(im.Rows, im.Cols, opts.Radius)
	if err != nil {
		return nil, err
	}
	g, err := fzgraph.New(im, rel, opts.Graph)
	if err != nil {
		return nil, err
	}
	maxtree, err := tree.New(g, true)
	if err != nil {
		return nil, err
	}
	mintree, err := tree.New(g, false)
	if err != nil {
		return nil, err
	}

	return &Session{
		graph:     g,
		maxtree:   maxtree,
		mintree:   mintree,
		mode:      opts.Mode,
		byLeaf:    adjust.NewByLeaf(mintree, maxtree),
		bySubtree: adjust.NewBySubtree(mintree, maxtree),
	}, nil
}

// Graph returns the shared flat-zone graph.
func (s *Session) Graph() fzgraph.Graph { return s.graph }

// MaxTree returns the maintained max-tree.
func (s *Session) MaxTree() *tree.Tree { return s.maxtree }

// MinTree returns the maintained min-tree.
func (s *Session) MinTree() *tree.Tree { return s.mintree }

// PruneMaxTree selects the max-tree nodes whose attribute is <= threshold
// and prunes them, keeping the min-tree adjusted (an area opening when kind
// is Area). Returns the number of pruned subtree roots.
func (s *Session) PruneMaxTree(kind attribute.Kind, threshold float64) (int, error) {
	attr, err := attribute.Compute(s.maxtree, kind)
	if err != nil {
		return 0, err
	}
	selected := s.maxtree.NodesBelowThreshold(attr, threshold)
	if s.mode == ModeBySubtree {
		s.bySubtree.AdjustMinTree(s.mintree, s.maxtree, selected)
	} else {
		s.byLeaf.AdjustMinTree(s.mintree, s.maxtree, selected)
	}

	return len(selected), nil
}

// PruneMinTree is the dual of PruneMaxTree (a closing when kind is Area).
func (s *Session) PruneMinTree(kind attribute.Kind, threshold float64) (int, error) {
	attr, err := attribute.Compute(s.mintree, kind)
	if err != nil {
		return 0, err
	}
	selected := s.mintree.NodesBelowThreshold(attr, threshold)
	if s.mode == ModeBySubtree {
		s.bySubtree.AdjustMaxTree(s.maxtree, s.mintree, selected)
	} else {
		s.byLeaf.AdjustMaxTree(s.maxtree, s.mintree, selected)
	}

	return len(selected), nil
}

// FilterStep applies one alternation at a given scale: opening (max-tree
// prune) followed by closing (min-tree prune).
func (s *Session) FilterStep(kind attribute.Kind, threshold float64) error {
	if _, err := s.PruneMaxTree(kind, threshold); err != nil {
		return err
	}
	_, err := s.PruneMinTree(kind, threshold)

	return err
}

// Filter runs the full CASF schedule over increasing thresholds and returns
// the filtered image reconstructed from the max-tree. After every step both
// trees reconstruct to the same image.
func (s *Session) Filter(kind attribute.Kind, thresholds []float64) (*imgu8.Image, error) {
	for _, thr := range thresholds {
		if err := s.FilterStep(kind, thr); err != nil {
			return nil, err
		}
	}

	return s.maxtree.ReconstructImage(), nil
}

// NaiveFilter is the prune-and-rebuild oracle: at every scale it rebuilds
// each tree from the current image, prunes, and reconstructs. Semantically
// the same filter as Session.Filter; used to cross-check the incremental
// engine bit for bit.
func NaiveFilter(im *imgu8.Image, kind attribute.Kind, thresholds []float64, radius float64) (*imgu8.Image, error) {
	current := im.Clone()
	for _, thr := range thresholds {
		for _, maxtree := range []bool{true, false} {
			rel, err := adjacency.New(current.Rows, current.Cols, radius)
			if err != nil {
				return nil, err
			}
			g, err := fzgraph.NewFullScan(current, rel)
			if err != nil {
				return nil, err
			}
			t, err := tree.New(g, maxtree)
			if err != nil {
				return nil, err
			}
			attr, err := attribute.Compute(t, kind)
			if err != nil {
				return nil, err
			}
			for _, id := range t.NodesBelowThreshold(attr, thr) {
				t.Prune(id)
			}
			current = t.ReconstructImage()
		}
	}

	return current, nil
}
