package casf

import (
	"errors"

	"github.com/katalvlaran/morphtree/fzgraph"
)

// Sentinel errors for session construction.
var (
	// ErrNilImage indicates a nil input image.
	ErrNilImage = errors.New("casf: image is nil")
	// ErrUnknownMode indicates an unrecognized adjustment mode.
	ErrUnknownMode = errors.New("casf: unknown adjustment mode")
)

// Mode selects how the engine propagates each pruning step to the dual tree.
type Mode int

const (
	// ModeByLeaf walks every pruned subtree leaf by leaf.
	ModeByLeaf Mode = iota
	// ModeBySubtree adjusts per whole pruned subtree.
	ModeBySubtree
)

// Options holds tunable parameters for a filtering session.
type Options struct {
	// Radius configures pixel connectivity: adjacency.Radius4 or Radius8.
	Radius float64
	// Graph selects the flat-zone graph variant.
	Graph fzgraph.Options
	// Mode selects the adjustment algorithm.
	Mode Mode
}

// DefaultOptions returns 8-connectivity, the eager graph variant, and
// leaf-driven adjustment.
func DefaultOptions() Options {
	return Options{Radius: 1.5, Graph: fzgraph.DefaultOptions(), Mode: ModeByLeaf}
}
