// Package fzgraph defines the shared contract, options, and sentinel errors
// for flat-zone graphs over a grayscale image.
package fzgraph

import (
	"errors"

	"github.com/katalvlaran/morphtree/adjacency"
	"github.com/katalvlaran/morphtree/imgu8"
	"github.com/katalvlaran/morphtree/pixelset"
)

// Sentinel errors for graph construction.
var (
	// ErrNilImage indicates a nil image was supplied.
	ErrNilImage = errors.New("fzgraph: image is nil")
	// ErrNilAdjacency indicates a nil adjacency relation was supplied.
	ErrNilAdjacency = errors.New("fzgraph: adjacency relation is nil")
	// ErrDimensionMismatch indicates the relation was built for another grid.
	ErrDimensionMismatch = errors.New("fzgraph: adjacency dimensions do not match image")
	// ErrUnknownVariant indicates an unrecognized Variant in Options.
	ErrUnknownVariant = errors.New("fzgraph: unknown graph variant")
)

// Variant selects one of the three graph implementations. All variants obey
// the same Graph contract; the choice trades memory for query speed.
type Variant int

const (
	// VariantFullEdges stores every cross-zone edge eagerly: O(deg) queries,
	// O(deg(loser)) merges, O(E) memory.
	VariantFullEdges Variant = iota
	// VariantBoundary stores only per-zone boundary pixel lists: O(1) merges,
	// O(|boundary|·deg) amortized queries, incremental boundary refiltering.
	VariantBoundary
	// VariantFullScan stores nothing beyond the zones: O(1) merges,
	// O(|zone|·deg) queries.
	VariantFullScan
)

// Options holds tunable parameters for graph construction.
type Options struct {
	// Variant chooses the adjacency implementation.
	Variant Variant
}

// DefaultOptions returns Options selecting VariantFullEdges.
func DefaultOptions() Options {
	return Options{Variant: VariantFullEdges}
}

// Graph is the contract shared by all flat-zone graph variants. A flat zone
// is identified by its representative: the canonical (smallest-index) pixel
// of the zone. The winner of any merge is always the smallest canonical
// representative; this is an invariant, not a default.
//
// The contract documented here takes precedence over any single variant's
// implementation notes.
type Graph interface {
	// Image returns the underlying grayscale image.
	Image() *imgu8.Image
	// Adjacency returns the pixel neighbor relation.
	Adjacency() *adjacency.Relation
	// Pixels returns the shared pixel-set manager.
	Pixels() *pixelset.Manager
	// NumFlatZones returns the current number of live flat zones.
	NumFlatZones() int
	// FindRepresentative returns the canonical pixel of the zone holding p.
	FindRepresentative(p int) int
	// FlatzoneSize returns the pixel count of the zone holding rep.
	FlatzoneSize(rep int) int
	// ForEachPixelOfFlatzone walks every pixel of the zone holding rep.
	ForEachPixelOfFlatzone(rep int, visit func(p int))
	// ForEachAdjacentFlatzone invokes visit once per flat zone sharing at
	// least one pixel edge with the zone of rep, deduplicated within the call.
	ForEachAdjacentFlatzone(rep int, visit func(neighRep int))
	// ForEachAdjacentFlatzoneStatic is the pre-merge fast path: it assumes no
	// merges have happened yet and skips the union-find lookups.
	ForEachAdjacentFlatzoneStatic(rep int, visit func(neighRep int))
	// MergeAdjacentCandidatesInPlace keeps from candidates only the zones
	// actually adjacent to baseRep, unions them with baseRep around the
	// minimum-representative winner, and rewrites candidates so that merged
	// entries are replaced by the single canonical winner. Returns the winner.
	MergeAdjacentCandidatesInPlace(baseRep int, candidates *[]int) int
	// MergeBasesWithAdjacentCandidatesInPlace first unions all baseReps
	// (known to form one connected region) into the minimum-representative
	// winner, honoring winnerHint when it canonicalizes to that minimum, then
	// applies MergeAdjacentCandidatesInPlace for candidates. winnerHint < 0
	// means "no hint". Returns the winner, or -1 when baseReps is empty.
	MergeBasesWithAdjacentCandidatesInPlace(baseReps []int, candidates *[]int, winnerHint int) int
}

// New constructs the graph variant selected by opts over the given image and
// adjacency relation. Flat zones are discovered by BFS at construction time.
func New(im *imgu8.Image, rel *adjacency.Relation, opts Options) (Graph, error) {
	switch opts.Variant {
	case VariantFullEdges:
		return NewFullEdges(im, rel)
	case VariantBoundary:
		return NewBoundary(im, rel)
	case VariantFullScan:
		return NewFullScan(im, rel)
	default:
		return nil, ErrUnknownVariant
	}
}
