package adjacency

import "errors"

// Sentinel errors for adjacency construction.
var (
	// ErrEmptyGrid indicates a non-positive row or column count.
	ErrEmptyGrid = errors.New("adjacency: rows and cols must be positive")
	// ErrBadRadius indicates a radius below 1 (no neighbors at all).
	ErrBadRadius = errors.New("adjacency: radius must be >= 1")
)

// Common radii. Radius4 yields 4-connectivity (orthogonal neighbors only);
// Radius8 also admits the diagonals.
const (
	Radius4 = 1.0
	Radius8 = 1.5
)

// Relation enumerates, for any pixel of a Rows×Cols grid, the neighboring
// pixels inside a disk of the configured radius (the pixel itself excluded).
// The offset order is fixed at construction, so enumeration is deterministic
// per pixel. Relation is immutable once built and safe to share.
type Relation struct {
	rows, cols int
	radius     float64
	offRow     []int
	offCol     []int
}
