// Package tree defines the node identifier, the gray-level bound, and the
// sentinel errors for component trees.
package tree

import "errors"

// NodeID is a dense index into a tree's node arena. Freed IDs are recycled
// through a LIFO free list, so a NodeID is only meaningful while its slot is
// live; holding one across engine calls is a programmer error.
type NodeID int

// InvalidNode is the sentinel for "absent" in every structural field.
const InvalidNode NodeID = -1

// MaxLevel is the highest representable gray level (8-bit images).
const MaxLevel = 255

// Sentinel errors for tree construction and validation.
var (
	// ErrNilGraph indicates a nil flat-zone graph was supplied.
	ErrNilGraph = errors.New("tree: flat-zone graph is nil")
	// ErrCorruptStructure is wrapped by ValidateStructure diagnostics.
	ErrCorruptStructure = errors.New("tree: corrupt structure")
)
