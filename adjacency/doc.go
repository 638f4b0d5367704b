// Package adjacency provides disk-shaped pixel neighbor relations over a
// row-major grid.
//
// A Relation is built once from the grid dimensions and a radius: 1.0
// (Radius4) yields the four orthogonal neighbors, 1.5 (Radius8) adds the
// diagonals. Offsets are precomputed in a fixed order so that every
// enumeration of a pixel's neighborhood is deterministic — flat-zone
// discovery and tree construction rely on that.
//
// ForEachNeighborForward enumerates only the half of the disk that follows
// the pixel in row-major order; sweeping the whole grid with it emits every
// unordered neighboring pair exactly once, which is how the eager flat-zone
// graph generates its edge set without duplicates.
package adjacency
