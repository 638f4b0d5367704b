// Package imgu8 provides the 8-bit grayscale image container shared by the
// flat-zone graph, the component trees, and the filtering driver.
//
// Images are row-major, single channel, no padding; a pixel is addressed by
// its linear index p = row*Cols + col. The type is a plain value container:
// FromBytes wraps a caller's buffer without copying, Clone produces an
// independent copy, and Equal compares shape and pixels — the bit-identical
// check the filtering tests are built on.
package imgu8
