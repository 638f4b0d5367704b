package imgu8

import "errors"

// Sentinel errors for image construction.
var (
	// ErrEmptyImage indicates a non-positive row or column count.
	ErrEmptyImage = errors.New("imgu8: rows and cols must be positive")
	// ErrSizeMismatch indicates the pixel buffer length differs from rows*cols.
	ErrSizeMismatch = errors.New("imgu8: data length does not match rows*cols")
)

// Image is an 8-bit grayscale image stored row-major with no padding and a
// single channel. Pixels are addressed by the linear index p = row*Cols + col.
type Image struct {
	Rows, Cols int
	Data       []uint8
}
