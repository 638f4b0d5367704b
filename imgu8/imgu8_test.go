package imgu8

import "testing"

// TestNew_Errors verifies dimension validation.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		err        error
	}{
		{"ZeroRows", 0, 3, ErrEmptyImage},
		{"ZeroCols", 3, 0, ErrEmptyImage},
		{"NegativeRows", -1, 3, ErrEmptyImage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.rows, tc.cols); err != tc.err {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestFromBytes verifies wrapping and the size mismatch error.
func TestFromBytes(t *testing.T) {
	if _, err := FromBytes(2, 2, []uint8{1, 2, 3}); err != ErrSizeMismatch {
		t.Fatalf("FromBytes mismatch error = %v; want %v", err, ErrSizeMismatch)
	}
	im, err := FromBytes(2, 3, []uint8{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if im.Size() != 6 {
		t.Errorf("Size() = %d; want 6", im.Size())
	}
	if im.At(4) != 4 {
		t.Errorf("At(4) = %d; want 4", im.At(4))
	}
}

// TestCloneEqual verifies deep copy independence and equality semantics.
func TestCloneEqual(t *testing.T) {
	im, _ := FromBytes(2, 2, []uint8{9, 8, 7, 6})
	cp := im.Clone()
	if !im.Equal(cp) {
		t.Fatal("clone should equal original")
	}
	cp.Data[0] = 0
	if im.Equal(cp) {
		t.Fatal("mutating the clone must not affect the original")
	}
	other, _ := FromBytes(1, 4, []uint8{9, 8, 7, 6})
	if im.Equal(other) {
		t.Fatal("images with different shapes must not be equal")
	}
	if im.Equal(nil) {
		t.Fatal("nil comparison must be false")
	}
}
