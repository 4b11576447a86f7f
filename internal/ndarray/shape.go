package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array: (n) for a Vector and
// (rows, cols) for a Matrix.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that no dimension is negative. Zero-length dimensions are valid.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as a tuple, e.g. "(5,)" or "(4, 4)".
func (s Shape) String() string {
	if len(s) == 1 {
		return "(" + strconv.Itoa(s[0]) + ",)"
	}
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
