package ndarray

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by array operations. Operations wrap them with the
// failing method name, so callers should match with errors.Is.
var (
	// ErrShapeMismatch is returned when an elementwise operand is an array whose
	// shape differs from the receiver's.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrDimensionMismatch is returned when a contraction's inner dimensions
	// differ, when stacked arrays disagree on the non-concatenated dimension, or
	// when construction receives ragged rows.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrIndexOutOfRange is returned for slice bounds or indices outside the
	// array, and for max/argmax over a zero-length dimension.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrInvalidShape is returned when a factory receives a negative dimension.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrInvalidAxis is returned for an Axis other than ByColumn or ByRow.
	ErrInvalidAxis = errors.New("ndarray: invalid axis")
)

// errNilArgument reports a nil array passed where a shape is required.
func errNilArgument(op string) error {
	return opErrorf(op, ErrDimensionMismatch, "nil argument")
}

// opErrorf wraps err with the operation name and a formatted detail.
func opErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}
