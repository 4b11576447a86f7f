// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Type aliases for public API

// Shape represents the dimensions of an array.
// Example: Shape{4, 4} is a 4×4 Matrix, Shape{5} a Vector of length 5.
type Shape = ndarray.Shape

// Vector is an immutable rank-1 array of float64 values.
type Vector = ndarray.Vector

// Matrix is an immutable rank-2 array of float64 values stored row-major.
type Matrix = ndarray.Matrix

// Operand is the argument of an elementwise operation: a broadcast scalar or
// an array whose shape equals the receiver's.
type Operand = ndarray.Operand

// Axis names the dimension a Matrix reduction collapses.
type Axis = ndarray.Axis

// Axis constants.
const (
	ByColumn Axis = ndarray.ByColumn // one result per column (numpy axis=0)
	ByRow    Axis = ndarray.ByRow    // one result per row (numpy axis=1)
)

// Errors returned by array operations; match with errors.Is.
var (
	ErrShapeMismatch     = ndarray.ErrShapeMismatch
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrIndexOutOfRange   = ndarray.ErrIndexOutOfRange
	ErrInvalidShape      = ndarray.ErrInvalidShape
	ErrInvalidAxis       = ndarray.ErrInvalidAxis
)

// Operands

// Scalar returns an operand that broadcasts v to every element.
//
// Example:
//
//	y, err := v.Add(ndarray.Scalar(10))
func Scalar(v float64) Operand {
	return ndarray.Scalar(v)
}

// Array returns an operand backed by a raw row-major buffer of the given shape.
//
// Example:
//
//	y, err := m.Sub(ndarray.Array(ndarray.Shape{2, 2}, []float64{1, 2, 3, 4}))
func Array(shape Shape, data []float64) Operand {
	return ndarray.Array(shape, data)
}

// Construction

// NewVector creates a Vector by copying values.
func NewVector(values []float64) *Vector {
	return ndarray.NewVector(values)
}

// VectorFromInts creates a Vector from integers.
func VectorFromInts(values []int) *Vector {
	return ndarray.VectorFromInts(values)
}

// NewMatrix creates a Matrix from equal-length rows.
//
// Example:
//
//	m, err := ndarray.NewMatrix([][]float64{{1, 2}, {3, 4}})
func NewMatrix(rows [][]float64) (*Matrix, error) {
	return ndarray.NewMatrix(rows)
}

// MatrixFromInts creates a Matrix from equal-length integer rows.
func MatrixFromInts(rows [][]int) (*Matrix, error) {
	return ndarray.MatrixFromInts(rows)
}

// MatrixFromSlice creates an r×c Matrix from a row-major buffer.
func MatrixFromSlice(r, c int, data []float64) (*Matrix, error) {
	return ndarray.MatrixFromSlice(r, c, data)
}

// Factories

// ZerosVector creates a Vector of n zeros.
func ZerosVector(n int) (*Vector, error) {
	return ndarray.ZerosVector(n)
}

// OnesVector creates a Vector of n ones.
func OnesVector(n int) (*Vector, error) {
	return ndarray.OnesVector(n)
}

// EmptyVector creates a Vector of length n with unspecified contents.
func EmptyVector(n int) (*Vector, error) {
	return ndarray.EmptyVector(n)
}

// RandomVector creates a Vector of n values uniform in [0, 1), reproducible
// from seed and identical to numpy's legacy np.random.seed(seed); np.random.rand(n).
func RandomVector(seed uint32, n int) (*Vector, error) {
	return ndarray.RandomVector(seed, n)
}

// ZerosMatrix creates an r×c Matrix of zeros.
func ZerosMatrix(r, c int) (*Matrix, error) {
	return ndarray.ZerosMatrix(r, c)
}

// OnesMatrix creates an r×c Matrix of ones.
func OnesMatrix(r, c int) (*Matrix, error) {
	return ndarray.OnesMatrix(r, c)
}

// EmptyMatrix creates an r×c Matrix with unspecified contents.
func EmptyMatrix(r, c int) (*Matrix, error) {
	return ndarray.EmptyMatrix(r, c)
}

// RandomMatrix creates an r×c Matrix of values uniform in [0, 1), filled
// row-major and reproducible from seed.
func RandomMatrix(seed uint32, r, c int) (*Matrix, error) {
	return ndarray.RandomMatrix(seed, r, c)
}
