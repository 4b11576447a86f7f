// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides small, immutable dense arrays: Vector (rank 1) and
// Matrix (rank 2) of float64 values.
//
// # Overview
//
// Every operation is eager and returns a freshly allocated array; receivers
// are never modified, so arrays can be shared freely between goroutines.
//
//   - Elementwise Add, Sub, Mul with scalar broadcasting
//   - Dot products: vector·vector, matrix·matrix, matrix·vector
//   - Reductions: Sum, Mean, Max, ArgMax (per axis for Matrix)
//   - Factories: zeros, ones, empty, seeded uniform random
//   - Stacking and slicing: HStack, VStack, Slice
//
// # Basic Usage
//
//	import (
//	    "fmt"
//
//	    "github.com/born-ml/ndarray/ndarray"
//	)
//
//	func main() {
//	    m, _ := ndarray.MatrixFromInts([][]int{{1, 2}, {3, 4}})
//
//	    doubled, _ := m.Mul(ndarray.Scalar(2))   // [[2 4] [6 8]]
//	    squared, _ := m.Mul(m.Operand())         // Hadamard product
//	    product, _ := m.Dot(m)                   // matrix product
//	    colMax, _ := m.Max(ndarray.ByColumn)     // [3 4]
//
//	    fmt.Println(doubled, squared, product, colMax)
//	}
//
// # Broadcasting
//
// The argument of Add, Sub and Mul is an Operand. Scalar(v) applies v to
// every element; Array(shape, data), Vector.Operand and Matrix.Operand must
// match the receiver's shape exactly. There is no implicit reshaping.
//
// # Errors
//
// Contract violations, including nil array arguments, are returned, never
// panicked, and wrap one of ErrShapeMismatch, ErrDimensionMismatch,
// ErrIndexOutOfRange, ErrInvalidShape or ErrInvalidAxis. No operation returns
// a partial result.
//
// # Random Numbers
//
// RandomVector and RandomMatrix seed a fresh MT19937 generator on each call,
// so identical seeds and shapes give bit-identical arrays. The stream equals
// numpy's legacy RandomState, which keeps fixtures portable between the two.
//
// # Parallelism
//
// Large kernels are split across goroutines. NDARRAY_PARALLEL,
// NDARRAY_WORKERS and NDARRAY_MIN_CHUNK tune this at process start.
package ndarray
