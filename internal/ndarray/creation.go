package ndarray

import (
	"fmt"
	"math"
)

// ZerosVector creates a Vector of length n filled with zeros.
func ZerosVector(n int) (*Vector, error) {
	if err := checkShape("ZerosVector", n); err != nil {
		return nil, err
	}
	return newVector(make([]float64, n)), nil
}

// OnesVector creates a Vector of length n filled with ones.
func OnesVector(n int) (*Vector, error) {
	if err := checkShape("OnesVector", n); err != nil {
		return nil, err
	}
	return newVector(full(n, 1)), nil
}

// EmptyVector creates a Vector of length n. Only the shape is guaranteed; callers
// must not rely on the contents.
func EmptyVector(n int) (*Vector, error) {
	if err := checkShape("EmptyVector", n); err != nil {
		return nil, err
	}
	return newVector(make([]float64, n)), nil
}

// RandomVector creates a Vector of n values uniform in [0, 1). The same seed
// and length always reproduce the same values, matching numpy's
// np.random.seed(seed); np.random.rand(n).
//
// Example:
//
//	v, _ := ndarray.RandomVector(10, 5)
//	// ≈ [0.7713206 0.0207519 0.6336482 0.7488039 0.498507]
func RandomVector(seed uint32, n int) (*Vector, error) {
	if err := checkShape("RandomVector", n); err != nil {
		return nil, err
	}
	data := make([]float64, n)
	newUniformSource(seed).fill(data)
	return newVector(data), nil
}

// ZerosMatrix creates an r×c Matrix filled with zeros.
func ZerosMatrix(r, c int) (*Matrix, error) {
	if err := checkShape("ZerosMatrix", r, c); err != nil {
		return nil, err
	}
	return newMatrix(r, c, make([]float64, r*c)), nil
}

// OnesMatrix creates an r×c Matrix filled with ones.
func OnesMatrix(r, c int) (*Matrix, error) {
	if err := checkShape("OnesMatrix", r, c); err != nil {
		return nil, err
	}
	return newMatrix(r, c, full(r*c, 1)), nil
}

// EmptyMatrix creates an r×c Matrix whose contents are unspecified.
func EmptyMatrix(r, c int) (*Matrix, error) {
	if err := checkShape("EmptyMatrix", r, c); err != nil {
		return nil, err
	}
	return newMatrix(r, c, make([]float64, r*c)), nil
}

// RandomMatrix creates an r×c Matrix of values uniform in [0, 1), filled
// row-major from the same stream RandomVector uses for the seed.
func RandomMatrix(seed uint32, r, c int) (*Matrix, error) {
	if err := checkShape("RandomMatrix", r, c); err != nil {
		return nil, err
	}
	data := make([]float64, r*c)
	newUniformSource(seed).fill(data)
	return newMatrix(r, c, data), nil
}

func full(n int, value float64) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = value
	}
	return data
}

// checkShape rejects negative dimensions, and dimensions whose product
// overflows int, with ErrInvalidShape.
func checkShape(op string, dims ...int) error {
	if err := Shape(dims).Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n := 1
	for _, dim := range dims {
		if dim != 0 && n > math.MaxInt/dim {
			return opErrorf(op, ErrInvalidShape, "shape %v has too many elements", Shape(dims))
		}
		n *= dim
	}
	return nil
}
