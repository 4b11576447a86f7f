package ndarray

import (
	"strconv"
	"strings"
)

// Vector is an immutable rank-1 array of float64 values with shape (n).
//
// Every method returns a new value; the receiver's buffer is never modified
// and never shared with callers.
type Vector struct {
	data []float64
}

// NewVector creates a Vector by copying values.
func NewVector(values []float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)
	return &Vector{data: data}
}

// VectorFromInts creates a Vector from integer values, widened to float64.
func VectorFromInts(values []int) *Vector {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return &Vector{data: data}
}

// newVector wraps data without copying; callers must own data exclusively.
func newVector(data []float64) *Vector {
	return &Vector{data: data}
}

// Array returns a copy of the vector's elements.
func (v *Vector) Array() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// Shape returns (n).
func (v *Vector) Shape() Shape {
	return Shape{len(v.data)}
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, opErrorf("Vector.At", ErrIndexOutOfRange, "index %d for length %d", i, len(v.data))
	}
	return v.data[i], nil
}

// Operand wraps the vector for use as the argument of an elementwise operation.
func (v *Vector) Operand() Operand {
	return Operand{kind: operandArray, shape: v.Shape(), data: v.data}
}

// Slice returns the first k elements as a new Vector. k must be in [0, Len()].
func (v *Vector) Slice(k int) (*Vector, error) {
	if k < 0 || k > len(v.data) {
		return nil, opErrorf("Vector.Slice", ErrIndexOutOfRange, "prefix %d for length %d", k, len(v.data))
	}
	return NewVector(v.data[:k]), nil
}

// Add returns v + x, broadcasting a scalar operand.
func (v *Vector) Add(x Operand) (*Vector, error) {
	out, err := elementwise("Vector.Add", v.Shape(), v.data, x, backend.Add, backend.AddScalar)
	if err != nil {
		return nil, err
	}
	return newVector(out), nil
}

// Sub returns v - x, broadcasting a scalar operand.
func (v *Vector) Sub(x Operand) (*Vector, error) {
	out, err := elementwise("Vector.Sub", v.Shape(), v.data, x, backend.Sub, backend.SubScalar)
	if err != nil {
		return nil, err
	}
	return newVector(out), nil
}

// Mul returns the elementwise (Hadamard) product v * x, broadcasting a scalar operand.
func (v *Vector) Mul(x Operand) (*Vector, error) {
	out, err := elementwise("Vector.Mul", v.Shape(), v.data, x, backend.Mul, backend.MulScalar)
	if err != nil {
		return nil, err
	}
	return newVector(out), nil
}

// Dot returns the inner product Σ v[i]*x[i].
func (v *Vector) Dot(x *Vector) (float64, error) {
	if x == nil {
		return 0, errNilArgument("Vector.Dot")
	}
	if len(x.data) != len(v.data) {
		return 0, opErrorf("Vector.Dot", ErrDimensionMismatch, "lengths %d and %d", len(v.data), len(x.data))
	}
	return backend.Dot(v.data, x.data), nil
}

// Max returns the largest element.
func (v *Vector) Max() (float64, error) {
	if len(v.data) == 0 {
		return 0, opErrorf("Vector.Max", ErrIndexOutOfRange, "empty vector")
	}
	return backend.Max(v.data), nil
}

// ArgMax returns the index of the first occurrence of the largest element.
func (v *Vector) ArgMax() (int, error) {
	if len(v.data) == 0 {
		return 0, opErrorf("Vector.ArgMax", ErrIndexOutOfRange, "empty vector")
	}
	return backend.Argmax(v.data), nil
}

// Sum returns the sum of all elements.
func (v *Vector) Sum() float64 {
	return backend.Sum(v.data)
}

// Mean returns Sum()/Len(); NaN for an empty vector.
func (v *Vector) Mean() float64 {
	return v.Sum() / float64(len(v.data))
}

// Exp returns e^x for every element.
func (v *Vector) Exp() *Vector {
	return newVector(backend.Exp(v.data))
}

// HStack returns the concatenation of v followed by x. A nil x contributes
// no elements.
func (v *Vector) HStack(x *Vector) *Vector {
	if x == nil {
		return NewVector(v.data)
	}
	return newVector(backend.Cat(v.data, 1, len(v.data), x.data, 1, len(x.data), 1))
}

// VStack stacks v and x as the two rows of a 2×n Matrix.
func (v *Vector) VStack(x *Vector) (*Matrix, error) {
	if x == nil {
		return nil, errNilArgument("Vector.VStack")
	}
	n := len(v.data)
	if len(x.data) != n {
		return nil, opErrorf("Vector.VStack", ErrDimensionMismatch, "lengths %d and %d", n, len(x.data))
	}
	return newMatrix(2, n, backend.Cat(v.data, 1, n, x.data, 1, n, 0)), nil
}

// Equal reports whether o has the same length and elements.
func (v *Vector) Equal(o *Vector) bool {
	if o == nil || len(o.data) != len(v.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String formats the vector like numpy, e.g. "[1 2 3]".
func (v *Vector) String() string {
	var b strings.Builder
	writeRow(&b, v.data)
	return b.String()
}

func writeRow(b *strings.Builder, row []float64) {
	b.WriteByte('[')
	for i, x := range row {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(']')
}
