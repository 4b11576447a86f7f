package ndarray

import (
	"strings"
)

// Matrix is an immutable rank-2 array of float64 values with shape
// (rows, cols), stored row-major in a flat buffer.
type Matrix struct {
	rows, cols int
	data       []float64 // len == rows*cols
}

// NewMatrix creates a Matrix by copying rows. All rows must have the same
// length; an empty input yields a 0×0 matrix.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, opErrorf("NewMatrix", ErrDimensionMismatch, "row %d has %d columns, expected %d", i, len(row), c)
		}
		data = append(data, row...)
	}
	return newMatrix(r, c, data), nil
}

// MatrixFromInts creates a Matrix from integer rows, widened to float64.
func MatrixFromInts(rows [][]int) (*Matrix, error) {
	converted := make([][]float64, len(rows))
	for i, row := range rows {
		converted[i] = make([]float64, len(row))
		for j, v := range row {
			converted[i][j] = float64(v)
		}
	}
	return NewMatrix(converted)
}

// MatrixFromSlice creates an r×c Matrix by copying a row-major buffer.
func MatrixFromSlice(r, c int, data []float64) (*Matrix, error) {
	if err := checkShape("MatrixFromSlice", r, c); err != nil {
		return nil, err
	}
	if len(data) != r*c {
		return nil, opErrorf("MatrixFromSlice", ErrDimensionMismatch, "shape (%d, %d) requires %d elements, got %d",
			r, c, r*c, len(data))
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return newMatrix(r, c, buf), nil
}

// newMatrix wraps data without copying; callers must own data exclusively.
func newMatrix(r, c int, data []float64) *Matrix {
	return &Matrix{rows: r, cols: c, data: data}
}

// Array returns a copy of the matrix as a slice of rows.
func (m *Matrix) Array() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out
}

// Shape returns (rows, cols).
func (m *Matrix) Shape() Shape {
	return Shape{m.rows, m.cols}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the element at (i, j).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, opErrorf("Matrix.At", ErrIndexOutOfRange, "(%d, %d) for shape %v", i, j, m.Shape())
	}
	return m.data[i*m.cols+j], nil
}

// Row returns a copy of row i as a Vector.
func (m *Matrix) Row(i int) (*Vector, error) {
	if i < 0 || i >= m.rows {
		return nil, opErrorf("Matrix.Row", ErrIndexOutOfRange, "row %d for %d rows", i, m.rows)
	}
	return NewVector(m.data[i*m.cols : (i+1)*m.cols]), nil
}

// Operand wraps the matrix for use as the argument of an elementwise operation.
func (m *Matrix) Operand() Operand {
	return Operand{kind: operandArray, shape: m.Shape(), data: m.data}
}

// Slice returns rows [start, start+n) as a new n×cols Matrix.
func (m *Matrix) Slice(n, start int) (*Matrix, error) {
	if n < 0 || start < 0 || start > m.rows || n > m.rows-start {
		return nil, opErrorf("Matrix.Slice", ErrIndexOutOfRange, "rows [%d, %d) for %d rows", start, start+n, m.rows)
	}
	return newMatrix(n, m.cols, backend.Window(m.data, m.cols, start, start+n, 0, m.cols)), nil
}

// Block returns the first n rows restricted to columns [start, cols), i.e.
// numpy's m[:n, start:].
func (m *Matrix) Block(n, start int) (*Matrix, error) {
	if n < 0 || n > m.rows || start < 0 || start > m.cols {
		return nil, opErrorf("Matrix.Block", ErrIndexOutOfRange, "[:%d, %d:] for shape %v", n, start, m.Shape())
	}
	return newMatrix(n, m.cols-start, backend.Window(m.data, m.cols, 0, n, start, m.cols)), nil
}

// Add returns m + x, broadcasting a scalar operand.
func (m *Matrix) Add(x Operand) (*Matrix, error) {
	out, err := elementwise("Matrix.Add", m.Shape(), m.data, x, backend.Add, backend.AddScalar)
	if err != nil {
		return nil, err
	}
	return newMatrix(m.rows, m.cols, out), nil
}

// Sub returns m - x, broadcasting a scalar operand.
func (m *Matrix) Sub(x Operand) (*Matrix, error) {
	out, err := elementwise("Matrix.Sub", m.Shape(), m.data, x, backend.Sub, backend.SubScalar)
	if err != nil {
		return nil, err
	}
	return newMatrix(m.rows, m.cols, out), nil
}

// Mul returns the elementwise (Hadamard) product m * x. It is not the matrix
// product; use Dot for that.
func (m *Matrix) Mul(x Operand) (*Matrix, error) {
	out, err := elementwise("Matrix.Mul", m.Shape(), m.data, x, backend.Mul, backend.MulScalar)
	if err != nil {
		return nil, err
	}
	return newMatrix(m.rows, m.cols, out), nil
}

// Dot returns the matrix product m @ x: (r, c) @ (c, k) -> (r, k).
func (m *Matrix) Dot(x *Matrix) (*Matrix, error) {
	if x == nil {
		return nil, errNilArgument("Matrix.Dot")
	}
	if x.rows != m.cols {
		return nil, opErrorf("Matrix.Dot", ErrDimensionMismatch, "%v @ %v", m.Shape(), x.Shape())
	}
	return newMatrix(m.rows, x.cols, backend.MatMul(m.data, x.data, m.rows, m.cols, x.cols)), nil
}

// DotVector returns the matrix-vector product m @ x: (r, c) @ (c) -> (r).
func (m *Matrix) DotVector(x *Vector) (*Vector, error) {
	if x == nil {
		return nil, errNilArgument("Matrix.DotVector")
	}
	if x.Len() != m.cols {
		return nil, opErrorf("Matrix.DotVector", ErrDimensionMismatch, "%v @ %v", m.Shape(), x.Shape())
	}
	return newVector(backend.MatVec(m.data, m.rows, m.cols, x.data)), nil
}

// Max returns the maximum along axis: one value per column for ByColumn,
// one per row for ByRow.
func (m *Matrix) Max(axis Axis) (*Vector, error) {
	if err := m.checkReduction("Matrix.Max", axis); err != nil {
		return nil, err
	}
	return newVector(backend.MaxDim(m.data, m.rows, m.cols, int(axis))), nil
}

// ArgMax returns the index of the first maximum along axis, with the same
// length rule as Max.
func (m *Matrix) ArgMax(axis Axis) (*Vector, error) {
	if err := m.checkReduction("Matrix.ArgMax", axis); err != nil {
		return nil, err
	}
	idx := backend.ArgmaxDim(m.data, m.rows, m.cols, int(axis))
	out := make([]float64, len(idx))
	for i, k := range idx {
		out[i] = float64(k)
	}
	return newVector(out), nil
}

func (m *Matrix) checkReduction(op string, axis Axis) error {
	if err := axis.Validate(); err != nil {
		return opErrorf(op, err, "matrix reductions take ByColumn or ByRow")
	}
	if (axis == ByColumn && m.rows == 0) || (axis == ByRow && m.cols == 0) {
		return opErrorf(op, ErrIndexOutOfRange, "reduction %v over empty dimension of shape %v", axis, m.Shape())
	}
	return nil
}

// Sum returns the sum over all cells.
func (m *Matrix) Sum() float64 {
	return backend.Sum(m.data)
}

// Mean returns Sum()/(rows*cols); NaN for an empty matrix.
func (m *Matrix) Mean() float64 {
	return m.Sum() / float64(len(m.data))
}

// Exp returns e^x for every cell.
func (m *Matrix) Exp() *Matrix {
	return newMatrix(m.rows, m.cols, backend.Exp(m.data))
}

// HStack concatenates x to the right of m: (r, c) | (r, c2) -> (r, c+c2).
func (m *Matrix) HStack(x *Matrix) (*Matrix, error) {
	if x == nil {
		return nil, errNilArgument("Matrix.HStack")
	}
	if x.rows != m.rows {
		return nil, opErrorf("Matrix.HStack", ErrDimensionMismatch, "row counts %d and %d", m.rows, x.rows)
	}
	return newMatrix(m.rows, m.cols+x.cols, backend.Cat(m.data, m.rows, m.cols, x.data, x.rows, x.cols, 1)), nil
}

// VStack concatenates x below m: (r, c) over (r2, c) -> (r+r2, c).
func (m *Matrix) VStack(x *Matrix) (*Matrix, error) {
	if x == nil {
		return nil, errNilArgument("Matrix.VStack")
	}
	if x.cols != m.cols {
		return nil, opErrorf("Matrix.VStack", ErrDimensionMismatch, "column counts %d and %d", m.cols, x.cols)
	}
	return newMatrix(m.rows+x.rows, m.cols, backend.Cat(m.data, m.rows, m.cols, x.data, x.rows, x.cols, 0)), nil
}

// Equal reports whether o has the same shape and elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || o.rows != m.rows || o.cols != m.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String formats the matrix like numpy, one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString("\n ")
		}
		writeRow(&b, m.data[i*m.cols:(i+1)*m.cols])
	}
	b.WriteByte(']')
	return b.String()
}
