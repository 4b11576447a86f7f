package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Sum returns the sum of all elements (0 for an empty buffer).
func (cpu *CPUBackend) Sum(a []float64) float64 {
	return floats.Sum(a)
}

// Dot returns Σ a[i]*b[i].
func (cpu *CPUBackend) Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("dot: length mismatch %d vs %d", len(a), len(b)))
	}
	return floats.Dot(a, b)
}

// Max returns the largest element. Panics on an empty buffer.
func (cpu *CPUBackend) Max(a []float64) float64 {
	return floats.Max(a)
}

// Argmax returns the index of the first occurrence of the largest element.
// Panics on an empty buffer.
func (cpu *CPUBackend) Argmax(a []float64) int {
	return floats.MaxIdx(a)
}

// MaxDim reduces a rows×cols buffer with max along dim.
//
// dim 0 collapses the rows and yields one value per column (length cols);
// dim 1 collapses the columns and yields one value per row (length rows).
func (cpu *CPUBackend) MaxDim(data []float64, rows, cols, dim int) []float64 {
	idx := cpu.ArgmaxDim(data, rows, cols, dim)
	out := make([]float64, len(idx))
	for i, k := range idx {
		if dim == 0 {
			out[i] = data[k*cols+i]
		} else {
			out[i] = data[i*cols+k]
		}
	}
	return out
}

// ArgmaxDim returns, for each lane along dim, the index of the first maximum.
// The reduced dimension must be non-empty.
func (cpu *CPUBackend) ArgmaxDim(data []float64, rows, cols, dim int) []int {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("argmaxdim: buffer of %d elements does not match %dx%d", len(data), rows, cols))
	}

	switch dim {
	case 0:
		if rows == 0 {
			panic("argmaxdim: cannot reduce an empty dimension 0")
		}
		out := make([]int, cols)
		parallel.ForRange(cols, func(start, end int) {
			column := make([]float64, rows)
			for j := start; j < end; j++ {
				for i := 0; i < rows; i++ {
					column[i] = data[i*cols+j]
				}
				out[j] = floats.MaxIdx(column)
			}
		}, cpu.cfg)
		return out
	case 1:
		if cols == 0 {
			panic("argmaxdim: cannot reduce an empty dimension 1")
		}
		out := make([]int, rows)
		parallel.For(rows, func(i int) {
			out[i] = floats.MaxIdx(data[i*cols : (i+1)*cols])
		}, cpu.cfg)
		return out
	default:
		panic(fmt.Sprintf("argmaxdim: dimension %d out of range for 2D buffer", dim))
	}
}
