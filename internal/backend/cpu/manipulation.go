package cpu

import (
	"fmt"
)

// Cat concatenates two row-major 2D buffers along dim.
//
// dim 0 stacks b below a (column counts must match); dim 1 places b to the
// right of a (row counts must match). Vectors are concatenated by treating
// them as single-row buffers with dim 1.
//
// Example:
//
//	out := backend.Cat(a, 2, 3, b, 2, 5, 1) // 2x8
func (cpu *CPUBackend) Cat(a []float64, aRows, aCols int, b []float64, bRows, bCols int, dim int) []float64 {
	if len(a) != aRows*aCols || len(b) != bRows*bCols {
		panic(fmt.Sprintf("cat: buffers (%d, %d) do not match shapes [%d,%d] and [%d,%d]",
			len(a), len(b), aRows, aCols, bRows, bCols))
	}

	switch dim {
	case 0:
		if aCols != bCols {
			panic(fmt.Sprintf("cat: dimension 1 is %d, expected %d", bCols, aCols))
		}
		out := make([]float64, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	case 1:
		if aRows != bRows {
			panic(fmt.Sprintf("cat: dimension 0 is %d, expected %d", bRows, aRows))
		}
		cols := aCols + bCols
		out := make([]float64, aRows*cols)
		for i := 0; i < aRows; i++ {
			copy(out[i*cols:], a[i*aCols:(i+1)*aCols])
			copy(out[i*cols+aCols:], b[i*bCols:(i+1)*bCols])
		}
		return out
	default:
		panic(fmt.Sprintf("cat: dimension %d out of range for 2D buffer", dim))
	}
}

// Window copies rows [rowStart, rowEnd) and columns [colStart, colEnd) of a
// rows×cols buffer into a new buffer.
func (cpu *CPUBackend) Window(data []float64, cols, rowStart, rowEnd, colStart, colEnd int) []float64 {
	width := colEnd - colStart
	out := make([]float64, (rowEnd-rowStart)*width)
	for i := rowStart; i < rowEnd; i++ {
		copy(out[(i-rowStart)*width:], data[i*cols+colStart:i*cols+colEnd])
	}
	return out
}
