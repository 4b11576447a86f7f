package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Add returns a + b element-wise.
func (cpu *CPUBackend) Add(a, b []float64) []float64 {
	return cpu.binary("add", a, b, floats.AddTo)
}

// Sub returns a - b element-wise.
func (cpu *CPUBackend) Sub(a, b []float64) []float64 {
	return cpu.binary("sub", a, b, floats.SubTo)
}

// Mul returns the Hadamard product a * b.
func (cpu *CPUBackend) Mul(a, b []float64) []float64 {
	return cpu.binary("mul", a, b, floats.MulTo)
}

// AddScalar returns a + s for every element.
func (cpu *CPUBackend) AddScalar(a []float64, s float64) []float64 {
	return cpu.scalar(a, func(dst []float64) { floats.AddConst(s, dst) })
}

// SubScalar returns a - s for every element.
func (cpu *CPUBackend) SubScalar(a []float64, s float64) []float64 {
	return cpu.scalar(a, func(dst []float64) { floats.AddConst(-s, dst) })
}

// MulScalar returns a * s for every element.
func (cpu *CPUBackend) MulScalar(a []float64, s float64) []float64 {
	return cpu.scalar(a, func(dst []float64) { floats.Scale(s, dst) })
}

// binary applies a gonum "To" routine chunk by chunk into a fresh buffer.
func (cpu *CPUBackend) binary(op string, a, b []float64, fn func(dst, s, t []float64) []float64) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("%s: length mismatch %d vs %d", op, len(a), len(b)))
	}
	out := make([]float64, len(a))
	parallel.ForRange(len(a), func(start, end int) {
		fn(out[start:end], a[start:end], b[start:end])
	}, cpu.cfg)
	return out
}

// scalar copies a and applies the in-place routine fn to each chunk of the copy.
func (cpu *CPUBackend) scalar(a []float64, fn func(dst []float64)) []float64 {
	out := make([]float64, len(a))
	parallel.ForRange(len(a), func(start, end int) {
		copy(out[start:end], a[start:end])
		fn(out[start:end])
	}, cpu.cfg)
	return out
}
