package cpu

import (
	"math"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Exp returns e^x for every element.
func (cpu *CPUBackend) Exp(a []float64) []float64 {
	out := make([]float64, len(a))
	parallel.ForRange(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = math.Exp(a[i])
		}
	}, cpu.cfg)
	return out
}
