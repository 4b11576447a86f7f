package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatMul performs matrix multiplication (M, K) @ (K, N) -> (M, N) on
// row-major buffers using gonum's BLAS-backed Dense.Mul.
func (cpu *CPUBackend) MatMul(a, b []float64, m, k, n int) []float64 {
	if len(a) != m*k || len(b) != k*n {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d] with buffers %d and %d", m, k, k, n, len(a), len(b)))
	}

	out := make([]float64, m*n)
	// gonum rejects zero-sized matrices; the product is all zeros anyway.
	if m == 0 || k == 0 || n == 0 {
		return out
	}

	dst := mat.NewDense(m, n, out)
	dst.Mul(mat.NewDense(m, k, a), mat.NewDense(k, n, b))
	return out
}

// MatVec performs the matrix-vector product (M, K) @ (K) -> (M).
func (cpu *CPUBackend) MatVec(a []float64, m, k int, x []float64) []float64 {
	if len(a) != m*k || len(x) != k {
		panic(fmt.Sprintf("matvec: shape mismatch [%d,%d] @ [%d]", m, k, len(x)))
	}

	out := make([]float64, m)
	if m == 0 || k == 0 {
		return out
	}

	dst := mat.NewVecDense(m, out)
	dst.MulVec(mat.NewDense(m, k, a), mat.NewVecDense(k, x))
	return out
}
