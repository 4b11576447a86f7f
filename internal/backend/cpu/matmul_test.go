package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatMul_Reference(t *testing.T) {
	backend := newTestBackend()
	b := []float64{
		1, 15, 14, 8,
		17, 9, 3, 19,
		16, 8, 19, 8,
		16, 3, 2, 12,
	}

	got := backend.MatMul(sample4x4(), b, 4, 4, 4)

	assert.Equal(t, []float64{
		147, 69, 85, 118,
		347, 209, 237, 306,
		547, 349, 389, 494,
		747, 489, 541, 682,
	}, got)
}

func TestMatMul_NonSquare(t *testing.T) {
	backend := newTestBackend()
	// (2x3) @ (3x2)
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{7, 8, 9, 10, 11, 12}

	assert.Equal(t, []float64{58, 64, 139, 154}, backend.MatMul(a, b, 2, 3, 2))
}

func TestMatMul_ZeroInner(t *testing.T) {
	backend := newTestBackend()
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, backend.MatMul(nil, nil, 2, 0, 3))
	assert.Empty(t, backend.MatMul(nil, []float64{1, 2}, 0, 1, 2))
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	backend := newTestBackend()
	assert.Panics(t, func() { backend.MatMul([]float64{1, 2, 3}, []float64{1, 2}, 1, 2, 1) })
}

func TestMatVec(t *testing.T) {
	backend := newTestBackend()

	got := backend.MatVec(sample4x4(), 4, 4, []float64{1, 2, 2, 0})
	assert.Equal(t, []float64{11, 31, 51, 71}, got)

	assert.Equal(t, []float64{0, 0}, backend.MatVec(nil, 2, 0, nil))
	assert.Panics(t, func() { backend.MatVec(sample4x4(), 4, 4, []float64{1}) })
}

func BenchmarkMatMul(b *testing.B) {
	backend := newTestBackend()
	const n = 128
	a := make([]float64, n*n)
	c := make([]float64, n*n)
	for i := range a {
		a[i] = float64(i % 7)
		c[i] = float64(i % 5)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = backend.MatMul(a, c, n, n, n)
	}
}
