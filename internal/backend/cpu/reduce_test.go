package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sample4x4 is the row-major buffer for [[1..4],[5..8],[9..12],[13..16]].
func sample4x4() []float64 {
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i + 1)
	}
	return data
}

func TestSum(t *testing.T) {
	backend := newTestBackend()
	assert.Equal(t, 15.0, backend.Sum([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 136.0, backend.Sum(sample4x4()))
}

func TestDot(t *testing.T) {
	backend := newTestBackend()
	assert.Equal(t, 16.0, backend.Dot([]float64{1, 2, 3, 4, 5}, []float64{1, 2, 2, 0, 1}))
	assert.Panics(t, func() { backend.Dot([]float64{1}, []float64{1, 2}) })
}

func TestMaxArgmax(t *testing.T) {
	backend := newTestBackend()

	assert.Equal(t, 5.0, backend.Max([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 4, backend.Argmax([]float64{1, 2, 3, 4, 5}))
	// First occurrence wins on ties.
	assert.Equal(t, 1, backend.Argmax([]float64{0, 7, 3, 7}))
}

func TestMaxDim_Sample(t *testing.T) {
	for name, backend := range map[string]*CPUBackend{
		"default": newTestBackend(),
		"chunked": newChunkedBackend(),
	} {
		t.Run(name, func(t *testing.T) {
			data := sample4x4()
			assert.Equal(t, []float64{13, 14, 15, 16}, backend.MaxDim(data, 4, 4, 0))
			assert.Equal(t, []float64{4, 8, 12, 16}, backend.MaxDim(data, 4, 4, 1))
			assert.Equal(t, []int{3, 3, 3, 3}, backend.ArgmaxDim(data, 4, 4, 0))
			assert.Equal(t, []int{3, 3, 3, 3}, backend.ArgmaxDim(data, 4, 4, 1))
		})
	}
}

func TestMaxDim_NonSquare(t *testing.T) {
	backend := newChunkedBackend()
	// [[1, 9, 2],
	//  [8, 3, 9]]
	data := []float64{1, 9, 2, 8, 3, 9}

	assert.Equal(t, []float64{8, 9, 9}, backend.MaxDim(data, 2, 3, 0))
	assert.Equal(t, []int{1, 0, 1}, backend.ArgmaxDim(data, 2, 3, 0))
	assert.Equal(t, []float64{9, 9}, backend.MaxDim(data, 2, 3, 1))
	assert.Equal(t, []int{1, 2}, backend.ArgmaxDim(data, 2, 3, 1))
}

func TestArgmaxDim_Panics(t *testing.T) {
	backend := newTestBackend()
	assert.Panics(t, func() { backend.ArgmaxDim(nil, 0, 3, 0) })
	assert.Panics(t, func() { backend.ArgmaxDim(nil, 3, 0, 1) })
	assert.Panics(t, func() { backend.ArgmaxDim([]float64{1}, 1, 1, 2) })
	assert.Panics(t, func() { backend.ArgmaxDim([]float64{1, 2}, 1, 1, 0) })
}

func TestArgmaxDim_EmptyLanes(t *testing.T) {
	backend := newTestBackend()
	// Reducing the non-empty dimension of a 0x3 buffer yields no lanes.
	assert.Empty(t, backend.ArgmaxDim(nil, 0, 3, 1))
	assert.Empty(t, backend.ArgmaxDim(nil, 3, 0, 0))
}
