package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-8

func TestExp(t *testing.T) {
	backend := newChunkedBackend()

	tests := []struct {
		name  string
		input []float64
	}{
		{name: "positive values", input: []float64{0, 1, 2, 3}},
		{name: "negative values", input: []float64{-3, -2, -1, 0}},
		{name: "zero", input: []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := backend.Exp(tt.input)
			assert.Len(t, got, len(tt.input))
			for i, x := range tt.input {
				assert.InDelta(t, math.Exp(x), got[i], epsilon)
			}
		})
	}
}

func TestExp_Reference(t *testing.T) {
	got := newTestBackend().Exp([]float64{1, 2, 3, 4, 5})
	want := []float64{2.71828183, 7.3890561, 20.08553692, 54.59815003, 148.4131591}
	assert.InDeltaSlice(t, want, got, 1e-7)
}
