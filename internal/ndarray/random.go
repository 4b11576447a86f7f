package ndarray

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// uniformSource draws doubles in [0, 1) exactly as numpy's legacy RandomState
// does: MT19937 seeded with init_genrand(seed), and 53-bit doubles built from
// two consecutive 32-bit outputs.
type uniformSource struct {
	mt *prng.MT19937
}

func newUniformSource(seed uint32) *uniformSource {
	mt := prng.NewMT19937()
	mt.Seed(uint64(seed))
	return &uniformSource{mt: mt}
}

// Float64 returns the next value of the stream.
func (s *uniformSource) Float64() float64 {
	a := s.mt.Uint32() >> 5
	b := s.mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}

// fill writes len(dst) consecutive values into dst.
func (s *uniformSource) fill(dst []float64) {
	for i := range dst {
		dst[i] = s.Float64()
	}
}
