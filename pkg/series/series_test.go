package series

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coeffs(t *testing.T, s *Series, n int) []float64 {
	t.Helper()
	out, err := s.Terms(n)
	require.NoError(t, err)
	return out
}

func TestConstant(t *testing.T) {
	s := Constant(7)
	assert.Equal(t, []float64{7, 0, 0, 0}, coeffs(t, s, 4))
	assert.Equal(t, KindConstant, s.Kind())
}

func TestFromCoefficients(t *testing.T) {
	in := []float64{3, -1, 4}
	s := FromCoefficients(in...)
	in[0] = 100 // caller's slice is copied

	assert.Equal(t, []float64{3, -1, 4, 0, 0}, coeffs(t, s, 5))
}

func TestX(t *testing.T) {
	assert.Equal(t, []float64{0, 1, 0, 0}, coeffs(t, X(), 4))
}

func TestAtNegativeIndex(t *testing.T) {
	for _, s := range []*Series{Constant(1), X(), X().Plus(X()), X().Times(X())} {
		_, err := s.At(-1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidIndex), "got %v", err)
	}

	_, err := X().Terms(-1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestFromFunctionNilPanics(t *testing.T) {
	assert.Panics(t, func() { FromFunction(nil) })
}

func TestAtCachesBaseFunction(t *testing.T) {
	var calls [8]atomic.Int32
	s := FromFunction(func(i int) float64 {
		calls[i].Add(1)
		return float64(i * i)
	})

	for round := 0; round < 5; round++ {
		for i := 0; i < len(calls); i++ {
			v, err := s.At(i)
			require.NoError(t, err)
			assert.Equal(t, float64(i*i), v)
		}
	}

	for i := range calls {
		assert.Equal(t, int32(1), calls[i].Load(), "index %d", i)
	}

	st := s.Stats()
	assert.Equal(t, len(calls), st.Entries)
	assert.Equal(t, uint64(len(calls)), st.Misses)
	assert.Equal(t, uint64(4*len(calls)), st.Hits)
}

func TestAtConcurrentSingleComputation(t *testing.T) {
	var calls atomic.Int32
	base := FromFunction(func(i int) float64 {
		calls.Add(1)
		return float64(i + 1)
	})
	sq := base.Times(base)

	const workers = 32
	results := make([]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			v, err := sq.At(20)
			if err == nil {
				results[w] = v
			}
		}(w)
	}
	wg.Wait()

	// (sum (i+1) x^i)^2 has coefficient C(n+3, 3) at n.
	want := float64(23 * 22 * 21 / 6)
	for w := range results {
		assert.Equal(t, want, results[w])
	}
	assert.Equal(t, int32(21), calls.Load())
}

func TestCacheIsPerSeries(t *testing.T) {
	x := X()
	x2, err := x.Pow(2)
	require.NoError(t, err)
	x3, err := x.Pow(3)
	require.NoError(t, err)

	// Same index on structurally distinct series must not collide.
	v2, _ := x2.At(2)
	v3, _ := x3.At(2)
	assert.Equal(t, 1.0, v2)
	assert.Equal(t, 0.0, v3)
}

func TestDepthAndNodeCount(t *testing.T) {
	x := X()
	assert.Equal(t, 1, x.Depth())
	assert.Equal(t, 1, x.NodeCount())

	sum := x.Plus(Constant(1))
	assert.Equal(t, 2, sum.Depth())
	assert.Equal(t, 3, sum.NodeCount())

	cube, err := x.Pow(3)
	require.NoError(t, err)
	// ((1·x)·x)·x
	assert.Equal(t, 4, cube.Depth())
	assert.Equal(t, 7, cube.NodeCount())

	l, r := sum.Operands()
	assert.Same(t, x, l)
	assert.Equal(t, KindConstant, r.Kind())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "product", KindProduct.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
