package series

import "fmt"

// Constant returns the series v + 0x + 0x^2 + ...
func Constant(v float64) *Series {
	s := newNode(KindConstant)
	s.value = v
	return s
}

// FromFunction wraps f as a series with coefficient f(i) at index i.
// f must be pure and defined for every non-negative index; it is called at
// most once per index.
func FromFunction(f func(int) float64) *Series {
	if f == nil {
		panic("series: FromFunction called with nil function")
	}
	s := newNode(KindFunction)
	s.fn = f
	return s
}

// FromCoefficients returns the finite polynomial cs[0] + cs[1]x + ...,
// zero beyond the last given coefficient.
func FromCoefficients(cs ...float64) *Series {
	coeffs := make([]float64, len(cs))
	copy(coeffs, cs)
	return FromFunction(func(i int) float64 {
		if i < len(coeffs) {
			return coeffs[i]
		}
		return 0
	})
}

// X returns the monomial x.
func X() *Series {
	return FromFunction(func(i int) float64 {
		if i == 1 {
			return 1
		}
		return 0
	})
}

// At returns the coefficient of x^i.
func (s *Series) At(i int) (float64, error) {
	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return s.coeff(i), nil
}

// Terms returns the first n coefficients.
func (s *Series) Terms(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: term count %d", ErrInvalidIndex, n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.coeff(i)
	}
	return out, nil
}

// Stats returns a snapshot of the series' own coefficient cache.
func (s *Series) Stats() CacheStats {
	return s.memo.stats()
}

// coeff returns the coefficient at a known non-negative index.
func (s *Series) coeff(i int) float64 {
	return s.memo.load(i, s.compute)
}

// compute evaluates the coefficient at i from the node's definition. It only
// ever queries operands at indices in [0, i].
func (s *Series) compute(i int) float64 {
	switch s.kind {
	case KindConstant:
		if i == 0 {
			return s.value
		}
		return 0

	case KindFunction:
		return s.fn(i)

	case KindSum:
		return s.left.coeff(i) + s.right.coeff(i)

	case KindDifference:
		return s.left.coeff(i) - s.right.coeff(i)

	case KindProduct:
		var sum float64
		for k := 0; k <= i; k++ {
			sum += s.left.coeff(k) * s.right.coeff(i-k)
		}
		return sum

	default:
		panic(fmt.Sprintf("series: unknown node kind %d", s.kind))
	}
}
