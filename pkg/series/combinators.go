package series

import "fmt"

func binary(kind Kind, a, b *Series) *Series {
	s := newNode(kind)
	s.left, s.right = a, b
	return s
}

// Plus returns s + t.
func (s *Series) Plus(t *Series) *Series { return binary(KindSum, s, t) }

// Minus returns s - t.
func (s *Series) Minus(t *Series) *Series { return binary(KindDifference, s, t) }

// Times returns the Cauchy product s·t, whose coefficient at n is
// the sum over k in [0, n] of s(k)·t(n-k).
func (s *Series) Times(t *Series) *Series { return binary(KindProduct, s, t) }

// Pow returns s^n as n successive products with s, starting from the
// constant 1. Each call builds a distinct chain with its own caches.
func (s *Series) Pow(n int) (*Series, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidExponent, n)
	}
	p := Constant(1)
	for i := 0; i < n; i++ {
		p = p.Times(s)
	}
	return p, nil
}

// Add returns a + b, where either side may be a *Series or a number.
func Add(a, b any) (*Series, error) {
	l, r, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	return l.Plus(r), nil
}

// Sub returns a - b, where either side may be a *Series or a number.
func Sub(a, b any) (*Series, error) {
	l, r, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	return l.Minus(r), nil
}

// Mul returns the Cauchy product a·b, where either side may be a *Series or
// a number.
func Mul(a, b any) (*Series, error) {
	l, r, err := coercePair(a, b)
	if err != nil {
		return nil, err
	}
	return l.Times(r), nil
}

// Pow returns a^n, where a may be a *Series or a number.
func Pow(a any, n int) (*Series, error) {
	s, err := Coerce(a)
	if err != nil {
		return nil, err
	}
	return s.Pow(n)
}
