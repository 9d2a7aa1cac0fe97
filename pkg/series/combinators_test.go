package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustSeries unwraps a combinator result whose operands are known to be valid.
func mustSeries(s *Series, err error) *Series {
	if err != nil {
		panic(err)
	}
	return s
}

func TestAddCommutativeAndIdentity(t *testing.T) {
	a := FromCoefficients(1, -2, 3.5, 0, 7)
	b := FromFunction(func(i int) float64 { return float64(i) })

	ab := mustSeries(Add(a, b))
	ba := mustSeries(Add(b, a))
	withZero := mustSeries(Add(a, Constant(0)))

	for i := 0; i < 12; i++ {
		assert.Equal(t, mustAt(t, ab, i), mustAt(t, ba, i), "index %d", i)
		assert.Equal(t, mustAt(t, a, i), mustAt(t, withZero, i), "index %d", i)
	}
}

func TestSub(t *testing.T) {
	a := FromCoefficients(5, 4, 3)
	b := FromCoefficients(1, 1, 1, 1)

	d := mustSeries(Sub(a, b))
	assert.Equal(t, []float64{4, 3, 2, -1, 0}, coeffs(t, d, 5))

	// a - b == -(b - a)
	rev := mustSeries(Sub(b, a))
	for i := 0; i < 5; i++ {
		assert.Equal(t, -mustAt(t, d, i), mustAt(t, rev, i))
	}
}

func TestScalarOperands(t *testing.T) {
	x := X()

	left := mustSeries(Add(3, x))
	right := mustSeries(Add(x, 3))
	assert.Equal(t, coeffs(t, left, 4), coeffs(t, right, 4))
	assert.Equal(t, []float64{3, 1, 0, 0}, coeffs(t, left, 4))

	diff := mustSeries(Sub(1, x))
	assert.Equal(t, []float64{1, -1, 0}, coeffs(t, diff, 3))

	scaled := mustSeries(Mul(2.5, x))
	assert.Equal(t, []float64{0, 2.5, 0}, coeffs(t, scaled, 3))

	both := mustSeries(Mul(int64(2), uint8(3)))
	assert.Equal(t, []float64{6, 0}, coeffs(t, both, 2))
}

func TestMulIdentity(t *testing.T) {
	a := FromFunction(func(i int) float64 { return float64(i*i) - 3 })
	id := mustSeries(Mul(a, Constant(1)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, mustAt(t, a, i), mustAt(t, id, i))
	}
}

func TestMulConvolution(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"one times one", []float64{1}, []float64{1}, []float64{1, 0, 0, 0}},
		{"(1+x)^2", []float64{1, 1}, []float64{1, 1}, []float64{1, 2, 1, 0, 0}},
		{"(1-x)(1+x)", []float64{1, -1}, []float64{1, 1}, []float64{1, 0, -1, 0}},
		{"(2+3x)(4+5x+6x^2)", []float64{2, 3}, []float64{4, 5, 6}, []float64{8, 22, 27, 18, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := FromCoefficients(tc.a...).Times(FromCoefficients(tc.b...))
			assert.Equal(t, tc.want, coeffs(t, p, len(tc.want)))
		})
	}
}

func TestMulInfiniteSeries(t *testing.T) {
	// 1/(1-x) squared is sum (n+1) x^n.
	geometric := FromFunction(func(int) float64 { return 1 })
	sq := geometric.Times(geometric)
	for n := 0; n < 15; n++ {
		assert.Equal(t, float64(n+1), mustAt(t, sq, n))
	}
}

func TestPowZero(t *testing.T) {
	p := mustSeries(Pow(FromCoefficients(9, 9, 9), 0))
	assert.Equal(t, []float64{1, 0, 0, 0}, coeffs(t, p, 4))
}

func TestPowConsistency(t *testing.T) {
	a := FromCoefficients(1, 2, -1)
	for n := 1; n <= 6; n++ {
		pn := mustSeries(a.Pow(n))
		prev := mustSeries(a.Pow(n - 1))
		step := prev.Times(a)
		for i := 0; i < 14; i++ {
			assert.Equal(t, mustAt(t, step, i), mustAt(t, pn, i), "n=%d i=%d", n, i)
		}
	}
}

func TestPowBinomial(t *testing.T) {
	p := mustSeries(Pow(FromCoefficients(1, 1), 5))
	assert.Equal(t, []float64{1, 5, 10, 10, 5, 1, 0}, coeffs(t, p, 7))
}

func TestPowDeepNestingIsTractable(t *testing.T) {
	// Without per-node caching this is exponential in the exponent.
	p := mustSeries(Pow(FromFunction(func(int) float64 { return 1 }), 40))
	// (1/(1-x))^40 has coefficient C(n+39, 39) at n; at n=2 that is 820.
	assert.Equal(t, 820.0, mustAt(t, p, 2))
	assert.Equal(t, 1.0, mustAt(t, p, 0))
	assert.Equal(t, 40.0, mustAt(t, p, 1))
	_, err := p.At(30)
	require.NoError(t, err)
}

func TestPowNegative(t *testing.T) {
	_, err := Pow(X(), -1)
	assert.ErrorIs(t, err, ErrInvalidExponent)

	_, err = X().Pow(-3)
	assert.ErrorIs(t, err, ErrInvalidExponent)
}

func TestWorkedScenario(t *testing.T) {
	x := X()
	x2 := mustSeries(Pow(x, 2))
	p := mustSeries(Add(mustSeries(Add(x2, x)), 1))
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0}, coeffs(t, p, 6))

	// q = 2 + 1x + 1x^3 + 1x^4
	x3 := mustSeries(Pow(x, 3))
	x4 := mustSeries(Pow(x, 4))
	q := mustSeries(Add(2, mustSeries(Mul(1, x))))
	q = mustSeries(Add(q, mustSeries(Mul(1, x3))))
	q = mustSeries(Add(q, mustSeries(Mul(1, x4))))

	// (x^2+x+1)(2+x+x^3+x^4) = 2 + 3x + 3x^2 + 2x^3 + 2x^4 + 2x^5 + x^6
	pq := mustSeries(Mul(p, q))
	assert.Equal(t, []float64{2, 3, 3, 2, 2, 2, 1, 0, 0, 0}, coeffs(t, pq, 10))
}

func mustAt(t *testing.T, s *Series, i int) float64 {
	t.Helper()
	v, err := s.At(i)
	require.NoError(t, err)
	return v
}
