package pool

import (
	"math/rand"

	"github.com/wildfunctions/lazy_series/pkg/series"
)

func init() {
	Register("polynomial", func() Pool { return &PolynomialPool{} })
}

// PolynomialPool builds finite polynomials: constants, x, and short
// coefficient lists in [-3, 3].
type PolynomialPool struct{}

func (p *PolynomialPool) Name() string { return "polynomial" }

func (p *PolynomialPool) RandomLeaf(rng *rand.Rand) *series.Series {
	switch r := rng.Float64(); {
	case r < 0.2:
		return series.X()
	case r < 0.4:
		return series.Constant(float64(rng.Intn(7) - 3))
	default:
		return series.FromCoefficients(randomCoefficients(rng, 4, 3)...)
	}
}

func (p *PolynomialPool) RandomOp(rng *rand.Rand) series.Kind {
	return binaryOps[rng.Intn(len(binaryOps))]
}

func (p *PolynomialPool) RandomTree(rng *rand.Rand, maxDepth int) *series.Series {
	return randomTree(p, rng, maxDepth)
}
