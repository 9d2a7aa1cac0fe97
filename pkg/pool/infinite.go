package pool

import (
	"math/rand"

	"github.com/wildfunctions/lazy_series/pkg/series"
)

func init() {
	Register("infinite", func() Pool { return &InfinitePool{} })
}

// InfinitePool mixes polynomials with series that never terminate:
// 1/(1-x), 1/(1+x), x/(1-x)^2 and periodic sign patterns.
type InfinitePool struct {
	PolynomialPool
}

func (p *InfinitePool) Name() string { return "infinite" }

var infiniteLeaves = []func(int) float64{
	func(int) float64 { return 1 },
	func(i int) float64 {
		if i%2 == 0 {
			return 1
		}
		return -1
	},
	func(i int) float64 { return float64(i) },
	func(i int) float64 { return float64(i%3 - 1) },
}

func (p *InfinitePool) RandomLeaf(rng *rand.Rand) *series.Series {
	if rng.Float64() < 0.5 {
		return series.FromFunction(infiniteLeaves[rng.Intn(len(infiniteLeaves))])
	}
	return p.PolynomialPool.RandomLeaf(rng)
}

func (p *InfinitePool) RandomTree(rng *rand.Rand, maxDepth int) *series.Series {
	return randomTree(p, rng, maxDepth)
}
