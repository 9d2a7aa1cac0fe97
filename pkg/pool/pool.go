package pool

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/lazy_series/pkg/series"
)

// Pool provides random building blocks for constructing series trees.
// Every coefficient a pool produces is an integer, so trees of moderate depth
// evaluate exactly in float64.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) *series.Series
	RandomOp(rng *rand.Rand) series.Kind
	RandomTree(rng *rand.Rand, maxDepth int) *series.Series
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// randomTree is a shared helper for building random trees.
func randomTree(p Pool, rng *rand.Rand, maxDepth int) *series.Series {
	if maxDepth <= 1 || rng.Float64() < 0.4 {
		return p.RandomLeaf(rng)
	}
	left := randomTree(p, rng, maxDepth-1)
	right := randomTree(p, rng, maxDepth-1)
	switch p.RandomOp(rng) {
	case series.KindSum:
		return left.Plus(right)
	case series.KindDifference:
		return left.Minus(right)
	default:
		return left.Times(right)
	}
}

// randomCoefficients returns up to maxLen integers in [-bound, bound].
func randomCoefficients(rng *rand.Rand, maxLen, bound int) []float64 {
	cs := make([]float64, rng.Intn(maxLen)+1)
	for i := range cs {
		cs[i] = float64(rng.Intn(2*bound+1) - bound)
	}
	return cs
}

var binaryOps = []series.Kind{
	series.KindSum,
	series.KindDifference,
	series.KindProduct,
}
