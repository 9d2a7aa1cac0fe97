// Package series implements lazily evaluated formal power series with
// per-node memoized coefficients.
package series

// Kind identifies the variant of a series node.
type Kind int

const (
	KindConstant Kind = iota
	KindFunction
	KindSum
	KindDifference
	KindProduct
)

var kindNames = map[Kind]string{
	KindConstant:   "constant",
	KindFunction:   "function",
	KindSum:        "sum",
	KindDifference: "difference",
	KindProduct:    "product",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Series is an infinite formal power series whose coefficients are computed
// on demand. A Series is immutable once constructed; only its private
// coefficient cache grows.
//
// Composite series hold shared references to their operands. Any number of
// composites may reference the same operand.
type Series struct {
	kind        Kind
	value       float64           // KindConstant
	fn          func(int) float64 // KindFunction
	left, right *Series           // KindSum, KindDifference, KindProduct
	memo        *memo
}

func newNode(kind Kind) *Series {
	return &Series{kind: kind, memo: newMemo()}
}

// Kind returns the node variant.
func (s *Series) Kind() Kind { return s.kind }

// Operands returns the operands of a composite series, or nils for a leaf.
func (s *Series) Operands() (left, right *Series) { return s.left, s.right }
