package treap

import "github.com/shopspring/decimal"

// DecimalArith is the Arithmetic for arbitrary precision decimals.
//
// Sums over decimal elements are exact, which makes decimal trees suitable for
// sequences of monetary amounts where float rounding is not acceptable.
type DecimalArith struct{}

// Zero returns decimal zero.
func (DecimalArith) Zero() decimal.Decimal { return decimal.Zero }

// Add returns a+b.
func (DecimalArith) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// Scale returns a*n.
func (DecimalArith) Scale(a decimal.Decimal, n int) decimal.Decimal {
	return a.Mul(decimal.NewFromInt(int64(n)))
}

// Compare compares a and b numerically, independent of their exponents.
func (DecimalArith) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

// NewDecimal creates an empty tree of decimals with seeded priorities.
func NewDecimal(seed uint64) *Tree[decimal.Decimal] {
	t, err := New(Config[decimal.Decimal]{
		Arith: DecimalArith{},
		Rand:  Seeded(seed),
	})
	assert(err == nil, "decimal configuration must be valid")
	return t
}
