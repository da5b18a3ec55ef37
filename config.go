package treap

import (
	"fmt"
	"math/rand/v2"
)

// Arithmetic defines the operations a tree needs on its element type.
//
// Add has to be associative and commutative with Zero as its neutral element,
// and Compare has to define a total order:
//
//	Compare(a, b) < 0  if a < b
//	Compare(a, b) == 0 if a == b
//	Compare(a, b) > 0  if a > b
//
// Scale(a, n) is a added n times and is used to lift a range delta onto the
// sum of a subtree with n elements.
type Arithmetic[T any] interface {
	Zero() T
	Add(a, b T) T
	Scale(a T, n int) T
	Compare(a, b T) int
}

// Number is the set of built-in numeric types usable with NumberArith.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberArith is the Arithmetic for built-in numeric types.
//
// Overflow behaves as with Go's built-in operators. For floating point
// elements, sums are subject to rounding and NaN values break the total order.
type NumberArith[T Number] struct{}

// Zero returns 0.
func (NumberArith[T]) Zero() T { return 0 }

// Add returns a+b.
func (NumberArith[T]) Add(a, b T) T { return a + b }

// Scale returns a*n.
func (NumberArith[T]) Scale(a T, n int) T { return a * T(n) }

// Compare compares a and b.
func (NumberArith[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Config configures a tree.
type Config[T any] struct {
	// Arith provides element arithmetic. It is required.
	Arith Arithmetic[T]
	// Rand is the source of node priorities. If nil, a generator with a
	// random seed is created. Trees resulting from a split share the
	// generator of the tree they came from.
	Rand *rand.Rand
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	if cfg.Arith == nil {
		return fmt.Errorf("%w: arithmetic is required", ErrInvalidConfig)
	}
	return nil
}

// Seeded returns a priority generator with a fixed seed, for reproducible
// tree shapes.
func Seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
