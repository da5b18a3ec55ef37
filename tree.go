package treap

import "fmt"

// Tree is a mutable sequence of elements of type T, organized as an
// implicit-key treap.
//
// The zero value is not usable; create trees with New, NewNumeric or
// NewDecimal.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized()}, nil
}

// NewNumeric creates an empty tree for a built-in numeric type, with node
// priorities drawn from a generator seeded with seed.
func NewNumeric[T Number](seed uint64) *Tree[T] {
	t, err := New(Config[T]{
		Arith: NumberArith[T]{},
		Rand:  Seeded(seed),
	})
	assert(err == nil, "numeric configuration must be valid")
	return t
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Size returns the number of elements in the sequence.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.root.count()
}

// IsEmpty reports whether the sequence has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Clear drops all elements.
func (t *Tree[T]) Clear() {
	t.root = nil
}

// Split moves the first k elements into a new left tree and the remaining
// elements into a new right tree. t is empty afterwards. Both results share
// t's configuration.
//
// k has to be in [0, Size()]; otherwise t is left unmodified and
// ErrIndexOutOfBounds is returned.
func (t *Tree[T]) Split(k int) (*Tree[T], *Tree[T], error) {
	if t == nil {
		return nil, nil, fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if k < 0 || k > t.Size() {
		tracer().Debugf("treap: split at %d of sequence of size %d", k, t.Size())
		return nil, nil, fmt.Errorf("%w: split at %d, size is %d", ErrIndexOutOfBounds, k, t.Size())
	}
	l, r := t.split(t.root, k)
	t.root = nil
	return &Tree[T]{cfg: t.cfg, root: l}, &Tree[T]{cfg: t.cfg, root: r}, nil
}

// Merge appends all elements of other to t. other is empty afterwards.
//
// Both trees must use the same element arithmetic.
func (t *Tree[T]) Merge(other *Tree[T]) error {
	if t == nil || other == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t == other {
		return fmt.Errorf("%w: cannot merge a tree with itself", ErrIllegalArguments)
	}
	t.root = t.merge(t.root, other.root)
	other.root = nil
	return nil
}

// split divides subtree n into the first k elements and the rest.
//
// Nodes are relinked only, never created or destroyed. Every node whose child
// changed is pushed up before it is returned.
func (t *Tree[T]) split(n *node[T], k int) (*node[T], *node[T]) {
	if n == nil {
		assert(k == 0, "split called with nil node and non-zero rank")
		return nil, nil
	}
	assert(k >= 0 && k <= n.size, "split rank out of bounds")
	t.pushDown(n)
	ls := n.left.count()
	if ls+1 <= k {
		l, r := t.split(n.right, k-ls-1)
		n.right = l
		t.pushUp(n)
		return n, r
	}
	l, r := t.split(n.left, k)
	n.left = r
	t.pushUp(n)
	return l, n
}

// merge concatenates two subtrees, where all elements of l precede all
// elements of r.
//
// The root with the higher priority wins, ties go to l. Choosing the root by
// priority keeps the heap invariant and with it the expected logarithmic
// depth.
func (t *Tree[T]) merge(l, r *node[T]) *node[T] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	}
	if l.priority >= r.priority {
		t.pushDown(l)
		l.right = t.merge(l.right, r)
		t.pushUp(l)
		return l
	}
	t.pushDown(r)
	r.left = t.merge(l, r.left)
	t.pushUp(r)
	return r
}

// cut isolates the inclusive range [from, to] of subtree n and returns the
// parts before, inside and after the range.
func (t *Tree[T]) cut(n *node[T], from, to int) (before, mid, after *node[T]) {
	rest, after := t.split(n, to+1)
	before, mid = t.split(rest, from)
	return before, mid, after
}

// join reassembles the parts produced by cut.
func (t *Tree[T]) join(before, mid, after *node[T]) *node[T] {
	return t.merge(t.merge(before, mid), after)
}

// checkRange validates an inclusive range against the current size.
func (t *Tree[T]) checkRange(op string, l, r int) error {
	if l < 0 || l > r || r >= t.Size() {
		tracer().Debugf("treap: %s on [%d,%d] of sequence of size %d", op, l, r, t.Size())
		return fmt.Errorf("%w: %s on [%d,%d], size is %d", ErrIndexOutOfBounds, op, l, r, t.Size())
	}
	return nil
}

// checkPos validates a position against an exclusive upper bound.
func (t *Tree[T]) checkPos(op string, pos, limit int) error {
	if pos < 0 || pos >= limit {
		tracer().Debugf("treap: %s at %d of sequence of size %d", op, pos, t.Size())
		return fmt.Errorf("%w: %s at %d, size is %d", ErrIndexOutOfBounds, op, pos, t.Size())
	}
	return nil
}
