package treap

import "iter"

// ForEach walks the elements in sequence order, without modifying the tree.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(pos int, value T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	pos := 0
	t.forEachNode(t.root, pending[T]{}, &pos, fn)
}

func (t *Tree[T]) forEachNode(n *node[T], tags pending[T], pos *int, fn func(int, T) bool) bool {
	if n == nil {
		return true
	}
	first, second := tags.children(n)
	below := t.descend(tags, n)
	if !t.forEachNode(first, below, pos, fn) {
		return false
	}
	if !fn(*pos, t.resolve(tags, n)) {
		return false
	}
	*pos++
	return t.forEachNode(second, below, pos, fn)
}

// All returns an iterator over positions and elements in sequence order.
// The tree must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		t.ForEach(yield)
	}
}

// Values returns a copy of the sequence as a slice.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.Size())
	t.ForEach(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
