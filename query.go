package treap

// Aggregate holds the statistics of a range of elements.
type Aggregate[T any] struct {
	Count int
	Sum   T
	Min   T
	Max   T
}

// Query returns sum, minimum and maximum of the inclusive range [l, r].
//
// The range is split out of the tree and merged back afterwards. Split and
// merge are exact inverses for equal boundaries, so the tree keeps its shape.
func (t *Tree[T]) Query(l, r int) (Aggregate[T], error) {
	if err := t.checkRange("query", l, r); err != nil {
		return Aggregate[T]{}, err
	}
	before, mid, after := t.cut(t.root, l, r)
	agg := Aggregate[T]{Count: mid.size, Sum: mid.sum, Min: mid.min, Max: mid.max}
	t.root = t.join(before, mid, after)
	return agg, nil
}

// QuerySum returns the sum of the elements in the inclusive range [l, r].
func (t *Tree[T]) QuerySum(l, r int) (T, error) {
	agg, err := t.Query(l, r)
	return agg.Sum, err
}

// QueryMin returns the minimum of the elements in the inclusive range [l, r].
func (t *Tree[T]) QueryMin(l, r int) (T, error) {
	agg, err := t.Query(l, r)
	return agg.Min, err
}

// QueryMax returns the maximum of the elements in the inclusive range [l, r].
func (t *Tree[T]) QueryMax(l, r int) (T, error) {
	agg, err := t.Query(l, r)
	return agg.Max, err
}

// Total returns the statistics of the whole sequence without splitting. For
// an empty tree, Count is 0 and Sum is Zero().
func (t *Tree[T]) Total() Aggregate[T] {
	if t == nil {
		return Aggregate[T]{}
	}
	if t.root == nil {
		return Aggregate[T]{Sum: t.cfg.Arith.Zero()}
	}
	return Aggregate[T]{Count: t.root.size, Sum: t.root.sum, Min: t.root.min, Max: t.root.max}
}
