package treap

import "fmt"

// Check validates the structural tree invariants:
//
//   - heap order of priorities,
//   - cached subtree sizes,
//   - cached aggregates, recomputed from the elements and pending tags.
//
// Check is intended for tests. Aggregates are compared exactly, so for
// floating point elements Check may report rounding drift as corruption.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		return nil
	}
	_, err := t.checkNode(t.root)
	return err
}

// Height returns the number of nodes on the longest root-to-leaf path, where
// 0 means empty.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	var height func(*node[T]) int
	height = func(n *node[T]) int {
		if n == nil {
			return 0
		}
		return 1 + max(height(n.left), height(n.right))
	}
	return height(t.root)
}

// checkNode verifies the subtree at n and returns its statistics as seen from
// n, i.e. without tags pending above n.
func (t *Tree[T]) checkNode(n *node[T]) (Aggregate[T], error) {
	a := t.cfg.Arith
	agg := Aggregate[T]{Count: 1, Sum: n.value, Min: n.value, Max: n.value}
	for _, c := range [2]*node[T]{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.priority > n.priority {
			return agg, fmt.Errorf("%w: heap order (%d below %d)", ErrCorruptTree, c.priority, n.priority)
		}
		sub, err := t.checkNode(c)
		if err != nil {
			return agg, err
		}
		if n.hasAdd {
			sub.Sum = a.Add(sub.Sum, a.Scale(n.add, sub.Count))
			sub.Min = a.Add(sub.Min, n.add)
			sub.Max = a.Add(sub.Max, n.add)
		}
		agg.Count += sub.Count
		agg.Sum = a.Add(agg.Sum, sub.Sum)
		if a.Compare(sub.Min, agg.Min) < 0 {
			agg.Min = sub.Min
		}
		if a.Compare(sub.Max, agg.Max) > 0 {
			agg.Max = sub.Max
		}
	}
	switch {
	case agg.Count != n.size:
		return agg, fmt.Errorf("%w: size %d, counted %d", ErrCorruptTree, n.size, agg.Count)
	case a.Compare(agg.Sum, n.sum) != 0:
		return agg, fmt.Errorf("%w: sum %v, recomputed %v", ErrCorruptTree, n.sum, agg.Sum)
	case a.Compare(agg.Min, n.min) != 0:
		return agg, fmt.Errorf("%w: min %v, recomputed %v", ErrCorruptTree, n.min, agg.Min)
	case a.Compare(agg.Max, n.max) != 0:
		return agg, fmt.Errorf("%w: max %v, recomputed %v", ErrCorruptTree, n.max, agg.Max)
	}
	return agg, nil
}
