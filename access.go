package treap

// At returns the element at position pos.
//
// At does not push tags down. The tags pending on the nodes passed on the
// way down are accumulated instead, so reading leaves the tree untouched.
func (t *Tree[T]) At(pos int) (T, error) {
	if err := t.checkPos("at", pos, t.Size()); err != nil {
		var zero T
		return zero, err
	}
	var tags pending[T]
	n := t.root
	for {
		first, second := tags.children(n)
		switch ls := first.count(); {
		case pos < ls:
			tags = t.descend(tags, n)
			n = first
		case pos == ls:
			return t.resolve(tags, n), nil
		default:
			pos -= ls + 1
			tags = t.descend(tags, n)
			n = second
		}
		assert(n != nil, "At routing exceeded subtree size")
	}
}

// pending collects the tags of all strict ancestors of a node during a
// read-only descent.
type pending[T any] struct {
	delta    T
	hasDelta bool
	flip     bool // odd number of pending reversals above
}

// children returns n's children in logical order, as they would be after
// pushing down all tags above and on n.
func (p pending[T]) children(n *node[T]) (first, second *node[T]) {
	if p.flip != n.rev {
		return n.right, n.left
	}
	return n.left, n.right
}

// descend returns the tags pending above n's children.
func (t *Tree[T]) descend(p pending[T], n *node[T]) pending[T] {
	p.flip = p.flip != n.rev
	if n.hasAdd {
		if p.hasDelta {
			p.delta = t.cfg.Arith.Add(p.delta, n.add)
		} else {
			p.delta, p.hasDelta = n.add, true
		}
	}
	return p
}

// resolve returns the current value of n.
func (t *Tree[T]) resolve(p pending[T], n *node[T]) T {
	if p.hasDelta {
		return t.cfg.Arith.Add(n.value, p.delta)
	}
	return n.value
}
