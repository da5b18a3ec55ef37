package treap

// node is one element of the sequence, together with cached statistics for
// the subtree rooted at it.
//
// value, sum, min and max already reflect the node's own pending tags, but
// not the tags pending on any of its ancestors. The children's stored state
// does not yet reflect add and rev.
type node[T any] struct {
	left, right *node[T]
	priority    uint64
	size        int
	value       T
	sum         T
	min         T
	max         T
	add         T    // pending delta for both child subtrees
	hasAdd      bool // add is set; T may not be comparable
	rev         bool // children are logically swapped, each reversed
}

func (n *node[T]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

// newNode creates a singleton subtree.
func (t *Tree[T]) newNode(value T) *node[T] {
	return &node[T]{
		priority: t.cfg.Rand.Uint64(),
		size:     1,
		value:    value,
		sum:      value,
		min:      value,
		max:      value,
	}
}

// applyAdd adds delta to every element of the subtree at n. Only n itself is
// touched, its children receive delta on the next pushDown.
func (t *Tree[T]) applyAdd(n *node[T], delta T) {
	if n == nil {
		return
	}
	a := t.cfg.Arith
	n.value = a.Add(n.value, delta)
	n.sum = a.Add(n.sum, a.Scale(delta, n.size))
	n.min = a.Add(n.min, delta)
	n.max = a.Add(n.max, delta)
	if n.hasAdd {
		n.add = a.Add(n.add, delta)
	} else {
		n.add, n.hasAdd = delta, true
	}
}

// applyReverse reverses the subtree at n. Reversal leaves every aggregate
// unchanged, so only the flag is toggled.
func (t *Tree[T]) applyReverse(n *node[T]) {
	if n == nil {
		return
	}
	n.rev = !n.rev
}

// pushDown propagates the pending tags of n to its children. It has to be
// called before reading or descending into n's children. Both tags are
// pushed before returning; reversal only relinks children while the delta
// travels with the nodes, so their order is irrelevant.
func (t *Tree[T]) pushDown(n *node[T]) {
	if n.rev {
		n.left, n.right = n.right, n.left
		t.applyReverse(n.left)
		t.applyReverse(n.right)
		n.rev = false
	}
	if n.hasAdd {
		t.applyAdd(n.left, n.add)
		t.applyAdd(n.right, n.add)
		n.add, n.hasAdd = t.cfg.Arith.Zero(), false
	}
}

// pushUp recomputes the cached statistics of n from its value and its
// children's aggregates. A pending delta on n would not be reflected in the
// children, so n must have been pushed down before it was relinked.
func (t *Tree[T]) pushUp(n *node[T]) {
	assert(!n.hasAdd, "pushUp called on node with pending delta")
	a := t.cfg.Arith
	n.size = 1
	n.sum, n.min, n.max = n.value, n.value, n.value
	for _, c := range [2]*node[T]{n.left, n.right} {
		if c == nil {
			continue
		}
		n.size += c.size
		n.sum = a.Add(n.sum, c.sum)
		if a.Compare(c.min, n.min) < 0 {
			n.min = c.min
		}
		if a.Compare(c.max, n.max) > 0 {
			n.max = c.max
		}
	}
}
