package treap

// FromSlice creates a tree holding values in order.
//
// Construction takes linear time: nodes are created left to right and linked
// along the right spine of the tree built so far, which is kept on a stack.
func FromSlice[T any](cfg Config[T], values []T) (*Tree[T], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	t.root = t.build(values)
	tracer().Debugf("treap: built tree of %d elements", len(values))
	return t, nil
}

// AppendSlice adds values to the end of the sequence. The values are built
// into a tree of their own first, which is merged in one step.
func (t *Tree[T]) AppendSlice(values []T) {
	t.root = t.merge(t.root, t.build(values))
}

// build returns the root of a new subtree holding values in order.
func (t *Tree[T]) build(values []T) *node[T] {
	if len(values) == 0 {
		return nil
	}
	spine := make([]*node[T], 0, 32)
	for _, v := range values {
		x := t.newNode(v)
		var last *node[T]
		for len(spine) > 0 && spine[len(spine)-1].priority < x.priority {
			last = spine[len(spine)-1]
			spine = spine[:len(spine)-1]
			t.pushUp(last)
		}
		x.left = last
		if len(spine) > 0 {
			spine[len(spine)-1].right = x
		}
		spine = append(spine, x)
	}
	for i := len(spine) - 1; i >= 0; i-- {
		t.pushUp(spine[i])
	}
	return spine[0]
}
