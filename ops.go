package treap

// InsertAt inserts value at position pos, shifting the elements at positions
// >= pos one to the right. pos has to be in [0, Size()].
func (t *Tree[T]) InsertAt(pos int, value T) error {
	if err := t.checkPos("insert", pos, t.Size()+1); err != nil {
		return err
	}
	l, r := t.split(t.root, pos)
	t.root = t.merge(t.merge(l, t.newNode(value)), r)
	return nil
}

// Append adds values to the end of the sequence.
func (t *Tree[T]) Append(values ...T) {
	t.AppendSlice(values)
}

// DeleteAt removes the element at position pos and returns its value.
// pos has to be in [0, Size()).
func (t *Tree[T]) DeleteAt(pos int) (T, error) {
	if err := t.checkPos("delete", pos, t.Size()); err != nil {
		var zero T
		return zero, err
	}
	before, mid, after := t.cut(t.root, pos, pos)
	assert(mid != nil && mid.size == 1, "delete isolated more than one node")
	t.root = t.merge(before, after)
	return mid.value, nil
}

// DeleteRange removes the elements in the inclusive range [l, r].
func (t *Tree[T]) DeleteRange(l, r int) error {
	if err := t.checkRange("delete range", l, r); err != nil {
		return err
	}
	before, _, after := t.cut(t.root, l, r)
	t.root = t.merge(before, after)
	return nil
}

// ReverseRange reverses the order of the elements in the inclusive range
// [l, r]. The reversal is recorded as a tag on the isolated range and costs
// O(1) beyond the split and merge.
func (t *Tree[T]) ReverseRange(l, r int) error {
	if err := t.checkRange("reverse", l, r); err != nil {
		return err
	}
	before, mid, after := t.cut(t.root, l, r)
	t.applyReverse(mid)
	t.root = t.join(before, mid, after)
	return nil
}

// AddRange adds delta to every element in the inclusive range [l, r].
func (t *Tree[T]) AddRange(l, r int, delta T) error {
	if err := t.checkRange("add", l, r); err != nil {
		return err
	}
	before, mid, after := t.cut(t.root, l, r)
	t.applyAdd(mid, delta)
	t.root = t.join(before, mid, after)
	return nil
}
