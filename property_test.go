package treap

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedAgainstModel -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzRandomizedAgainstModel -fuzztime=10s

type op int

const (
	opInsert op = iota
	opDelete
	opReverse
	opAdd
	opQuery
	opSplitMerge
	opDeleteRange
	opCount
)

func randomRange(r *rand.Rand, size int) (int, int) {
	l := r.IntN(size)
	return l, l + r.IntN(size-l)
}

func modelAggregate(model []int64, l, r int) Aggregate[int64] {
	agg := Aggregate[int64]{Count: r - l + 1, Min: model[l], Max: model[l]}
	for _, v := range model[l : r+1] {
		agg.Sum += v
		agg.Min = min(agg.Min, v)
		agg.Max = max(agg.Max, v)
	}
	return agg
}

// runModelSteps applies random operations to a tree and to a reference
// slice, comparing both after every step.
func runModelSteps(t *testing.T, r *rand.Rand, steps int) {
	t.Helper()
	tree := NewNumeric[int64](r.Uint64())
	var model []int64
	var trail []string
	fail := func(format string, args ...any) {
		t.Helper()
		t.Logf("operations:\n%s", spew.Sdump(trail))
		t.Fatalf(format, args...)
	}
	for step := 0; step < steps; step++ {
		o := op(r.IntN(int(opCount)))
		if len(model) == 0 {
			o = opInsert
		}
		switch o {
		case opInsert:
			pos, v := r.IntN(len(model)+1), r.Int64N(2001)-1000
			trail = append(trail, spew.Sprintf("insert(%d, %d)", pos, v))
			if err := tree.InsertAt(pos, v); err != nil {
				fail("insert failed: %v", err)
			}
			model = slices.Insert(model, pos, v)
		case opDelete:
			pos := r.IntN(len(model))
			trail = append(trail, spew.Sprintf("delete(%d)", pos))
			v, err := tree.DeleteAt(pos)
			if err != nil || v != model[pos] {
				fail("delete(%d) returned %d, %v; want %d", pos, v, err, model[pos])
			}
			model = slices.Delete(model, pos, pos+1)
		case opDeleteRange:
			lo, hi := randomRange(r, len(model))
			trail = append(trail, spew.Sprintf("deleteRange(%d, %d)", lo, hi))
			if err := tree.DeleteRange(lo, hi); err != nil {
				fail("delete range failed: %v", err)
			}
			model = slices.Delete(model, lo, hi+1)
		case opReverse:
			lo, hi := randomRange(r, len(model))
			trail = append(trail, spew.Sprintf("reverse(%d, %d)", lo, hi))
			if err := tree.ReverseRange(lo, hi); err != nil {
				fail("reverse failed: %v", err)
			}
			slices.Reverse(model[lo : hi+1])
		case opAdd:
			lo, hi := randomRange(r, len(model))
			d := r.Int64N(201) - 100
			trail = append(trail, spew.Sprintf("add(%d, %d, %d)", lo, hi, d))
			if err := tree.AddRange(lo, hi, d); err != nil {
				fail("add failed: %v", err)
			}
			for i := lo; i <= hi; i++ {
				model[i] += d
			}
		case opQuery:
			lo, hi := randomRange(r, len(model))
			trail = append(trail, spew.Sprintf("query(%d, %d)", lo, hi))
			got, err := tree.Query(lo, hi)
			if err != nil {
				fail("query failed: %v", err)
			}
			if want := modelAggregate(model, lo, hi); got != want {
				fail("query(%d,%d): got %+v want %+v", lo, hi, got, want)
			}
		case opSplitMerge:
			k := r.IntN(len(model) + 1)
			trail = append(trail, spew.Sprintf("splitMerge(%d)", k))
			left, right, err := tree.Split(k)
			if err != nil {
				fail("split failed: %v", err)
			}
			if err := left.Check(); err != nil {
				fail("left part of split: %v", err)
			}
			if err := right.Check(); err != nil {
				fail("right part of split: %v", err)
			}
			if err := left.Merge(right); err != nil {
				fail("merge failed: %v", err)
			}
			tree = left
		}
		if err := tree.Check(); err != nil {
			fail("step %d: %v", step, err)
		}
		if got := tree.Values(); !slices.Equal(got, model) {
			fail("step %d: sequence %v, model %v", step, got, model)
		}
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 20; round++ {
		runModelSteps(t, r, 300)
	}
}

func FuzzRandomizedAgainstModel(f *testing.F) {
	f.Add(uint64(1), uint8(50))
	f.Add(uint64(42), uint8(200))
	f.Add(uint64(7), uint8(3))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		r := rand.New(rand.NewPCG(seed, seed>>1))
		runModelSteps(t, r, int(steps))
	})
}
