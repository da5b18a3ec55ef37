package treap

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecimalTree(t *testing.T) {
	tree := NewDecimal(11)
	for i, s := range []string{"0.10", "0.20", "0.30", "-1.05", "2"} {
		if err := tree.InsertAt(i, decimal.RequireFromString(s)); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	sum, err := tree.QuerySum(0, 2)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !sum.Equal(decimal.RequireFromString("0.6")) {
		t.Fatalf("sum: got=%s want=0.6", sum)
	}
	if err := tree.AddRange(1, 4, decimal.RequireFromString("0.01")); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := tree.ReverseRange(0, 4); err != nil {
		t.Fatalf("reverse failed: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	// 2.01 -1.04 0.31 0.21 0.10
	want := []string{"2.01", "-1.04", "0.31", "0.21", "0.1"}
	for i, v := range tree.Values() {
		if !v.Equal(decimal.RequireFromString(want[i])) {
			t.Fatalf("element %d: got=%s want=%s", i, v, want[i])
		}
	}
	lo, _ := tree.QueryMin(0, 4)
	hi, _ := tree.QueryMax(0, 4)
	if !lo.Equal(decimal.RequireFromString("-1.04")) || !hi.Equal(decimal.RequireFromString("2.01")) {
		t.Fatalf("min/max: got %s/%s", lo, hi)
	}
	total := tree.Total()
	if !total.Sum.Equal(decimal.RequireFromString("1.59")) {
		t.Fatalf("total: got=%s want=1.59", total.Sum)
	}
}
