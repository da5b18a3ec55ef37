package treap

import "testing"

const benchSize = 1 << 16

func benchTree(b *testing.B) *Tree[int64] {
	b.Helper()
	values := make([]int64, benchSize)
	for i := range values {
		values[i] = int64(i)
	}
	tree := NewNumeric[int64](1)
	tree.AppendSlice(values)
	return tree
}

func BenchmarkInsertAt(b *testing.B) {
	tree := NewNumeric[int64](1)
	r := Seeded(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.InsertAt(r.IntN(tree.Size()+1), int64(i))
	}
}

func BenchmarkReverseRange(b *testing.B) {
	tree := benchTree(b)
	r := Seeded(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, h := randomRange(r, benchSize)
		_ = tree.ReverseRange(l, h)
	}
}

func BenchmarkAddRange(b *testing.B) {
	tree := benchTree(b)
	r := Seeded(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, h := randomRange(r, benchSize)
		_ = tree.AddRange(l, h, 1)
	}
}

func BenchmarkQuery(b *testing.B) {
	tree := benchTree(b)
	r := Seeded(5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, h := randomRange(r, benchSize)
		_, _ = tree.Query(l, h)
	}
}
