package Trees

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// compares BSTree on random input with the ordered containers of
// https://github.com/google/btree, https://github.com/petar/GoLLRB and
// https://github.com/emirpasic/gods. All of them are balanced, so only random
// permutations are used here; a sorted input makes BSTree quadratic.

const bSize = 1 << 15

func BenchmarkBSTree_Insert(b *testing.B) {
	perm := rand.Perm(bSize)
	var t *BSTree[int]
	for range b.N {
		t = New[int]()
		for _, v := range perm {
			t.Insert(v)
		}
	}
	b.Log(t.AverageDepth())
}

func BenchmarkBSTree_Remove(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		b.StopTimer()
		t := New[int]()
		for _, v := range perm {
			t.Insert(v)
		}
		b.StartTimer()
		for j := range bSize {
			t.Remove(j)
		}
	}
}

func BenchmarkBSTree_From(b *testing.B) {
	sorted := make([]int, bSize)
	for i := range sorted {
		sorted[i] = i
	}
	for range b.N {
		From(sorted, false)
	}
}

func BenchmarkBSTree_Find(b *testing.B) {
	t := New[int]()
	for _, v := range rand.Perm(bSize) {
		t.Insert(v)
	}
	b.ResetTimer()
	for i := range b.N {
		t.Find(i % bSize)
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, v := range perm {
			t.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkBTree_Remove(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		b.StopTimer()
		t := btree.NewOrderedG[int](32)
		for _, v := range perm {
			t.ReplaceOrInsert(v)
		}
		b.StartTimer()
		for j := range bSize {
			t.Delete(j)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		t := llrb.New()
		for _, v := range perm {
			t.InsertNoReplace(llrb.Int(v))
		}
	}
}

func BenchmarkLLRB_Remove(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		b.StopTimer()
		t := llrb.New()
		for _, v := range perm {
			t.InsertNoReplace(llrb.Int(v))
		}
		b.StartTimer()
		for j := range bSize {
			t.Delete(llrb.Int(j))
		}
	}
}

func BenchmarkRedBlack_Insert(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		t := redblacktree.NewWithIntComparator()
		for _, v := range perm {
			t.Put(v, struct{}{})
		}
	}
}

func BenchmarkRedBlack_Remove(b *testing.B) {
	perm := rand.Perm(bSize)
	for range b.N {
		b.StopTimer()
		t := redblacktree.NewWithIntComparator()
		for _, v := range perm {
			t.Put(v, struct{}{})
		}
		b.StartTimer()
		for j := range bSize {
			t.Remove(j)
		}
	}
}
