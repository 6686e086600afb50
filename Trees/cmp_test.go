package Trees

import (
	"math"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/petar/GoLLRB/llrb"
)

// llrbItem keeps equal values apart in GoLLRB, whose Delete can't handle
// repeated keys.
type llrbItem struct {
	v, id int
}

func (a llrbItem) Less(b llrb.Item) bool {
	if o := b.(llrbItem); a.v != o.v {
		return a.v < o.v
	} else {
		return a.id < o.id
	}
}

// first item of ref equal to v.
func llrbFirst(ref *llrb.LLRB, v int) (first llrbItem, found bool) {
	ref.AscendGreaterOrEqual(llrbItem{v, math.MinInt}, func(i llrb.Item) bool {
		first = i.(llrbItem)
		found = first.v == v
		return false
	})
	return
}

// same workload on GoLLRB.
func TestBSTree_CmpLLRB(t *testing.T) {
	tree, ref := New[int](), llrb.New()
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		ref.InsertNoReplace(llrbItem{a[i], i})
	}
	for _, v := range a[:rg.Intn(len(a))] {
		if rg.Intn(4) == 0 {
			v = rg.Intn(tAddValRange)
		}
		_, err := tree.Remove(v)
		first, found := llrbFirst(ref, v)
		if found {
			ref.Delete(first)
		}
		if found != (err == nil) {
			t.Fatalf("removing %d: %v", v, err)
		}
	}
	for range 100 {
		v := rg.Intn(tAddValRange)
		if _, found := llrbFirst(ref, v); found != tree.Has(v) {
			t.Errorf("Has(%d) differs", v)
		}
	}
	if uint(ref.Len()) != tree.Size() {
		t.Fatalf("tree size is %d, want %d", tree.Size(), ref.Len())
	}
	want := make([]int, 0, ref.Len())
	ref.AscendGreaterOrEqual(llrbItem{math.MinInt, math.MinInt}, func(i llrb.Item) bool {
		want = append(want, i.(llrbItem).v)
		return true
	})
	if got := slices.Collect(tree.All()); !slices.Equal(got, want) {
		t.Errorf("in-order differs from LLRB")
	}
}

// gods' red-black tree is a set, so compare the distinct elements.
func TestBSTree_CmpRedBlack(t *testing.T) {
	tree, ref := New[int](), redblacktree.NewWithIntComparator()
	for range tAddN {
		v := rg.Intn(tAddValRange)
		tree.Insert(v)
		ref.Put(v, struct{}{})
	}
	for range tAddValRange / 4 {
		if ref.Empty() {
			break
		}
		v := ref.Left().Key.(int)
		n, err := tree.RemoveAll(v)
		if err != nil || n == 0 {
			t.Fatalf("RemoveAll(%d): %d, %v", v, n, err)
		}
		ref.Remove(v)
		if m, err := tree.Minimum(); !ref.Empty() && (err != nil || m != ref.Left().Key.(int)) {
			t.Fatalf("min is %d, want %v", m, ref.Left().Key)
		}
	}
	var distinct []int
	for v := range tree.All() {
		if len(distinct) == 0 || distinct[len(distinct)-1] != v {
			distinct = append(distinct, v)
		}
	}
	keys := ref.Keys()
	if len(keys) != len(distinct) {
		t.Fatalf("%d distinct elements, want %d", len(distinct), len(keys))
	}
	for i, k := range keys {
		if k.(int) != distinct[i] {
			t.Errorf("element %d is %d, want %d", i, distinct[i], k)
		}
	}
}
