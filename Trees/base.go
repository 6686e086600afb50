package Trees

import (
	"cmp"
	"fmt"
	"iter"
	"sort"

	"github.com/g-m-twostay/bstree/Queues"
	"github.com/xlab/treeprint"
)

// From a given sorted slice, directly build a balanced BSTree ordered by cmp.Compare.
// This is faster than repeatedly calling Insert. The slice must be sorted in
// non-decreasing order; in a run of equal elements the first one built is the
// leftmost of the run, so the others end up on its right.
// If safe==true, this function checks the order first and panics with
// InvalidSliceError if it's broken. Otherwise it's up to the caller, and an unsorted
// slice gives a corrupt tree.
// A run of k equal elements becomes a right leaning chain of depth about k.
// Time: O(n) for distinct elements, O(n log n) with repeated ones. Recursive.
func From[T cmp.Ordered](sli []T, safe bool) *BSTree[T] {
	return FromFunc(sli, cmp.Compare[T], safe)
}

// FromFunc is the NewFunc equivalence of From.
func FromFunc[T any](sli []T, c func(T, T) int, safe bool) *BSTree[T] {
	u := NewFunc(c)
	if safe {
		for i := 1; i < len(sli); i++ {
			if c(sli[i-1], sli[i]) > 0 {
				panic(InvalidSliceError{i, sli[i-1], sli[i]})
			}
		}
	}
	var build func([]T) *node[T]
	build = func(s []T) *node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		if h := mid; h > 0 && c(s[h-1], s[h]) == 0 {
			mid = sort.Search(h-1, func(i int) bool {
				return c(s[i], s[h]) >= 0
			})
		}
		return &node[T]{s[mid], build(s[:mid]), build(s[mid+1:])}
	}
	u.root, u.sz = build(sli), uint(len(sli))
	return u
}

// Size [SearchTree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Empty [SearchTree.Empty]
func (u *BSTree[T]) Empty() bool {
	return u.root == nil
}

// Clear the tree.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

type leveled[T any] struct {
	n *node[T]
	d uint
}

// levels walks the tree breadth first, calling f with each node and its level
// starting from 1, until f returns false.
func (u *BSTree[T]) levels(f func(*node[T], uint) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[leveled[T]](16)
	q.Push(leveled[T]{u.root, 1})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.n, it.d) {
			return
		}
		if it.n.l != nil {
			q.Push(leveled[T]{it.n.l, it.d + 1})
		}
		if it.n.r != nil {
			q.Push(leveled[T]{it.n.r, it.d + 1})
		}
	}
}

// Height [SearchTree.Height]. 0 for an empty tree, 1 for a single node.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Height() (h uint) {
	u.levels(func(_ *node[T], d uint) bool {
		h = d
		return true
	})
	return
}

// AverageDepth of the nodes, the root having depth 1. It's the expected number of
// comparisons of a successful Find. 0 for an empty tree.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) AverageDepth() float64 {
	var sum, cnt uint
	u.levels(func(_ *node[T], d uint) bool {
		sum += d
		cnt++
		return true
	})
	if cnt == 0 {
		return 0
	}
	return float64(sum) / float64(cnt)
}

// LevelOrder yields the elements breadth first, from the root down, left to right.
func (u *BSTree[T]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.levels(func(n *node[T], _ uint) bool {
			return yield(n.v)
		})
	}
}

// InOrder returns A closure function f acting like an iterator. f gives elements
// in ascending order. val, valid=f() where val is meaningful only if valid is true.
// When valid==false, then f is exhausted. The tree must not be modified during the
// iteration of f.
// Time: f(): amortized O(1) at each call. Space: O(D)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// InOrderR is InOrder in descending order.
func (u *BSTree[T]) InOrderR() func() (T, bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.r {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.l; c != nil; c = c.r {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// All [SearchTree.All]
func (u *BSTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for f := u.InOrder(); ; {
			v, has := f()
			if !has || !yield(v) {
				return
			}
		}
	}
}

// Backward yields all elements in descending order.
func (u *BSTree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for f := u.InOrderR(); ; {
			v, has := f()
			if !has || !yield(v) {
				return
			}
		}
	}
}

// n must be in [lo, hi); nil bounds are unbounded.
type bounded[T any] struct {
	n, lo, hi *node[T]
}

// Corrupt [SearchTree.Corrupt]. Also reports a corrupt tree when the number of
// nodes doesn't match Size.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Corrupt() bool {
	var cnt uint
	for st := []bounded[T]{{u.root, nil, nil}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.n == nil {
			continue
		}
		if (f.lo != nil && u.cmp(f.n.v, f.lo.v) < 0) || (f.hi != nil && u.cmp(f.n.v, f.hi.v) >= 0) {
			return true
		}
		cnt++
		st = append(st, bounded[T]{f.n.l, f.lo, f.n}, bounded[T]{f.n.r, f.n, f.hi})
	}
	return cnt != u.sz
}

// String draws the tree, one node per line, left child before right child.
func (u *BSTree[T]) String() string {
	if u.root == nil {
		return treeprint.New().String()
	}
	var add func(treeprint.Tree, *node[T])
	add = func(b treeprint.Tree, n *node[T]) {
		if n.l != nil {
			add(b.AddMetaBranch("L", fmt.Sprint(n.l.v)), n.l)
		}
		if n.r != nil {
			add(b.AddMetaBranch("R", fmt.Sprint(n.r.v)), n.r)
		}
	}
	tp := treeprint.NewWithRoot(fmt.Sprint(u.root.v))
	add(tp, u.root)
	return tp.String()
}
