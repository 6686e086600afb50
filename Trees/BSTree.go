package Trees

import (
	"cmp"
)

// BSTree is an unbalanced binary search tree that allows repeated values.
// For every node, elements in its left subtree compare less than it and
// elements in its right subtree compare greater than or equal to it, so equal
// elements are added to the right. Nothing is done to keep the tree balanced,
// inserting in sorted order degenerates it into a list; D below is the height.
// BSTree isn't safe for concurrent use; guard the whole tree with one lock if needed.
// The zero value has no ordering and can't be used; make trees with New, NewFunc,
// Of, OfFunc, From or FromFunc.
type BSTree[T any] struct {
	root *node[T]
	cmp  func(T, T) int
	sz   uint
}

const errNoOrder = "Trees: BSTree has no comparison function, create it with New or NewFunc"

// New returns an empty BSTree ordered by cmp.Compare.
func New[T cmp.Ordered]() *BSTree[T] {
	return &BSTree[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty BSTree ordered by c. c(a,b) must be negative when a<b,
// zero when a==b, positive when a>b, and must define a total order.
func NewFunc[T any](c func(T, T) int) *BSTree[T] {
	if c == nil {
		panic(errNoOrder)
	}
	return &BSTree[T]{cmp: c}
}

// Of returns a BSTree with v as its root.
func Of[T cmp.Ordered](v T) *BSTree[T] {
	u := New[T]()
	u.Insert(v)
	return u
}

// OfFunc is the NewFunc equivalence of Of.
func OfFunc[T any](v T, c func(T, T) int) *BSTree[T] {
	u := NewFunc(c)
	u.Insert(v)
	return u
}

// Insert [SearchTree.Insert]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) {
	if u.cmp == nil {
		panic(errNoOrder)
	}
	u.sz++
	n := &node[T]{v: v}
	if u.root == nil {
		u.root = n
		return
	}
	for cur := u.root; ; {
		if u.cmp(v, cur.v) < 0 {
			if cur.l == nil {
				cur.l = n
				return
			}
			cur = cur.l
		} else {
			if cur.r == nil {
				cur.r = n
				return
			}
			cur = cur.r
		}
	}
}

// Find [SearchTree.Find]. The stored element is returned, which is useful when
// the comparison only looks at part of T.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c == 0 {
			return cur.v, true
		} else if c < 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Has [SearchTree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	_, has := u.Find(v)
	return has
}

// Remove [SearchTree.Remove]. When there are several equal elements, the first
// one met on the search path from the root is removed.
// A node with two children is replaced by its in-order successor. At the root
// the successor's content is moved into the root node instead.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) (T, error) {
	if u.root == nil {
		return *new(T), &ElementNotFoundError{v}
	}
	c := u.cmp(v, u.root.v)
	if c == 0 {
		r := u.root.v
		if rep := replacement(u.root); rep == nil {
			u.root = nil
		} else {
			u.root.v, u.root.l, u.root.r = rep.v, rep.l, rep.r
		}
		u.sz--
		return r, nil
	}
	for parent := u.root; ; {
		cur := parent.r
		if c < 0 {
			cur = parent.l
		}
		if cur == nil {
			return *new(T), &ElementNotFoundError{v}
		}
		if c = u.cmp(v, cur.v); c == 0 {
			if parent.r == cur {
				parent.r = replacement(cur)
			} else {
				parent.l = replacement(cur)
			}
			u.sz--
			return cur.v, nil
		}
		parent = cur
	}
}

// RemoveAll [SearchTree.RemoveAll]
// Time: O(k*D) for k removed elements; Space: O(1)
func (u *BSTree[T]) RemoveAll(v T) (uint, error) {
	if _, e := u.Remove(v); e != nil {
		return 0, e
	}
	n := uint(1)
	for u.Has(v) {
		if _, e := u.Remove(v); e != nil {
			break
		}
		n++
	}
	return n, nil
}

// RemoveMin [SearchTree.RemoveMin]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) RemoveMin() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"RemoveMin"}
	}
	var r T
	if u.root.l == nil {
		r = u.root.v
		u.root = u.root.r
	} else {
		parent, cur := u.root, u.root.l
		for cur.l != nil {
			parent, cur = cur, cur.l
		}
		r = cur.v
		parent.l = cur.r
	}
	u.sz--
	return r, nil
}

// RemoveMax [SearchTree.RemoveMax]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) RemoveMax() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"RemoveMax"}
	}
	var parent *node[T]
	cur := u.root
	for cur.r != nil {
		parent, cur = cur, cur.r
	}
	if parent == nil {
		u.root = u.root.l
	} else {
		parent.r = cur.l
	}
	u.sz--
	return cur.v, nil
}

// Minimum [SearchTree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"Minimum"}
	}
	return leftmost(u.root).v, nil
}

// Maximum [SearchTree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, error) {
	if u.root == nil {
		return *new(T), &EmptyTreeError{"Maximum"}
	}
	return rightmost(u.root).v, nil
}

// Predecessor [SearchTree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [SearchTree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}
