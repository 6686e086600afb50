package Trees

// A node in the BSTree. A node is owned by exactly one link: either the root
// of its tree or the l/r field of its parent. There's no parent pointer;
// callers track the parent while descending.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// replacement returns the node that takes n's place once n is spliced out.
// With no children it's nil; with one child it's that child. With two children
// it's the in-order successor of n, which is detached from its position and given
// n's subtrees, so the returned node can be linked directly where n was.
// n itself isn't modified.
// Time: O(D); Space: O(1)
func replacement[T any](n *node[T]) *node[T] {
	if n.l == nil {
		return n.r
	} else if n.r == nil {
		return n.l
	}
	parent, cur := n, n.r
	for cur.l != nil {
		parent, cur = cur, cur.l
	}
	cur.l = n.l
	if n.r != cur {
		parent.l = cur.r
		cur.r = n.r
	}
	return cur
}

// leftmost node of the subtree rooting at n, n!=nil.
func leftmost[T any](n *node[T]) *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n, n!=nil.
func rightmost[T any](n *node[T]) *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
