package Trees

import "iter"

// SearchTree represents an ordered collection implemented as a binary search tree.
// Elements equal to each other may be stored multiple times. Methods that return an
// error leave the tree unchanged when the error isn't nil. Receivers that have A
// bool as A second return value indicate whether the first return value is defined.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type SearchTree[T any] interface {
	//Insert v to the tree. Always succeeds.
	Insert(v T)
	//Find the stored element equal to v.
	Find(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Remove one element equal to v and return the stored element.
	//Returns *ElementNotFoundError if there's none.
	Remove(v T) (T, error)
	//RemoveAll elements equal to v, returning how many were removed.
	//Returns *ElementNotFoundError if there was none to begin with.
	RemoveAll(v T) (uint, error)
	//RemoveMin removes and returns the least element. Returns *EmptyTreeError on an empty tree.
	RemoveMin() (T, error)
	//RemoveMax removes and returns the greatest element. Returns *EmptyTreeError on an empty tree.
	RemoveMax() (T, error)
	//Minimum element of the tree. Returns *EmptyTreeError on an empty tree.
	Minimum() (T, error)
	//Maximum element of the tree. Returns *EmptyTreeError on an empty tree.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//Empty is true iff Size()==0.
	Empty() bool
	//Height is the number of levels in the tree.
	Height() uint
	//All elements in ascending order. The tree mustn't be modified during the iteration.
	All() iter.Seq[T]
	//Corrupt returns whether some node violates the ordering of the tree.
	Corrupt() bool
}

var _ SearchTree[int] = (*BSTree[int])(nil)
