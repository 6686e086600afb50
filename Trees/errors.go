package Trees

import "fmt"

var (
	// ErrEmptyTree matches any *EmptyTreeError with errors.Is.
	ErrEmptyTree error = &EmptyTreeError{}
	// ErrNotFound matches any *ElementNotFoundError with errors.Is.
	ErrNotFound error = &ElementNotFoundError{}
)

// EmptyTreeError is returned by the min/max queries and removals on an empty tree.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	if e.Op == "" {
		return "Tree is Empty."
	}
	return fmt.Sprintf("Tree is Empty: cannot %s.", e.Op)
}

func (e *EmptyTreeError) Is(target error) bool {
	_, ok := target.(*EmptyTreeError)
	return ok
}

// ElementNotFoundError is returned when removing an element that isn't in the tree.
type ElementNotFoundError struct {
	Elem any
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("Element not found: %v.", e.Elem)
}

func (e *ElementNotFoundError) Is(target error) bool {
	_, ok := target.(*ElementNotFoundError)
	return ok
}

// InvalidSliceError is the panic value of From and FromFunc when the given slice
// isn't sorted. Prev and Next are the first adjacent pair out of order, Next
// being at index I.
type InvalidSliceError struct {
	I          int
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't sorted at index %d: %v > %v", e.I, e.Prev, e.Next)
}
