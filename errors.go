package segtree

// Error is an error type for the segtree module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrInvalidSize is flagged when a tree is to be built from an empty sequence.
const ErrInvalidSize = Error("segtree: cannot build a tree from zero elements")

// ErrIndexOutOfRange is flagged whenever an element index is not less than
// the number of elements of a tree, or a range has first > last.
const ErrIndexOutOfRange = Error("segtree: index out of range")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("segtree: illegal arguments")

// ErrInvariant signals a violated structural invariant (see Check).
const ErrInvariant = Error("segtree: invariant violated")
