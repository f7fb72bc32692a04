package segtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"math/bits"
)

// Tree is a static segment tree over a sequence of values of type T.
//
// The number of elements is fixed at construction time. If it changes, clients
// have to build a new tree.
type Tree[T any] struct {
	nodes  []T // len(nodes) = 2P-1, internal nodes first, then P leaf slots
	n      int // logical element count
	monoid Monoid[T]
}

// Build creates a tree over elements, aggregating with m.
// elements is copied and may be reused by the caller.
//
// Building from an empty sequence is rejected with ErrInvalidSize.
func Build[T any](m Monoid[T], elements []T) (*Tree[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: monoid is required", ErrIllegalArguments)
	}
	if len(elements) == 0 {
		tracer().Errorf("segtree: build with zero elements")
		return nil, ErrInvalidSize
	}
	size := nodeCount(len(elements))
	tree := &Tree[T]{
		nodes:  make([]T, size),
		n:      len(elements),
		monoid: m,
	}
	zero := m.Zero()
	for k := size >> 1; k < size; k++ {
		if i := elementIndex(size, k); i < len(elements) {
			tree.nodes[k] = elements[i]
		} else {
			tree.nodes[k] = zero // padding
		}
	}
	// children have strictly larger indices than their parent, so a single
	// backward pass sees them finalized
	for k := size>>1 - 1; k >= 0; k-- {
		tree.nodes[k] = m.Add(tree.nodes[leftChild(k)], tree.nodes[rightChild(k)])
	}
	tracer().Debugf("segtree: built tree with %d elements, %d leaves, %d nodes",
		tree.n, tree.Leaves(), size)
	return tree, nil
}

// BuildSum creates a tree of range sums.
func BuildSum(elements []int64) (*Tree[int64], error) {
	return Build[int64](Sum{}, elements)
}

// BuildMin creates a tree of range minima.
func BuildMin(elements []int64) (*Tree[int64], error) {
	return Build[int64](Min{}, elements)
}

// BuildMax creates a tree of range maxima.
func BuildMax(elements []int64) (*Tree[int64], error) {
	return Build[int64](Max{}, elements)
}

// Len returns the number of elements.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Leaves returns the number of leaf slots, i.e. the element count rounded up
// to the next power of two.
func (t *Tree[T]) Leaves() int {
	if t == nil {
		return 0
	}
	return (len(t.nodes) + 1) / 2
}

// Height returns the number of levels of the tree, where a single leaf has
// height 1.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return bits.Len(uint(t.Leaves()))
}

// Monoid returns the aggregation monoid the tree has been built with.
func (t *Tree[T]) Monoid() Monoid[T] {
	if t == nil {
		return nil
	}
	return t.monoid
}

// Get returns the element at index i.
func (t *Tree[T]) Get(i int) (T, error) {
	if err := t.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return t.nodes[leafIndex(len(t.nodes), i)], nil
}

// Set replaces the element at index i with value and updates all ancestors
// of the element's leaf.
func (t *Tree[T]) Set(i int, value T) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	k := leafIndex(len(t.nodes), i)
	t.nodes[k] = value
	for k > 0 {
		k = parent(k)
		t.nodes[k] = t.monoid.Add(t.nodes[leftChild(k)], t.nodes[rightChild(k)])
	}
	tracer().Debugf("segtree: set element %d = %v", i, value)
	return nil
}

// Query returns the aggregate of elements first…last, both inclusive.
func (t *Tree[T]) Query(first, last int) (T, error) {
	var zero T
	if t == nil {
		return zero, fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if first > last {
		tracer().Errorf("segtree: query with first=%d > last=%d", first, last)
		return zero, fmt.Errorf("%w: first=%d > last=%d", ErrIndexOutOfRange, first, last)
	}
	if err := t.checkIndex(first); err != nil {
		return zero, err
	}
	if err := t.checkIndex(last); err != nil {
		return zero, err
	}
	return t.query(0, 0, t.Leaves()-1, first, last), nil
}

// query descends from node k, which covers elements l…r. Recursion depth is
// bounded by the height of the tree.
func (t *Tree[T]) query(k, l, r, first, last int) T {
	if first > r || last < l {
		return t.monoid.Zero()
	}
	if first <= l && r <= last {
		return t.nodes[k]
	}
	mid := (l + r) / 2
	return t.monoid.Add(
		t.query(leftChild(k), l, mid, first, last),
		t.query(rightChild(k), mid+1, r, first, last),
	)
}

// Prefix returns the aggregate of elements 0…i.
func (t *Tree[T]) Prefix(i int) (T, error) {
	return t.Query(0, i)
}

// Total returns the aggregate of all elements, which is the value of the root.
func (t *Tree[T]) Total() T {
	if t == nil || len(t.nodes) == 0 {
		var zero T
		return zero
	}
	return t.nodes[0]
}

// Nodes returns a copy of the flat node buffer, including internal nodes and
// padding leaves.
func (t *Tree[T]) Nodes() []T {
	if t == nil {
		return nil
	}
	nodes := make([]T, len(t.nodes))
	copy(nodes, t.nodes)
	return nodes
}

// Elements returns a copy of the elements, without padding.
func (t *Tree[T]) Elements() []T {
	if t == nil {
		return nil
	}
	leaves := len(t.nodes) >> 1
	elements := make([]T, t.n)
	copy(elements, t.nodes[leaves:leaves+t.n])
	return elements
}

// All returns an iterator over all (index, element) pairs in order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t == nil {
			return
		}
		for i := 0; i < t.n; i++ {
			if !yield(i, t.nodes[leafIndex(len(t.nodes), i)]) {
				return
			}
		}
	}
}

func (t *Tree[T]) checkIndex(i int) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if i < 0 || i >= t.n {
		tracer().Errorf("segtree: index %d out of range [0,%d)", i, t.n)
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, t.n)
	}
	return nil
}
