package segtree

import "fmt"

// Check validates the structural invariants of a tree with comparable
// element values. See CheckWith.
func Check[T comparable](t *Tree[T]) error {
	return t.CheckWith(func(a, b T) bool { return a == b })
}

// CheckWith validates the structural invariants of a tree, using eq to compare
// node values:
//
//   - the buffer holds 2P-1 nodes, P a power of two and P ≥ Len(),
//   - every internal node is the aggregate of its two children,
//   - every padding leaf holds the identity of the monoid.
//
// This checker is strict and intended for tests and debugging.
func (t *Tree[T]) CheckWith(eq func(a, b T) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if eq == nil || t.monoid == nil {
		return fmt.Errorf("%w: equality and monoid are required", ErrIllegalArguments)
	}
	size := len(t.nodes)
	if size%2 == 0 {
		return fmt.Errorf("%w: node count %d is even", ErrInvariant, size)
	}
	leaves := (size + 1) / 2
	if leaves&(leaves-1) != 0 {
		return fmt.Errorf("%w: leaf count %d is not a power of two", ErrInvariant, leaves)
	}
	if t.n < 1 || t.n > leaves {
		return fmt.Errorf("%w: element count %d does not fit %d leaves", ErrInvariant, t.n, leaves)
	}
	if size != nodeCount(t.n) {
		return fmt.Errorf("%w: node count %d, expected %d", ErrInvariant, size, nodeCount(t.n))
	}
	zero := t.monoid.Zero()
	for k := leafIndex(size, t.n); k < size; k++ {
		if !eq(t.nodes[k], zero) {
			return fmt.Errorf("%w: padding leaf %d holds %v", ErrInvariant, k, t.nodes[k])
		}
	}
	for k := size>>1 - 1; k >= 0; k-- {
		agg := t.monoid.Add(t.nodes[leftChild(k)], t.nodes[rightChild(k)])
		if !eq(t.nodes[k], agg) {
			return fmt.Errorf("%w: node %d holds %v, children aggregate to %v",
				ErrInvariant, k, t.nodes[k], agg)
		}
	}
	return nil
}
