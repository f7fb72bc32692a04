package segtree

import (
	"fmt"
	"math/bits"
)

// Node navigation within the flat buffer. n is the total number of nodes,
// which is always odd.

func parent(k int) int     { return (k - 1) >> 1 }
func leftChild(k int) int  { return 2*k + 1 }
func rightChild(k int) int { return 2*k + 2 }

func leafIndex(n, i int) int    { return n>>1 + i }
func elementIndex(n, k int) int { return k - n>>1 }

// nextPowerOfTwo returns the smallest power of two >= n, for n >= 1.
func nextPowerOfTwo(n int) int {
	assert(n > 0, "nextPowerOfTwo: n must be positive")
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// nodeCount is the size of the buffer for a tree over n elements.
func nodeCount(n int) int {
	return 2*nextPowerOfTwo(n) - 1
}

// span returns the range of element positions first…last (inclusive) covered
// by node k in a tree with the given number of leaves. Positions ≥ Len() are
// padding.
func span(leaves, k int) (first, last int) {
	depth := bits.Len(uint(k+1)) - 1
	width := leaves >> depth
	first = (k + 1 - 1<<depth) * width
	return first, first + width - 1
}

// Span returns the range of element positions (both inclusive) covered by the
// node at index k of the flat buffer, as returned by Nodes. The range may
// extend into the padding.
func (t *Tree[T]) Span(k int) (first, last int, err error) {
	if t == nil || k < 0 || k >= len(t.nodes) {
		return 0, 0, fmt.Errorf("%w: node %d", ErrIndexOutOfRange, k)
	}
	first, last = span(t.Leaves(), k)
	return first, last, nil
}

// IsPadding reports whether node k covers padding positions only.
func (t *Tree[T]) IsPadding(k int) bool {
	first, _, err := t.Span(k)
	return err == nil && first >= t.n
}
