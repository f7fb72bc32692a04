package segtree

import "math"

// Monoid defines how element values are aggregated up the tree.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Zero is used for padding leaves as well as for the contribution of
// sub-ranges disjoint from a query, so a wrong identity will corrupt results
// for trees with a non-power-of-two element count.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Sum aggregates int64 values by addition. The identity is 0.
type Sum struct{}

func (Sum) Zero() int64                 { return 0 }
func (Sum) Add(left, right int64) int64 { return left + right }

// Min aggregates int64 values to their minimum. The identity is math.MaxInt64,
// standing in for +∞.
type Min struct{}

func (Min) Zero() int64 { return math.MaxInt64 }
func (Min) Add(left, right int64) int64 {
	if right < left {
		return right
	}
	return left
}

// Max aggregates int64 values to their maximum. The identity is math.MinInt64,
// standing in for −∞.
type Max struct{}

func (Max) Zero() int64 { return math.MinInt64 }
func (Max) Add(left, right int64) int64 {
	if right > left {
		return right
	}
	return left
}

// MonoidFunc adapts a pair of functions to interface Monoid.
//
//	gcd := segtree.MonoidFunc[int]{
//	    Op:       func(a, b int) int { ... },
//	    Identity: func() int { return 0 },
//	}
type MonoidFunc[T any] struct {
	Op       func(left, right T) T
	Identity func() T
}

// Zero is part of interface Monoid.
func (m MonoidFunc[T]) Zero() T {
	return m.Identity()
}

// Add is part of interface Monoid.
func (m MonoidFunc[T]) Add(left, right T) T {
	return m.Op(left, right)
}

var (
	_ Monoid[int64] = Sum{}
	_ Monoid[int64] = Min{}
	_ Monoid[int64] = Max{}
)
