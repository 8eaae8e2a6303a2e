// Package order defines the comparison relation consumed by partition scans
// and boundary checks.
//
// An Ordering is not assumed to be total: incomparable pairs are permitted.
// Over a genuinely partial order the sortedness verdict produced from it is
// only meaningful for pairwise-comparable data: an incomparable adjacent
// pair inside a partition is not flagged (GreaterThan reports false), while
// an incomparable pair across a partition boundary clears the sorted flag
// (LessOrEqual reports false). Suppliers of partial orders should treat the
// verdict as conservative.
package order

import "cmp"

// Ordering compares two values of type T.
// Implementations must be safe for concurrent use; scans run one goroutine
// per partition against a single shared Ordering.
type Ordering[T any] interface {
	// LessOrEqual reports whether a precedes or equals b.
	LessOrEqual(a, b T) bool
	// GreaterThan reports whether a strictly follows b.
	GreaterThan(a, b T) bool
}

type natural[T cmp.Ordered] struct{}

func (natural[T]) LessOrEqual(a, b T) bool { return a <= b }
func (natural[T]) GreaterThan(a, b T) bool { return a > b }

// Natural returns the total ordering defined by the < operator.
func Natural[T cmp.Ordered]() Ordering[T] {
	return natural[T]{}
}

type by[T any] struct {
	cmp func(a, b T) int
}

func (o by[T]) LessOrEqual(a, b T) bool { return o.cmp(a, b) <= 0 }
func (o by[T]) GreaterThan(a, b T) bool { return o.cmp(a, b) > 0 }

// By adapts a three-way compare function (negative, zero, positive) into an
// Ordering. The function must be safe for concurrent use.
func By[T any](cmp func(a, b T) int) Ordering[T] {
	return by[T]{cmp: cmp}
}

type reverse[T any] struct {
	inner Ordering[T]
}

func (o reverse[T]) LessOrEqual(a, b T) bool { return o.inner.LessOrEqual(b, a) }
func (o reverse[T]) GreaterThan(a, b T) bool { return o.inner.GreaterThan(b, a) }

// Reverse returns the ordering with the direction of ord flipped.
func Reverse[T any](ord Ordering[T]) Ordering[T] {
	return reverse[T]{inner: ord}
}
