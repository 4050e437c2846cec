package orderedset

import "golang.org/x/exp/constraints"

// Comparator imposes a total order on V. It returns a negative number
// when a sorts before b, zero when the two are equal and a positive
// number when a sorts after b. Two values comparing equal are treated
// as the same element everywhere in this package, even when they are
// structurally different.
type Comparator[V any] func(a V, b V) int

// OrderedComparator returns a comparator for any naturally ordered type.
func OrderedComparator[V constraints.Ordered]() Comparator[V] {
	return func(a V, b V) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
}

// Reversed returns a comparator imposing the opposite order.
func (c Comparator[V]) Reversed() Comparator[V] {
	return func(a V, b V) int {
		return c(b, a)
	}
}
