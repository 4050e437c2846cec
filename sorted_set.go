package orderedset

import (
	"sort"

	g "github.com/anacrolix/generics"
)

// SortedSet keeps unique values in a contiguous slice, sorted ascending
// under a caller supplied comparator. The comparator decides identity:
// a value comparing equal to a stored element is a duplicate even when
// the two are structurally different.
//
// A SortedSet is not safe for concurrent use. Callers sharing one
// across goroutines must serialize every call behind a single lock,
// reads included, since mutations shift the backing slice in place.
type SortedSet[V any] struct {
	EnhancedIterator[V]
	list       []V
	comparator Comparator[V]
}

// NewSortedSet creates an empty set ordered by comparator.
func NewSortedSet[V any](comparator Comparator[V]) *SortedSet[V] {
	sortedSet := &SortedSet[V]{
		list:       make([]V, 0),
		comparator: comparator,
	}
	sortedSet.base = sortedSet
	return sortedSet
}

// NewSortedSetFromList creates a set seeded from values, applying the
// same ordering and duplicate rules as repeated Add calls.
func NewSortedSetFromList[V any](comparator Comparator[V], values []V) *SortedSet[V] {
	sortedSet := NewSortedSet(comparator)
	sortedSet.AddAll(values)
	return sortedSet
}

// locate returns the index holding a value comparing equal to value if
// one is present, otherwise the index at which value would have to be
// inserted to keep the list sorted. O(log n)
func (v *SortedSet[V]) locate(value V) int {
	return sort.Search(len(v.list), func(i int) bool {
		return v.comparator(v.list[i], value) >= 0
	})
}

// Add inserts a value, keeping the list sorted. Adding a value that
// compares equal to a stored element is a no-op: the stored element is
// retained, not replaced. O(log n) search + O(n) shift
func (v *SortedSet[V]) Add(value V) {
	i := v.locate(value)

	if i >= len(v.list) {
		v.list = append(v.list, value)
		return
	}

	if v.comparator(v.list[i], value) == 0 {
		return
	}

	v.list = append(v.list, value)
	copy(v.list[i+1:], v.list[i:])
	v.list[i] = value
}

// AddAll adds every value in order. Each element goes through Add, so
// duplicates within values collapse one at a time.
func (v *SortedSet[V]) AddAll(values []V) {
	for _, value := range values {
		v.Add(value)
	}
}

// Remove removes the element comparing equal to value, if any. O(n)
func (v *SortedSet[V]) Remove(value V) {
	i := v.locate(value)

	if i >= len(v.list) {
		return
	}

	if v.comparator(v.list[i], value) == 0 {
		v.list = append(v.list[:i], v.list[i+1:]...)
	}
}

// Exists reports whether an element comparing equal to value is
// present. O(log n)
func (v *SortedSet[V]) Exists(value V) bool {
	i := v.locate(value)
	return i < len(v.list) && v.comparator(v.list[i], value) == 0
}

// Get returns the stored element comparing equal to value. The set's
// own copy is returned, which matters when V carries fields the
// comparator ignores. O(log n)
func (v *SortedSet[V]) Get(value V) g.Option[V] {
	i := v.locate(value)

	if i < len(v.list) && v.comparator(v.list[i], value) == 0 {
		return g.Some(v.list[i])
	}

	return g.None[V]()
}

// Higher returns the least element strictly greater than value, whether
// or not value itself is present. O(log n)
func (v *SortedSet[V]) Higher(value V) g.Option[V] {
	i := v.locate(value)

	if i >= len(v.list) {
		return g.None[V]()
	}

	if v.comparator(v.list[i], value) != 0 {
		return g.Some(v.list[i])
	}

	if i+1 < len(v.list) {
		return g.Some(v.list[i+1])
	}

	return g.None[V]()
}

// Lower returns the greatest element strictly less than value, whether
// or not value itself is present. Everything below the located slot is
// strictly smaller, so the slot before it is the answer in both the
// present and absent case. O(log n)
func (v *SortedSet[V]) Lower(value V) g.Option[V] {
	i := v.locate(value)

	if i > 0 {
		return g.Some(v.list[i-1])
	}

	return g.None[V]()
}

// Ceiling returns the least element greater than or equal to value.
// O(log n)
func (v *SortedSet[V]) Ceiling(value V) g.Option[V] {
	i := v.locate(value)

	if i < len(v.list) {
		return g.Some(v.list[i])
	}

	return g.None[V]()
}

// Floor returns the greatest element less than or equal to value.
// O(log n)
func (v *SortedSet[V]) Floor(value V) g.Option[V] {
	i := v.locate(value)

	if i < len(v.list) && v.comparator(v.list[i], value) == 0 {
		return g.Some(v.list[i])
	}

	if i > 0 {
		return g.Some(v.list[i-1])
	}

	return g.None[V]()
}

// First returns the smallest element. O(1)
func (v *SortedSet[V]) First() g.Option[V] {
	if len(v.list) == 0 {
		return g.None[V]()
	}
	return g.Some(v.list[0])
}

// Last returns the largest element. O(1)
func (v *SortedSet[V]) Last() g.Option[V] {
	if len(v.list) == 0 {
		return g.None[V]()
	}
	return g.Some(v.list[len(v.list)-1])
}

func (v *SortedSet[V]) GetSize() int {
	return len(v.list)
}

func (v *SortedSet[V]) Clear() {
	v.list = make([]V, 0)
}

// ToList returns the elements in ascending order. The returned slice is
// a copy; mutating it cannot break the set's ordering.
func (v *SortedSet[V]) ToList() []V {
	ret := make([]V, len(v.list))
	copy(ret, v.list)
	return ret
}

// Where builds a new set holding the elements the predicate keeps,
// under the same comparator.
func (v *SortedSet[V]) Where(predicate FilterCallback[V]) *SortedSet[V] {
	ret := NewSortedSet(v.comparator)
	for _, value := range v.list {
		if predicate(value) {
			ret.Add(value)
		}
	}
	return ret
}

// Map builds a new set from transform applied to every element in
// ascending order, under the same comparator. Results that collide
// under the comparator are deduplicated the way Add deduplicates: the
// first one inserted wins.
func (v *SortedSet[V]) Map(transform MapCallback[V, V]) *SortedSet[V] {
	return MapTo(v, v.comparator, transform)
}

// MapTo builds a set of a new element type from transform applied to
// every element of set in ascending order. A comparator for the output
// type must be supplied. Colliding results are deduplicated, first one
// in wins.
func MapTo[V any, W any](set *SortedSet[V], comparator Comparator[W], transform MapCallback[V, W]) *SortedSet[W] {
	ret := NewSortedSet(comparator)
	for _, value := range set.list {
		ret.Add(transform(value))
	}
	return ret
}

// Tail returns a view of the elements greater than fromValue, or
// greater than or equal to it when inclusive. The view reads the set's
// storage as of this call. O(log n)
func (v *SortedSet[V]) Tail(fromValue V, inclusive bool) Iterable[V] {
	i := v.locate(fromValue)

	if !inclusive && i < len(v.list) && v.comparator(v.list[i], fromValue) == 0 {
		i++
	}

	return v.sliceIterable(i, len(v.list))
}

// Head returns a view of the elements less than toValue, or less than
// or equal to it when inclusive. O(log n)
func (v *SortedSet[V]) Head(toValue V, inclusive bool) Iterable[V] {
	j := v.locate(toValue)

	if inclusive && j < len(v.list) && v.comparator(v.list[j], toValue) == 0 {
		j++
	}

	return v.sliceIterable(0, j)
}

// Sub returns a view of the elements ranging from fromValue to toValue
// with the given inclusivity at each end. An empty range yields an
// empty view. O(log n)
func (v *SortedSet[V]) Sub(fromValue V, toValue V, fromInclusive bool, toInclusive bool) Iterable[V] {
	i := v.locate(fromValue)
	if !fromInclusive && i < len(v.list) && v.comparator(v.list[i], fromValue) == 0 {
		i++
	}

	j := v.locate(toValue)
	if toInclusive && j < len(v.list) && v.comparator(v.list[j], toValue) == 0 {
		j++
	}

	if j < i {
		j = i
	}

	return v.sliceIterable(i, j)
}

func (v *SortedSet[V]) sliceIterable(i int, j int) Iterable[V] {
	list := v.list[i:j]
	itr := Iterable[V]{
		recreaterCallback: func() IteratorBase[V] {
			return &SortedSetIterator[V]{
				list:  list,
				index: -1,
			}
		},
	}
	itr.base = itr
	return itr
}

// returns an iterator over the elements in ascending order
func (v *SortedSet[V]) GetIterator() IteratorBase[V] {
	return &SortedSetIterator[V]{
		list:  v.list,
		index: -1,
	}
}

// Iterator for a SortedSet
type SortedSetIterator[V any] struct {
	index int
	list  []V
}

// move next for SortedSetIterator
func (i *SortedSetIterator[V]) MoveNext() bool {
	if i.index < len(i.list)-1 {
		i.index++
		return true
	}
	return false
}

// get current for SortedSetIterator
func (i *SortedSetIterator[V]) GetCurrent() V {
	if i.index >= len(i.list) || i.index < 0 {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}

	return i.list[i.index]
}
