// Package treeset implements a persistent ordered Set. A set shares
// the Red/Black tree engine of treemap, storing elements as keys with
// an empty payload.
package treeset // import "jsouthworth.net/go/sorted/treeset"

import (
	"fmt"
	"strings"

	"jsouthworth.net/go/seq"
	"jsouthworth.net/go/sorted/internal/rbtree"
	"jsouthworth.net/go/sorted/ordering"
)

// Error is the error type of this package.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrNotFound is returned by Min, Max and Choose on an empty set.
const ErrNotFound = Error("not found")

type none = struct{}

// Set is a persistent ordered set implementation. All operations
// taking two sets use the ordering of the receiver; both sets are
// expected to share it.
type Set[E any] struct {
	root *rbtree.Node[E, none]
	cmp  ordering.Compare[E]
}

// Empty returns the empty set ordered by cmp. Empty panics if cmp is
// nil.
func Empty[E any](cmp ordering.Compare[E]) *Set[E] {
	return &Set[E]{cmp: ordering.Must(cmp)}
}

// New returns a set ordered by cmp containing the supplied elements.
func New[E any](cmp ordering.Compare[E], elems ...E) *Set[E] {
	s := Empty(cmp)
	for _, elem := range elems {
		s = s.Add(elem)
	}
	return s
}

// Singleton returns the set ordered by cmp holding only elem.
func Singleton[E any](cmp ordering.Compare[E], elem E) *Set[E] {
	return Empty(cmp).Add(elem)
}

// FromSeq reduces a sequence into a set ordered by cmp. Every element
// of the sequence must be an E.
func FromSeq[E any](cmp ordering.Compare[E], coll seq.Sequence) *Set[E] {
	if coll == nil {
		return Empty(cmp)
	}
	return seq.Reduce(func(result *Set[E], input interface{}) *Set[E] {
		return result.Add(input.(E))
	}, Empty(cmp), coll).(*Set[E])
}

func (s *Set[E]) with(root *rbtree.Node[E, none]) *Set[E] {
	if root == s.root {
		return s
	}
	return &Set[E]{root: root, cmp: s.cmp}
}

func keep(none, none) bool { return true }

// Add adds an element to the set and a new set is returned. If the
// element is already present the original set is returned.
func (s *Set[E]) Add(elem E) *Set[E] {
	return s.with(rbtree.Insert(s.root, elem, none{}, s.cmp, keep))
}

// Delete removes an element from the set returning a new Set without
// the element. Deleting an absent element returns the original set.
func (s *Set[E]) Delete(elem E) *Set[E] {
	return s.with(rbtree.Delete(s.root, elem, s.cmp))
}

// Contains returns true if the element is in the set, false otherwise.
func (s *Set[E]) Contains(elem E) bool {
	return rbtree.Contains(s.root, elem, s.cmp)
}

// IsEmpty reports whether the set has no elements.
func (s *Set[E]) IsEmpty() bool {
	return s.root == nil
}

// Length returns the number of elements in the set.
func (s *Set[E]) Length() int {
	return rbtree.Len(s.root)
}

// Union returns the set of elements in s or other.
func (s *Set[E]) Union(other *Set[E]) *Set[E] {
	// The larger tree is split by the roots of the smaller one.
	if s.Length() < other.Length() {
		return s.with(rbtree.Union(other.root, s.root, s.cmp, nil))
	}
	return s.with(rbtree.Union(s.root, other.root, s.cmp, nil))
}

// Intersection returns the set of elements in both s and other.
func (s *Set[E]) Intersection(other *Set[E]) *Set[E] {
	return s.with(rbtree.Intersect(s.root, other.root, s.cmp, nil))
}

// Difference returns the set of elements of s not in other.
func (s *Set[E]) Difference(other *Set[E]) *Set[E] {
	return s.with(rbtree.Difference(s.root, other.root, s.cmp))
}

// Subset reports whether every element of s is in other.
func (s *Set[E]) Subset(other *Set[E]) bool {
	return rbtree.Subset(s.root, other.root, s.cmp)
}

// Equal tests if two sets hold the same elements.
func (s *Set[E]) Equal(other *Set[E]) bool {
	return rbtree.EqualTrees(s.root, other.root, s.cmp, nil)
}

// Compare orders sets lexicographically by their elements in
// ascending order. A set that is a proper prefix of the other orders
// first.
func (s *Set[E]) Compare(other *Set[E]) int {
	return rbtree.CompareTrees(s.root, other.root, s.cmp, nil)
}

// Comparator returns an ordering of sets of E, allowing sets to be
// elements of other sets or keys of a treemap.
func Comparator[E any]() ordering.Compare[*Set[E]] {
	return func(a, b *Set[E]) int {
		return a.Compare(b)
	}
}

// Min returns the smallest element. The error wraps ErrNotFound when
// the set is empty.
func (s *Set[E]) Min() (E, error) {
	return s.elemOf(rbtree.Min(s.root), "Min")
}

// Max returns the largest element. The error wraps ErrNotFound when
// the set is empty.
func (s *Set[E]) Max() (E, error) {
	return s.elemOf(rbtree.Max(s.root), "Max")
}

// Choose returns one element of the set, the same one for equal sets.
// The error wraps ErrNotFound when the set is empty.
func (s *Set[E]) Choose() (E, error) {
	return s.elemOf(rbtree.Min(s.root), "Choose")
}

func (s *Set[E]) elemOf(n *rbtree.Node[E, none], op string) (E, error) {
	if n == nil {
		var zero E
		return zero, fmt.Errorf("treeset: %s of empty set: %w", op, ErrNotFound)
	}
	return n.Key(), nil
}

// Split returns the set of elements before elem, whether elem is
// present, and the set of elements after elem.
func (s *Set[E]) Split(elem E) (lt *Set[E], present bool, gt *Set[E]) {
	l, found, r := rbtree.Split(s.root, elem, s.cmp)
	return s.with(l), found != nil, s.with(r)
}

// Range calls do on each element in ascending order until it returns
// false.
func (s *Set[E]) Range(do func(elem E) bool) {
	rbtree.Range(s.root, func(elem E, _ none) bool {
		return do(elem)
	})
}

// Each calls do on every element in ascending order.
func (s *Set[E]) Each(do func(elem E)) {
	rbtree.Range(s.root, func(elem E, _ none) bool {
		do(elem)
		return true
	})
}

// ForAll reports whether pred holds for every element.
func (s *Set[E]) ForAll(pred func(elem E) bool) bool {
	return rbtree.Range(s.root, func(elem E, _ none) bool {
		return pred(elem)
	})
}

// Exists reports whether pred holds for some element.
func (s *Set[E]) Exists(pred func(elem E) bool) bool {
	return !s.ForAll(func(elem E) bool {
		return !pred(elem)
	})
}

// Filter returns the set of elements satisfying pred.
func (s *Set[E]) Filter(pred func(elem E) bool) *Set[E] {
	return s.with(rbtree.Filter(s.root, func(elem E, _ none) bool {
		return pred(elem)
	}))
}

// Partition returns the set of elements satisfying pred and the set of
// the remaining elements.
func (s *Set[E]) Partition(pred func(elem E) bool) (yes, no *Set[E]) {
	y, n := rbtree.Partition(s.root, func(elem E, _ none) bool {
		return pred(elem)
	})
	return s.with(y), s.with(n)
}

// Elements returns the elements in ascending order.
func (s *Set[E]) Elements() []E {
	out := make([]E, 0, s.Length())
	s.Each(func(elem E) {
		out = append(out, elem)
	})
	return out
}

// Seq returns a seralized sequence of the set's elements in
// ascending order.
func (s *Set[E]) Seq() seq.Sequence {
	return rbtree.Seq(s.root, func(n *rbtree.Node[E, none]) interface{} {
		return n.Key()
	})
}

// String returns a string serialization of the set.
func (s *Set[E]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	s.Each(func(elem E) {
		fmt.Fprintf(&b, "%v ", elem)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// Validate checks the internal invariants of the set's tree.
func (s *Set[E]) Validate() error {
	return rbtree.Verify(s.root, s.cmp)
}

// Fold threads init through fn over the elements of s, smallest
// first.
func Fold[E, A any](s *Set[E], fn func(elem E, acc A) A, init A) A {
	return rbtree.Fold(s.root, func(elem E, _ none, acc A) A {
		return fn(elem, acc)
	}, init)
}

// MapElements returns the set of fn applied to every element of s,
// ordered by cmp. Unlike treemap.MapValues the elements move, so the
// result is built by insertion.
func MapElements[E, F any](s *Set[E], cmp ordering.Compare[F], fn func(elem E) F) *Set[F] {
	return Fold(s, func(elem E, acc *Set[F]) *Set[F] {
		return acc.Add(fn(elem))
	}, Empty(cmp))
}
