package rbtree

import (
	"jsouthworth.net/go/sorted/ordering"
)

// Resolve picks the value kept for a key present in both operands of
// Union or Intersect.
type Resolve[K, V any] func(key K, a, b V) V

// Union returns the tree of every key in a or b. For keys present in
// both, resolve chooses the value; a nil resolve keeps the value from b.
func Union[K, V any](a, b *Node[K, V], cmp ordering.Compare[K], resolve Resolve[K, V]) *Node[K, V] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a == b && resolve == nil:
		return a
	}
	lt, found, gt := Split(a, b.key, cmp)
	value := b.value
	if found != nil && resolve != nil {
		value = resolve(b.key, found.value, b.value)
	}
	l := Union(lt, b.left, cmp, resolve)
	r := Union(gt, b.right, cmp, resolve)
	return Join(l, b.key, value, r)
}

// Intersect returns the tree of keys present in both a and b. For
// each key, resolve chooses the value; a nil resolve keeps the entry
// from a.
func Intersect[K, V any](a, b *Node[K, V], cmp ordering.Compare[K], resolve Resolve[K, V]) *Node[K, V] {
	switch {
	case a == nil, b == nil:
		return nil
	case a == b && resolve == nil:
		return a
	}
	lt, found, gt := Split(a, b.key, cmp)
	l := Intersect(lt, b.left, cmp, resolve)
	r := Intersect(gt, b.right, cmp, resolve)
	if found == nil {
		return Join2(l, r)
	}
	value := found.value
	if resolve != nil {
		value = resolve(found.key, found.value, b.value)
	}
	return Join(l, found.key, value, r)
}

// Difference returns the entries of a whose keys are not in b.
func Difference[K, V any](a, b *Node[K, V], cmp ordering.Compare[K]) *Node[K, V] {
	switch {
	case a == nil:
		return nil
	case b == nil:
		return a
	case a == b:
		return nil
	}
	lt, _, gt := Split(a, b.key, cmp)
	return Join2(
		Difference(lt, b.left, cmp),
		Difference(gt, b.right, cmp))
}

// Subset reports whether every key of a is a key of b. Values are not
// compared and no result tree is built; a is only cut into probe
// trees that are thrown away.
func Subset[K, V any](a, b *Node[K, V], cmp ordering.Compare[K]) bool {
	switch {
	case a == nil:
		return true
	case b == nil:
		return false
	case a == b:
		return true
	case a.size > b.size:
		return false
	}
	c := cmp(a.key, b.key)
	switch {
	case c < 0:
		return Subset(mk[K, V](black, a.left, a.key, a.value, nil), b.left, cmp) &&
			Subset(a.right, b, cmp)
	case c > 0:
		return Subset(mk[K, V](black, nil, a.key, a.value, a.right), b.right, cmp) &&
			Subset(a.left, b, cmp)
	default:
		return Subset(a.left, b.left, cmp) && Subset(a.right, b.right, cmp)
	}
}

// Filter returns the entries of t satisfying keep. keep is called in
// ascending key order. If every entry is kept t itself is returned.
func Filter[K, V any](t *Node[K, V], keep func(K, V) bool) *Node[K, V] {
	if t == nil {
		return nil
	}
	l := Filter(t.left, keep)
	ok := keep(t.key, t.value)
	r := Filter(t.right, keep)
	switch {
	case !ok:
		return Join2(l, r)
	case l == t.left && r == t.right:
		return t
	default:
		return Join(l, t.key, t.value, r)
	}
}

// Partition splits t into the entries satisfying pred and those that
// do not, in a single in-order pass.
func Partition[K, V any](t *Node[K, V], pred func(K, V) bool) (yes, no *Node[K, V]) {
	if t == nil {
		return nil, nil
	}
	ly, ln := Partition(t.left, pred)
	ok := pred(t.key, t.value)
	ry, rn := Partition(t.right, pred)
	if ok {
		if ly == t.left && ry == t.right {
			return t, Join2(ln, rn)
		}
		return Join(ly, t.key, t.value, ry), Join2(ln, rn)
	}
	if ln == t.left && rn == t.right {
		return Join2(ly, ry), t
	}
	return Join2(ly, ry), Join(ln, t.key, t.value, rn)
}
