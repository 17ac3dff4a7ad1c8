package rbtree

import (
	"jsouthworth.net/go/sorted/ordering"
)

// Get returns the node bound to key, or nil.
func Get[K, V any](t *Node[K, V], key K, cmp ordering.Compare[K]) *Node[K, V] {
	for t != nil {
		c := cmp(key, t.key)
		switch {
		case c < 0:
			t = t.left
		case c > 0:
			t = t.right
		default:
			return t
		}
	}
	return nil
}

// Contains reports whether key is bound in t.
func Contains[K, V any](t *Node[K, V], key K, cmp ordering.Compare[K]) bool {
	return Get(t, key, cmp) != nil
}

// Min returns the node with the smallest key, or nil for the empty tree.
func Min[K, V any](t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return nil
	}
	for t.left != nil {
		t = t.left
	}
	return t
}

// Max returns the node with the largest key, or nil for the empty tree.
func Max[K, V any](t *Node[K, V]) *Node[K, V] {
	if t == nil {
		return nil
	}
	for t.right != nil {
		t = t.right
	}
	return t
}

// Range calls do on each entry in ascending key order until do
// returns false. It reports whether the whole tree was visited.
func Range[K, V any](t *Node[K, V], do func(K, V) bool) bool {
	if t == nil {
		return true
	}
	return Range(t.left, do) &&
		do(t.key, t.value) &&
		Range(t.right, do)
}

// Fold threads acc through fn over the entries of t, smallest key
// first.
func Fold[K, V, A any](t *Node[K, V], fn func(K, V, A) A, acc A) A {
	if t == nil {
		return acc
	}
	acc = Fold(t.left, fn, acc)
	acc = fn(t.key, t.value, acc)
	return Fold(t.right, fn, acc)
}

// MapValues returns a tree of the same shape as t with every value
// replaced by fn(key, value). Keys do not move, so the balancing
// metadata is copied as is. fn is called in ascending key order.
func MapValues[K, V, W any](t *Node[K, V], fn func(K, V) W) *Node[K, W] {
	if t == nil {
		return nil
	}
	l := MapValues(t.left, fn)
	w := fn(t.key, t.value)
	r := MapValues(t.right, fn)
	return &Node[K, W]{
		color: t.color,
		size:  t.size,
		bh:    t.bh,
		left:  l,
		key:   t.key,
		value: w,
		right: r,
	}
}

// Iterator walks a tree in ascending key order. Iterators are
// mutable and must not be shared between goroutines; the tree they
// walk may be.
type Iterator[K, V any] struct {
	stack []*Node[K, V]
}

// NewIterator returns an iterator positioned before the smallest key
// of t.
func NewIterator[K, V any](t *Node[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{
		stack: make([]*Node[K, V], 0, 2*blackHeight(t)+1),
	}
	it.pushLeft(t)
	return it
}

func (it *Iterator[K, V]) pushLeft(t *Node[K, V]) {
	for ; t != nil; t = t.left {
		it.stack = append(it.stack, t)
	}
}

// HasNext reports whether Next has another node to return.
func (it *Iterator[K, V]) HasNext() bool {
	return len(it.stack) > 0
}

// Next returns the next node in key order.
func (it *Iterator[K, V]) Next() *Node[K, V] {
	last := len(it.stack) - 1
	n := it.stack[last]
	it.stack = it.stack[:last]
	it.pushLeft(n.right)
	return n
}

// CompareTrees orders a and b lexicographically over their ascending
// entries. Keys are compared with cmp, and values of equal keys with
// cmpValue unless it is nil. A proper prefix orders first.
func CompareTrees[K, V any](a, b *Node[K, V], cmp ordering.Compare[K], cmpValue func(V, V) int) int {
	if a == b {
		return 0
	}
	ia, ib := NewIterator(a), NewIterator(b)
	for ia.HasNext() && ib.HasNext() {
		na, nb := ia.Next(), ib.Next()
		if c := cmp(na.key, nb.key); c != 0 {
			return c
		}
		if cmpValue != nil {
			if c := cmpValue(na.value, nb.value); c != 0 {
				return c
			}
		}
	}
	switch {
	case ia.HasNext():
		return 1
	case ib.HasNext():
		return -1
	default:
		return 0
	}
}

// EqualTrees reports whether a and b hold the same keys, and, when eq
// is non-nil, equal values for each key.
func EqualTrees[K, V any](a, b *Node[K, V], cmp ordering.Compare[K], eq func(V, V) bool) bool {
	switch {
	case a == b:
		return true
	case Len(a) != Len(b):
		return false
	}
	ia, ib := NewIterator(a), NewIterator(b)
	for ia.HasNext() {
		na, nb := ia.Next(), ib.Next()
		if cmp(na.key, nb.key) != 0 {
			return false
		}
		if eq != nil && !eq(na.value, nb.value) {
			return false
		}
	}
	return true
}
