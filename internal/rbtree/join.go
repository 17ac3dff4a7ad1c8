package rbtree

import (
	"jsouthworth.net/go/sorted/ordering"
)

// Join returns the tree holding the entries of l, the entry
// (key, value) and the entries of r. Every key of l must order
// before key and every key of r after it. The work done is
// proportional to the difference of the black heights of l and r.
func Join[K, V any](l *Node[K, V], key K, value V, r *Node[K, V]) *Node[K, V] {
	l, r = blacken(l), blacken(r)
	lh, rh := blackHeight(l), blackHeight(r)
	switch {
	case lh > rh:
		t := joinRight(l, key, value, r)
		if isRed(t) && isRed(t.right) {
			return t.with(black, t.left, t.right)
		}
		return t
	case lh < rh:
		t := joinLeft(l, key, value, r)
		if isRed(t) && isRed(t.left) {
			return t.with(black, t.left, t.right)
		}
		return t
	default:
		return mk(red, l, key, value, r)
	}
}

// joinRight walks down the right spine of l to the first black node
// as high as r and hangs r there below a new red node. A red/red
// pair left behind is rotated away one level further up.
func joinRight[K, V any](l *Node[K, V], key K, value V, r *Node[K, V]) *Node[K, V] {
	if colorOf(l) == black && blackHeight(l) == blackHeight(r) {
		return mk(red, l, key, value, r)
	}
	t := l.with(l.color, l.left, joinRight(l.right, key, value, r))
	if l.color == black && isRed(t.right) && isRed(t.right.right) {
		tr, trr := t.right, t.right.right
		return mk(red,
			t.with(black, t.left, tr.left),
			tr.key, tr.value,
			trr.with(black, trr.left, trr.right))
	}
	return t
}

func joinLeft[K, V any](l *Node[K, V], key K, value V, r *Node[K, V]) *Node[K, V] {
	if colorOf(r) == black && blackHeight(r) == blackHeight(l) {
		return mk(red, l, key, value, r)
	}
	t := r.with(r.color, joinLeft(l, key, value, r.left), r.right)
	if r.color == black && isRed(t.left) && isRed(t.left.left) {
		tl, tll := t.left, t.left.left
		return mk(red,
			tll.with(black, tll.left, tll.right),
			tl.key, tl.value,
			t.with(black, tl.right, t.right))
	}
	return t
}

// Join2 concatenates l and r, where every key of l orders before
// every key of r.
func Join2[K, V any](l, r *Node[K, V]) *Node[K, V] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	}
	rest, last := splitLast(l)
	return Join(rest, last.key, last.value, r)
}

func splitLast[K, V any](t *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if t.right == nil {
		return t.left, t
	}
	rest, last := splitLast(t.right)
	return Join(t.left, t.key, t.value, rest), last
}

// Split partitions t around key. It returns the tree of entries
// ordering before key, the node bound to key (nil if key is absent)
// and the tree of entries ordering after key.
func Split[K, V any](t *Node[K, V], key K, cmp ordering.Compare[K]) (lt, found, gt *Node[K, V]) {
	if t == nil {
		return nil, nil, nil
	}
	c := cmp(key, t.key)
	switch {
	case c < 0:
		lt, found, gt = Split(t.left, key, cmp)
		return lt, found, Join(gt, t.key, t.value, t.right)
	case c > 0:
		lt, found, gt = Split(t.right, key, cmp)
		return Join(t.left, t.key, t.value, lt), found, gt
	default:
		return t.left, t, t.right
	}
}
