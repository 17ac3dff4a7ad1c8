package rbtree

import (
	"jsouthworth.net/go/sorted/ordering"
)

func isBlackNode[K, V any](t *Node[K, V]) bool {
	return t != nil && !t.isDoubleBlackLeaf() && t.color == black
}

func balance[K, V any](n *Node[K, V]) *Node[K, V] {
	/* The pattern matching version of this is nicer and easy to understand
	 -- Okasaki's original cases:
	balance B (T R (T R a x b) y c) z d = T R (T B a x b) y (T B c z d)
	balance B (T R a x (T R b y c)) z d = T R (T B a x b) y (T B c z d)
	balance B a x (T R (T R b y c) z d) = T R (T B a x b) y (T B c z d)
	balance B a x (T R b y (T R c z d)) = T R (T B a x b) y (T B c z d)

	 -- Six cases for deletion:
	balance BB (T R (T R a x b) y c) z d = T B (T B a x b) y (T B c z d)
	balance BB (T R a x (T R b y c)) z d = T B (T B a x b) y (T B c z d)
	balance BB a x (T R (T R b y c) z d) = T B (T B a x b) y (T B c z d)
	balance BB a x (T R b y (T R c z d)) = T B (T B a x b) y (T B c z d)

	balance BB a x (T NB (T B b y c) z d@(T B _ _ _))
	    = T B (T B a x b) y (balance B c z (redden d))
	balance BB (T NB a@(T B _ _ _) x (T B b y c)) z d
	    = T B (balance B (redden a) x b) y (T B c z d)

	balance color a x b = T color a x b
	*/
	switch n.color {
	case black, doubleBlack:
		c := n.color.addRed()
		if l := n.left; isRed(l) {
			if ll := l.left; isRed(ll) {
				return mk(c,
					ll.with(black, ll.left, ll.right),
					l.key, l.value,
					n.with(black, l.right, n.right))
			}
			if lr := l.right; isRed(lr) {
				return mk(c,
					l.with(black, l.left, lr.left),
					lr.key, lr.value,
					n.with(black, lr.right, n.right))
			}
		}
		if r := n.right; isRed(r) {
			if rl := r.left; isRed(rl) {
				return mk(c,
					n.with(black, n.left, rl.left),
					rl.key, rl.value,
					r.with(black, rl.right, r.right))
			}
			if rr := r.right; isRed(rr) {
				return mk(c,
					n.with(black, n.left, r.left),
					r.key, r.value,
					rr.with(black, rr.left, rr.right))
			}
		}
	}
	if n.color == doubleBlack {
		//a few additional cases for the deletion case.
		if l := n.left; l != nil && l.color == negativeBlack {
			if ll, lr := l.left, l.right; isBlackNode(ll) && isBlackNode(lr) {
				return mk(black,
					balance(l.with(black, redden(ll), lr.left)),
					lr.key, lr.value,
					n.with(black, lr.right, n.right))
			}
		}
		if r := n.right; r != nil && r.color == negativeBlack {
			if rl, rr := r.left, r.right; isBlackNode(rl) && isBlackNode(rr) {
				return mk(black,
					n.with(black, n.left, rl.left),
					rl.key, rl.value,
					balance(r.with(black, rl.right, redden(rr))))
			}
		}
	}
	return n
}

func bubble[K, V any](n *Node[K, V]) *Node[K, V] {
	if isDoubleBlack(n.left) || isDoubleBlack(n.right) {
		return balance(mk(n.color.addBlack(),
			addRed(n.left), n.key, n.value, addRed(n.right)))
	}
	return balance(n)
}

// Insert returns a tree in which key is bound to value. An existing
// binding for key is replaced unless eq is non-nil and reports the old
// and new values equal, in which case t itself is returned.
func Insert[K, V any](t *Node[K, V], key K, value V, cmp ordering.Compare[K], eq func(V, V) bool) *Node[K, V] {
	out := ins(t, key, value, cmp, eq)
	if out == t {
		return t
	}
	return blacken(out)
}

func ins[K, V any](t *Node[K, V], key K, value V, cmp ordering.Compare[K], eq func(V, V) bool) *Node[K, V] {
	if t == nil {
		return mk[K, V](red, nil, key, value, nil)
	}
	c := cmp(key, t.key)
	switch {
	case c < 0:
		left := ins(t.left, key, value, cmp, eq)
		if left == t.left {
			return t
		}
		return balance(t.with(t.color, left, t.right))
	case c > 0:
		right := ins(t.right, key, value, cmp, eq)
		if right == t.right {
			return t
		}
		return balance(t.with(t.color, t.left, right))
	default:
		if eq != nil && eq(t.value, value) {
			return t
		}
		return mk(t.color, t.left, key, value, t.right)
	}
}

// Delete returns a tree without key. When key is absent t itself is
// returned.
func Delete[K, V any](t *Node[K, V], key K, cmp ordering.Compare[K]) *Node[K, V] {
	out := del(t, key, cmp)
	if out == t {
		return t
	}
	return blacken(out)
}

func del[K, V any](t *Node[K, V], key K, cmp ordering.Compare[K]) *Node[K, V] {
	if t == nil {
		return nil
	}
	c := cmp(key, t.key)
	switch {
	case c < 0:
		left := del(t.left, key, cmp)
		if left == t.left {
			return t
		}
		return bubble(t.with(t.color, left, t.right))
	case c > 0:
		right := del(t.right, key, cmp)
		if right == t.right {
			return t
		}
		return bubble(t.with(t.color, t.left, right))
	default:
		return remove(t)
	}
}

func remove[K, V any](n *Node[K, V]) *Node[K, V] {
	l, r := n.left, n.right
	switch {
	case n.color == red && l == nil && r == nil:
		return nil
	case n.color == black && l == nil && r == nil:
		return doubleBlackLeaf[K, V]()
	case n.color == black && l == nil && isRed(r):
		return r.with(black, r.left, r.right)
	case n.color == black && isRed(l) && r == nil:
		return l.with(black, l.left, l.right)
	default:
		m := Max(l)
		return bubble(mk(n.color, removeMax(l), m.key, m.value, r))
	}
}

func removeMax[K, V any](n *Node[K, V]) *Node[K, V] {
	if n.right == nil {
		return remove(n)
	}
	return bubble(n.with(n.color, n.left, removeMax(n.right)))
}
