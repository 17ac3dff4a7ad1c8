package rbtree

import (
	"fmt"
)

// Node is a node of a persistent Red/Black tree. A nil *Node is the
// empty tree. The payload V is struct{} for sets.
type Node[K, V any] struct {
	color color
	size  int
	bh    int
	left  *Node[K, V]
	key   K
	value V
	right *Node[K, V]
}

// mk is the only way nodes are built: size and black height are
// always derived from the children, never carried over from an
// edited node.
func mk[K, V any](c color, l *Node[K, V], key K, value V, r *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		color: c,
		size:  Len(l) + Len(r) + 1,
		bh:    blackHeight(l) + c.weight(),
		left:  l,
		key:   key,
		value: value,
		right: r,
	}
}

// with rebuilds n with a new color and children, keeping its entry.
func (n *Node[K, V]) with(c color, l, r *Node[K, V]) *Node[K, V] {
	return mk(c, l, n.key, n.value, r)
}

// doubleBlackLeaf is the transient empty tree carrying an extra black
// produced while deleting. It is told apart from real nodes by its
// zero size and never escapes Delete.
func doubleBlackLeaf[K, V any]() *Node[K, V] {
	return &Node[K, V]{color: doubleBlack, bh: 1}
}

func (n *Node[K, V]) isDoubleBlackLeaf() bool {
	return n != nil && n.size == 0
}

// Key returns the key stored at n.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value stored at n.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Left returns the left subtree of n.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right subtree of n.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// IsRed reports whether n is a red node.
func (n *Node[K, V]) IsRed() bool {
	return n != nil && n.color == red
}

func (n *Node[K, V]) String() string {
	if n == nil {
		return "L"
	}
	if n.isDoubleBlackLeaf() {
		return "BBL"
	}
	return fmt.Sprintf("({%s [%v %v]} %s %s)", n.color, n.key, n.value, n.left, n.right)
}

// Len returns the number of entries in t in constant time.
func Len[K, V any](t *Node[K, V]) int {
	if t == nil {
		return 0
	}
	return t.size
}

// BlackHeight returns the number of black nodes on every path from
// the root of t down to an empty leaf.
func BlackHeight[K, V any](t *Node[K, V]) int {
	return blackHeight(t)
}

func blackHeight[K, V any](t *Node[K, V]) int {
	if t == nil {
		return 0
	}
	return t.bh
}

func colorOf[K, V any](t *Node[K, V]) color {
	if t == nil {
		return black
	}
	return t.color
}

func isRed[K, V any](t *Node[K, V]) bool {
	return t != nil && t.color == red
}

func isDoubleBlack[K, V any](t *Node[K, V]) bool {
	return t != nil && t.color == doubleBlack
}

func blacken[K, V any](t *Node[K, V]) *Node[K, V] {
	switch {
	case t == nil, t.isDoubleBlackLeaf():
		return nil
	case t.color == black:
		return t
	default:
		return t.with(black, t.left, t.right)
	}
}

func redden[K, V any](t *Node[K, V]) *Node[K, V] {
	return t.with(red, t.left, t.right)
}

func addRed[K, V any](t *Node[K, V]) *Node[K, V] {
	switch {
	case t == nil:
		panic("rbtree: addRed on an empty tree")
	case t.isDoubleBlackLeaf():
		return nil
	default:
		return t.with(t.color.addRed(), t.left, t.right)
	}
}
