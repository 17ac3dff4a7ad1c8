package rbtree

import (
	"fmt"

	"jsouthworth.net/go/sorted/ordering"
)

// Error is the error type of this package.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrInvalid is wrapped by every error Verify returns.
const ErrInvalid = Error("invalid red/black tree")

// Verify checks every structural invariant of t: keys strictly
// ascending under cmp, no red node with a red child, the same black
// height on every path, only red and black nodes, and cached sizes
// and black heights matching the subtrees. Violations are traced.
func Verify[K, V any](t *Node[K, V], cmp ordering.Compare[K]) error {
	_, err := verify(t, cmp, nil, nil)
	if err != nil {
		tracer().Errorf("rbtree: %v", err)
	}
	return err
}

// verify returns the black height of t. lo and hi bound the keys t may
// hold.
func verify[K, V any](t *Node[K, V], cmp ordering.Compare[K], lo, hi *Node[K, V]) (int, error) {
	if t == nil {
		return 0, nil
	}
	switch {
	case t.isDoubleBlackLeaf():
		return 0, fmt.Errorf("%w: stray double black leaf", ErrInvalid)
	case t.color != red && t.color != black:
		return 0, fmt.Errorf("%w: node %v has color %s", ErrInvalid, t.key, t.color)
	case lo != nil && cmp(lo.key, t.key) >= 0:
		return 0, fmt.Errorf("%w: key %v not after %v", ErrInvalid, t.key, lo.key)
	case hi != nil && cmp(t.key, hi.key) >= 0:
		return 0, fmt.Errorf("%w: key %v not before %v", ErrInvalid, t.key, hi.key)
	case t.color == red && (isRed(t.left) || isRed(t.right)):
		return 0, fmt.Errorf("%w: red node %v has a red child", ErrInvalid, t.key)
	}
	lh, err := verify(t.left, cmp, lo, t)
	if err != nil {
		return 0, err
	}
	rh, err := verify(t.right, cmp, t, hi)
	if err != nil {
		return 0, err
	}
	h := lh + t.color.weight()
	switch {
	case lh != rh:
		return 0, fmt.Errorf("%w: node %v has black heights %d and %d", ErrInvalid, t.key, lh, rh)
	case t.bh != h:
		return 0, fmt.Errorf("%w: node %v caches black height %d, is %d", ErrInvalid, t.key, t.bh, h)
	case t.size != Len(t.left)+Len(t.right)+1:
		return 0, fmt.Errorf("%w: node %v caches size %d, is %d", ErrInvalid, t.key, t.size,
			Len(t.left)+Len(t.right)+1)
	}
	return h, nil
}
