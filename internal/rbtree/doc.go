// Package rbtree implements the persistent Red/Black tree that backs
// both treemap and treeset. Insertion follows Okasaki's persistent
// Red/Black tree and deletion Germane and Might's extension. See:
// http://www.eecs.usma.edu/webs/people/okasaki/jfp99.ps and
// http://matt.might.net/papers/germane2014deletion.pdf for details.
//
// Split, join and the set operations built on them follow Blelloch,
// Ferizovic and Sun, "Just Join for Parallel Ordered Sets"
// (https://arxiv.org/abs/1602.02120).
//
// A tree is a *Node; the nil pointer is the empty tree. Nodes are never
// modified once constructed, every edit returns a new root sharing all
// untouched subtrees with its input.
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sorted.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("sorted.rbtree")
}
