package rbtree

import (
	"jsouthworth.net/go/seq"
)

type sequence[K, V any] struct {
	list    seq.Sequence
	project func(*Node[K, V]) interface{}
}

// Seq returns a lazy persistent sequence over t in ascending key
// order, yielding project(node) for each node. The empty tree yields
// a nil sequence.
func Seq[K, V any](t *Node[K, V], project func(*Node[K, V]) interface{}) seq.Sequence {
	list := sequencePush(t, nil)
	if list == nil {
		return nil
	}
	return &sequence[K, V]{list: list, project: project}
}

func sequencePush[K, V any](t *Node[K, V], s seq.Sequence) seq.Sequence {
	list := s
	for ; t != nil; t = t.left {
		list = seq.Cons(t, list)
	}
	return list
}

func (s *sequence[K, V]) First() interface{} {
	return s.project(s.list.First().(*Node[K, V]))
}

func (s *sequence[K, V]) Next() seq.Sequence {
	t := s.list.First().(*Node[K, V])
	next := sequencePush(t.right, s.list.Next())
	if next == nil {
		return nil
	}
	return &sequence[K, V]{list: next, project: s.project}
}

func (s *sequence[K, V]) String() string {
	return seq.ConvertToString(s)
}
