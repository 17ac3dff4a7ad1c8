package rbtree

import (
	"fmt"
	"sort"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	tp "github.com/xlab/treeprint"

	"jsouthworth.net/go/sorted/ordering"
)

var intCmp = ordering.Natural[int]()

type intTree = *Node[int, struct{}]

func printTree[K, V any](t *Node[K, V]) string {
	p := tp.New()
	ppt(p, t)
	return p.String()
}

func ppt[K, V any](p tp.Tree, t *Node[K, V]) {
	if t == nil {
		return
	}
	label := fmt.Sprintf("%s %v", t.color, t.key)
	if t.left == nil && t.right == nil {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	if t.left == nil {
		branch.AddNode("L")
	} else {
		ppt(branch, t.left)
	}
	if t.right == nil {
		branch.AddNode("L")
	} else {
		ppt(branch, t.right)
	}
}

func keys[K, V any](t *Node[K, V]) []K {
	out := make([]K, 0, Len(t))
	Range(t, func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

func height[K, V any](t *Node[K, V]) int {
	if t == nil {
		return 0
	}
	l, r := height(t.left), height(t.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// rbset pairs a tree with the distinct entries it was built from.
type rbset struct {
	entries []int
	t       intTree
}

func (s *rbset) String() string {
	return fmt.Sprintf("%v, %s", s.entries, s.t)
}

func (s *rbset) sorted() []int {
	out := append([]int(nil), s.entries...)
	sort.Ints(out)
	return out
}

func fromSlice(entries []int) intTree {
	var t intTree
	for _, entry := range entries {
		t = Insert(t, entry, struct{}{}, intCmp, nil)
	}
	return t
}

func makeRBSet(entries []int) *rbset {
	var t intTree
	seen := make(map[int]struct{}, len(entries))
	storedEntries := make([]int, 0, len(entries))
	for _, entry := range entries {
		t = Insert(t, entry, struct{}{}, intCmp, nil)
		if _, ok := seen[entry]; !ok {
			seen[entry] = struct{}{}
			storedEntries = append(storedEntries, entry)
		}
	}
	return &rbset{entries: storedEntries, t: t}
}

func unmakeRBSet(s *rbset) []int {
	return s.entries
}

var genRBSet = gopter.DeriveGen(makeRBSet, unmakeRBSet,
	gen.SliceOfN(100, gen.IntRange(-500, 500)).
		SuchThat(func(sl []int) bool { return len(sl) > 0 }))

// genSmallSet draws from a narrow key range so that two sets overlap.
var genSmallSet = gopter.DeriveGen(makeRBSet, unmakeRBSet,
	gen.SliceOf(gen.IntRange(0, 60)))
