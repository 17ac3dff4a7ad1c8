package treemap // import "jsouthworth.net/go/sorted/treemap"

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

// ErrNotFound is returned when a key is absent or a map is empty.
const ErrNotFound = Error("not found")

// Entry is a map entry. Each entry consists of a key and value.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// EntryNew returns an Entry.
func EntryNew[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.Key, e.Value)
}

// Map is a persistent immutable map based on Red/Black
// trees. Operations on map returns a new map that shares much of the
// structure with the original map.
type Map[K, V any] struct {
	root *rbtree.Node[K, V]
	cmp  ordering.Compare[K]
	eq   func(V, V) bool
}

type mapOptions[V any] struct {
	equal func(V, V) bool
}

// Option is a type that allows changes to pluggable parts of the
// Map implementation.
type Option[V any] func(*mapOptions[V])

// Equal is an option to the Empty function that supplies an equality
// operator for values. With it, Assoc of a key already bound to an
// equal value returns the original map instead of a copy.
func Equal[V any](eq func(v1, v2 V) bool) Option[V] {
	return func(o *mapOptions[V]) {
		o.equal = eq
	}
}

// Empty returns a new empty persistent map ordered by cmp, one may
// supply options for the map by using one of the option generating
// functions and providing that to Empty. Empty panics if cmp is nil.
func Empty[K, V any](cmp ordering.Compare[K], options ...Option[V]) *Map[K, V] {
	var opts mapOptions[V]
	for _, opt := range options {
		opt(&opts)
	}
	return &Map[K, V]{
		cmp: ordering.Must(cmp),
		eq:  opts.equal,
	}
}

// New returns a map ordered by cmp holding the given entries. Later
// entries win over earlier ones with an equal key.
func New[K, V any](cmp ordering.Compare[K], entries ...Entry[K, V]) *Map[K, V] {
	out := Empty[K, V](cmp)
	for _, entry := range entries {
		out = out.Assoc(entry.Key, entry.Value)
	}
	return out
}

// FromMap converts a go native map to a persistent map ordered by cmp.
func FromMap[K comparable, V any](cmp ordering.Compare[K], m map[K]V) *Map[K, V] {
	out := Empty[K, V](cmp)
	for key, value := range m {
		out = out.Assoc(key, value)
	}
	return out
}

// Singleton returns a map ordered by cmp holding only key bound to value.
func Singleton[K, V any](cmp ordering.Compare[K], key K, value V) *Map[K, V] {
	return Empty[K, V](cmp).Assoc(key, value)
}

func (m *Map[K, V]) with(root *rbtree.Node[K, V]) *Map[K, V] {
	if root == m.root {
		return m
	}
	return &Map[K, V]{
		root: root,
		cmp:  m.cmp,
		eq:   m.eq,
	}
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Length returns the number of entries in the map.
func (m *Map[K, V]) Length() int {
	return rbtree.Len(m.root)
}

// At returns the value associated with the key.
// If one is not found, the zero value is returned.
func (m *Map[K, V]) At(key K) V {
	value, _ := m.Lookup(key)
	return value
}

// Lookup will return the value for a key if it exists in the map and
// whether the key exists in the map.
func (m *Map[K, V]) Lookup(key K) (value V, exists bool) {
	n := rbtree.Get(m.root, key, m.cmp)
	if n == nil {
		return value, false
	}
	return n.Value(), true
}

// Find returns the value bound to key. If the key is absent the
// returned error wraps ErrNotFound.
func (m *Map[K, V]) Find(key K) (V, error) {
	value, ok := m.Lookup(key)
	if !ok {
		return value, fmt.Errorf("treemap: key %v: %w", key, ErrNotFound)
	}
	return value, nil
}

// Contains will test if the key exists in the map.
func (m *Map[K, V]) Contains(key K) bool {
	return rbtree.Contains(m.root, key, m.cmp)
}

// Assoc associates a value with a key in the map. A binding
// already present for the key is replaced. If the map was created
// with the Equal option and the key is already bound to an equal
// value the original map is returned.
func (m *Map[K, V]) Assoc(key K, value V) *Map[K, V] {
	return m.with(rbtree.Insert(m.root, key, value, m.cmp, m.eq))
}

// Delete removes a key and associated value from the map. Deleting
// an absent key returns the original map.
func (m *Map[K, V]) Delete(key K) *Map[K, V] {
	return m.with(rbtree.Delete(m.root, key, m.cmp))
}

// Min returns the entry with the smallest key. The error wraps
// ErrNotFound when the map is empty.
func (m *Map[K, V]) Min() (Entry[K, V], error) {
	return m.entryOf(rbtree.Min(m.root), "Min")
}

// Max returns the entry with the largest key. The error wraps
// ErrNotFound when the map is empty.
func (m *Map[K, V]) Max() (Entry[K, V], error) {
	return m.entryOf(rbtree.Max(m.root), "Max")
}

// Choose returns one entry of the map. Equal maps choose equal
// entries; currently this is the entry with the smallest key.
func (m *Map[K, V]) Choose() (Entry[K, V], error) {
	return m.entryOf(rbtree.Min(m.root), "Choose")
}

func (m *Map[K, V]) entryOf(n *rbtree.Node[K, V], op string) (Entry[K, V], error) {
	if n == nil {
		return Entry[K, V]{}, fmt.Errorf("treemap: %s of empty map: %w", op, ErrNotFound)
	}
	return Entry[K, V]{Key: n.Key(), Value: n.Value()}, nil
}

// Split returns the map of entries with keys before key, the value
// bound to key and whether it was present, and the map of entries
// with keys after key.
func (m *Map[K, V]) Split(key K) (lt *Map[K, V], value V, present bool, gt *Map[K, V]) {
	l, found, r := rbtree.Split(m.root, key, m.cmp)
	if found != nil {
		value, present = found.Value(), true
	}
	return m.with(l), value, present, m.with(r)
}

// Union returns the map of all entries of m and other. When both
// bind a key, resolve chooses the value; a nil resolve takes the value
// from other.
func (m *Map[K, V]) Union(other *Map[K, V], resolve func(key K, mine, theirs V) V) *Map[K, V] {
	return m.with(rbtree.Union(m.root, other.root, m.cmp, resolve))
}

// Filter returns the map of the entries for which keep returns true.
func (m *Map[K, V]) Filter(keep func(key K, value V) bool) *Map[K, V] {
	return m.with(rbtree.Filter(m.root, keep))
}

// Partition returns the map of the entries satisfying pred and the
// map of the remaining entries.
func (m *Map[K, V]) Partition(pred func(key K, value V) bool) (yes, no *Map[K, V]) {
	y, n := rbtree.Partition(m.root, pred)
	return m.with(y), m.with(n)
}

// Range will loop over the entries in the Map in ascending key order
// and call 'do' on each entry until it returns false.
func (m *Map[K, V]) Range(do func(key K, value V) bool) {
	rbtree.Range(m.root, do)
}

// Each calls do on every entry in ascending key order.
func (m *Map[K, V]) Each(do func(key K, value V)) {
	rbtree.Range(m.root, func(key K, value V) bool {
		do(key, value)
		return true
	})
}

// ForAll reports whether pred holds for every entry.
func (m *Map[K, V]) ForAll(pred func(key K, value V) bool) bool {
	return rbtree.Range(m.root, pred)
}

// Exists reports whether pred holds for some entry.
func (m *Map[K, V]) Exists(pred func(key K, value V) bool) bool {
	return !rbtree.Range(m.root, func(key K, value V) bool {
		return !pred(key, value)
	})
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Length())
	m.Each(func(key K, _ V) {
		out = append(out, key)
	})
	return out
}

// Values returns the values in ascending order of their keys.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.Length())
	m.Each(func(_ K, value V) {
		out = append(out, value)
	})
	return out
}

// Entries returns the entries in ascending key order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, m.Length())
	m.Each(func(key K, value V) {
		out = append(out, Entry[K, V]{Key: key, Value: value})
	})
	return out
}

// Seq returns a seralized sequence of Entry
// corresponding to the maps entries.
func (m *Map[K, V]) Seq() seq.Sequence {
	return rbtree.Seq(m.root, func(n *rbtree.Node[K, V]) interface{} {
		return Entry[K, V]{Key: n.Key(), Value: n.Value()}
	})
}

// String returns a string representation of the map.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	m.Each(func(key K, value V) {
		fmt.Fprintf(&b, "[%v %v] ", key, value)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// Equal tests if two maps hold the same keys with values equal under
// eq. Maps of different length are unequal without visiting entries.
func (m *Map[K, V]) Equal(other *Map[K, V], eq func(v1, v2 V) bool) bool {
	return rbtree.EqualTrees(m.root, other.root, m.cmp, eq)
}

// Compare orders two maps lexicographically by their entries in
// ascending key order, comparing keys first and then values with
// cmp. A map that is a proper prefix of the other orders first.
func (m *Map[K, V]) Compare(other *Map[K, V], cmp func(v1, v2 V) int) int {
	return rbtree.CompareTrees(m.root, other.root, m.cmp, cmp)
}

// Validate checks the internal invariants of the map's tree.
func (m *Map[K, V]) Validate() error {
	return rbtree.Verify(m.root, m.cmp)
}

// Fold threads init through fn over the entries of m in ascending
// key order: the smallest key is folded first.
func Fold[K, V, A any](m *Map[K, V], fn func(key K, value V, acc A) A, init A) A {
	return rbtree.Fold(m.root, fn, init)
}

// MapValues returns a map with the same keys as m and every value
// replaced by fn(value). The new map has the same shape as m.
func MapValues[K, V, W any](m *Map[K, V], fn func(value V) W) *Map[K, W] {
	return MapWithKey(m, func(_ K, value V) W {
		return fn(value)
	})
}

// MapWithKey is MapValues with the key passed to fn as well.
func MapWithKey[K, V, W any](m *Map[K, V], fn func(key K, value V) W) *Map[K, W] {
	return &Map[K, W]{
		root: rbtree.MapValues(m.root, fn),
		cmp:  m.cmp,
	}
}
