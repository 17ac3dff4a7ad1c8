package treemap

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"jsouthworth.net/go/sorted/ordering"
)

var strCmp = ordering.Natural[string]()
var intCmp = ordering.Natural[int]()

func BenchmarkPMapAssoc(b *testing.B) {
	b.ReportAllocs()
	m := Empty[int, int](intCmp)
	for i := 0; i < b.N; i++ {
		m = m.Assoc(i, i)
	}
}

func BenchmarkNativeMapAssoc(b *testing.B) {
	b.ReportAllocs()
	m := make(map[int]int)
	for i := 0; i < b.N; i++ {
		m[i] = i
	}
}

func TestEmptyRequiresCompare(t *testing.T) {
	require.PanicsWithValue(t, ordering.ErrNoCompare, func() {
		Empty[int, int](nil)
	})
}

func TestScenario(t *testing.T) {
	m := Empty[int, string](intCmp).
		Assoc(3, "c").
		Assoc(1, "a").
		Assoc(2, "b")
	require.Equal(t, []int{1, 2, 3}, m.Keys())
	v, err := m.Find(2)
	require.NoError(t, err)
	require.Equal(t, "b", v)

	m2 := m.Delete(2)
	require.False(t, m2.Contains(2))
	require.Equal(t, []int{1, 3}, m2.Keys())
	require.True(t, m.Contains(2), "original map must be unaffected")
	require.NoError(t, m2.Validate())
}

func TestNotFound(t *testing.T) {
	m := Empty[int, string](intCmp)
	_, err := m.Find(1)
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = m.Min()
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = m.Max()
	require.True(t, errors.Is(err, ErrNotFound))
	_, err = m.Choose()
	require.True(t, errors.Is(err, ErrNotFound))

	_, err = m.Assoc(2, "b").Find(1)
	require.True(t, errors.Is(err, ErrNotFound))
	require.Equal(t, "", m.At(1))
}

func TestNew(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("New produces expected map", prop.ForAll(
		func(keys, values []string) bool {
			entries := make([]Entry[string, string], 0, len(keys))
			exp := make(map[string]string)
			for i := 0; i < len(keys) && i < len(values); i++ {
				entries = append(entries, EntryNew(keys[i], values[i]))
				exp[keys[i]] = values[i]
			}
			m := New(strCmp, entries...)
			if m.Length() != len(exp) {
				return false
			}
			for key, val := range exp {
				if m.At(key) != val {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Identifier()),
	))
	properties.Property("FromMap builds correct map", prop.ForAll(
		func(in map[string]int) bool {
			m := FromMap(strCmp, in)
			for k, v := range in {
				if m.At(k) != v {
					return false
				}
			}
			return m.Length() == len(in)
		},
		gen.MapOf(gen.Identifier(), gen.Int()),
	))
	properties.TestingRun(t)
}

func TestAt(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("ForAll generatedEntries random.At(entry.k)==entry.v", prop.ForAll(
		func(rm *rmap) bool {
			for key, val := range rm.entries {
				if val != rm.m.At(key) {
					return false
				}
			}
			return true
		},
		genRandomMap,
	))
	properties.Property("Non-existent keys don't exist in map", prop.ForAll(
		func(rm *rmap, key string) bool {
			_, inEntries := rm.entries[key]
			_, inMap := rm.m.Lookup(key)
			_, err := rm.m.Find(key)
			return inEntries == inMap && inMap == (err == nil) && inMap == rm.m.Contains(key)
		},
		genRandomMap,
		gen.Identifier(),
	))
	properties.TestingRun(t)
}

func TestAssoc(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("new=large.Assoc(k, v) -> new.At(k)==v", prop.ForAll(
		func(lm *lmap, k, v string) bool {
			new := lm.m.Assoc(k, v)
			got, err := new.Find(k)
			return err == nil && got == v && new.Validate() == nil
		},
		genLargeMap,
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.Property("new=large.Assoc(k, v) -> new.At(k2)==large.At(k2)", prop.ForAll(
		func(lm *lmap, k, v string, i int) bool {
			k2 := lm.k + strconv.Itoa(i%lm.num)
			if k2 == k {
				return true
			}
			new := lm.m.Assoc(k, v)
			a, errA := new.Find(k2)
			b, errB := lm.m.Find(k2)
			return a == b && (errA == nil) == (errB == nil)
		},
		genLargeMap,
		gen.Identifier(),
		gen.Identifier(),
		gen.IntRange(0, 1000),
	))
	properties.Property("one=m.Assoc(k, v1); two=one.Assoc(k, v2) -> one.At(k)!=two.At(k)", prop.ForAll(
		func(lm *lmap, k, v1, v2 string) bool {
			one := lm.m.Assoc(k, v1)
			two := one.Assoc(k, v2)
			return v1 == v2 || (one.At(k) == v1 && two.At(k) == v2 && one.Length() == two.Length())
		},
		genLargeMap,
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.Property("with Equal: one=m.Assoc(k, v); two=one.Assoc(k, v) -> one==two", prop.ForAll(
		func(k, v string) bool {
			m := Empty[string, string](strCmp, Equal(func(a, b string) bool { return a == b }))
			one := m.Assoc(k, v)
			two := one.Assoc(k, v)
			return one == two
		},
		gen.Identifier(),
		gen.Identifier(),
	))
	properties.TestingRun(t)
}

func TestDelete(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("new=large.Delete(k) -> !new.Contains(k) && large.Contains(k)", prop.ForAll(
		func(lm *lmap) bool {
			key := lm.k + strconv.Itoa(lm.num-1)
			new := lm.m.Delete(key)
			return !new.Contains(key) &&
				lm.m.Contains(key) &&
				new.Length() == lm.m.Length()-1 &&
				new.Validate() == nil
		},
		genLargeMap,
	))
	properties.Property("Delete of an absent key returns the same map", prop.ForAll(
		func(rm *rmap, key string) bool {
			if _, ok := rm.entries[key]; ok {
				return true
			}
			return rm.m.Delete(key) == rm.m
		},
		genRandomMap,
		gen.Identifier(),
	))
	properties.Property("Deleting every key yields the empty map", prop.ForAll(
		func(rm *rmap) bool {
			m := rm.m
			for key := range rm.entries {
				m = m.Delete(key)
				if m.Validate() != nil {
					return false
				}
			}
			return m.IsEmpty() && m.Length() == 0
		},
		genRandomMap,
	))
	properties.TestingRun(t)
}

func TestTraversal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("Fold visits keys in ascending order", prop.ForAll(
		func(rm *rmap) bool {
			got := Fold(rm.m, func(k, _ string, acc []string) []string {
				return append(acc, k)
			}, nil)
			return fmt.Sprint(got) == fmt.Sprint(rm.sortedKeys())
		},
		genRandomMap,
	))
	properties.Property("Each visits keys in ascending order", prop.ForAll(
		func(rm *rmap) bool {
			var got []string
			rm.m.Each(func(k, _ string) {
				got = append(got, k)
			})
			return fmt.Sprint(got) == fmt.Sprint(rm.sortedKeys())
		},
		genRandomMap,
	))
	properties.Property("MapValues transforms every value", prop.ForAll(
		func(rm *rmap) bool {
			lens := MapValues(rm.m, func(v string) int { return len(v) })
			for k, v := range rm.entries {
				if lens.At(k) != len(v) {
					return false
				}
			}
			return lens.Length() == rm.m.Length() && lens.Validate() == nil
		},
		genRandomMap,
	))
	properties.Property("MapWithKey sees keys in order", prop.ForAll(
		func(rm *rmap) bool {
			var seen []string
			joined := MapWithKey(rm.m, func(k, v string) string {
				seen = append(seen, k)
				return k + v
			})
			for k, v := range rm.entries {
				if joined.At(k) != k+v {
					return false
				}
			}
			return fmt.Sprint(seen) == fmt.Sprint(rm.sortedKeys())
		},
		genRandomMap,
	))
	properties.TestingRun(t)
}

func TestRange(t *testing.T) {
	m := New(intCmp,
		EntryNew(1, 1), EntryNew(2, 2), EntryNew(3, 3),
		EntryNew(4, 4), EntryNew(5, 5))
	var got int
	m.Range(func(k, v int) bool {
		got += k + v
		return k < 3
	})
	require.Equal(t, 12, got)
	require.True(t, m.ForAll(func(k, v int) bool { return k == v }))
	require.True(t, m.Exists(func(k, _ int) bool { return k == 4 }))
	require.False(t, m.Exists(func(k, _ int) bool { return k == 9 }))
}

func TestSplitAndUnion(t *testing.T) {
	m := New(intCmp,
		EntryNew(1, "a"), EntryNew(2, "b"), EntryNew(3, "c"), EntryNew(4, "d"))
	lt, v, ok, gt := m.Split(2)
	require.True(t, ok)
	require.Equal(t, "b", v)
	require.Equal(t, []int{1}, lt.Keys())
	require.Equal(t, []int{3, 4}, gt.Keys())

	_, _, ok, _ = m.Split(7)
	require.False(t, ok)

	other := New(intCmp, EntryNew(4, "D"), EntryNew(5, "E"))
	u := m.Union(other, nil)
	require.Equal(t, []string{"a", "b", "c", "D", "E"}, u.Values())
	u = m.Union(other, func(_ int, mine, theirs string) string { return mine + theirs })
	require.Equal(t, "dD", u.At(4))
	require.NoError(t, u.Validate())
}

func TestFilterPartition(t *testing.T) {
	m := Empty[int, string](intCmp)
	for i := 0; i < 20; i++ {
		m = m.Assoc(i, strconv.Itoa(i))
	}
	even := func(k int, _ string) bool { return k%2 == 0 }
	f := m.Filter(even)
	require.Equal(t, 10, f.Length())
	yes, no := m.Partition(even)
	require.Equal(t, f.Keys(), yes.Keys())
	require.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, no.Keys())
	require.NoError(t, yes.Validate())
	require.NoError(t, no.Validate())
}

func TestMinMax(t *testing.T) {
	m := New(strCmp, EntryNew("b", 2), EntryNew("a", 1), EntryNew("c", 3))
	min, err := m.Min()
	require.NoError(t, err)
	require.Equal(t, EntryNew("a", 1), min)
	max, err := m.Max()
	require.NoError(t, err)
	require.Equal(t, EntryNew("c", 3), max)
	chosen, err := m.Choose()
	require.NoError(t, err)
	other, _ := New(strCmp, EntryNew("c", 3), EntryNew("a", 1), EntryNew("b", 2)).Choose()
	require.Equal(t, chosen, other)
}

func TestEqualCompare(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	a := New(intCmp, EntryNew(1, 10), EntryNew(2, 20))
	b := New(intCmp, EntryNew(2, 20), EntryNew(1, 10))
	c := New(intCmp, EntryNew(1, 10), EntryNew(2, 21))
	require.True(t, a.Equal(b, eq))
	require.False(t, a.Equal(c, eq))
	require.False(t, a.Equal(a.Delete(1), eq))
	require.Equal(t, 0, a.Compare(b, intCmp))
	require.Equal(t, -1, a.Compare(c, intCmp))
	require.Equal(t, 1, a.Compare(a.Delete(2), intCmp))
}

type lmap struct {
	num  int
	k, v string
	m    *Map[string, string]
}

func makeLargeMap(num int, k, v string) *lmap {
	m := Empty[string, string](strCmp)
	for i := 0; i < num; i++ {
		m = m.Assoc(k+strconv.Itoa(i), v+strconv.Itoa(i))
	}
	return &lmap{
		num: num,
		k:   k,
		v:   v,
		m:   m,
	}
}

func unmakeLargeMap(lm *lmap) (num int, k, v string) {
	return lm.num, lm.k, lm.v
}

var genLargeMap = gopter.DeriveGen(makeLargeMap, unmakeLargeMap,
	gen.IntRange(10, 100),
	gen.Identifier(),
	gen.Identifier(),
)

type rmap struct {
	entries map[string]string
	m       *Map[string, string]
}

func (r *rmap) sortedKeys() []string {
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func makeRandomMap(entries map[string]string) *rmap {
	m := Empty[string, string](strCmp)
	for key, val := range entries {
		m = m.Assoc(key, val)
	}
	return &rmap{
		entries: entries,
		m:       m,
	}
}

func unmakeRandomMap(r *rmap) map[string]string {
	return r.entries
}

var genRandomMap = gopter.DeriveGen(makeRandomMap, unmakeRandomMap,
	gen.MapOf(gen.Identifier(), gen.Identifier()),
)
