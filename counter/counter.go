// Package counter tallies key sequences, e.g. word n-grams.
package counter

import (
	"io"
	"iter"
	"sort"

	"github.com/aglyzov/go-mktrie/dict"
)

type Counted[K comparable] struct {
	Keys  []K
	Count int
}
type CountedSlice[K comparable] []Counted[K]

// Counter keeps only positive counts: a key whose count drops to zero or
// below after IncBy is removed.
type Counter[K comparable] struct {
	dict dict.Dict[K, int]
}

func InitCounter[K comparable](counter *Counter[K], counted ...Counted[K]) *Counter[K] {
	*counter = Counter[K]{}
	for _, c := range counted {
		counter.IncBy(c.Keys, c.Count)
	}
	return counter
}

func New[K comparable](counted ...Counted[K]) *Counter[K] {
	return InitCounter(&Counter[K]{}, counted...)
}

// Len returns the number of counted key sequences.
func (t *Counter[K]) Len() int {
	return t.dict.Len()
}

// Get returns a count associated with the keys
func (t *Counter[K]) Get(keys []K) (count int) {
	count, _ = t.dict.Get(keys)
	return
}

// Replace applies a func to a previous count of the keys and replaces the value with return value.
// Returns the previous count.
func (t *Counter[K]) Replace(keys []K, replace func(int) int) int {
	return t.dict.Replace(keys, func(prev int, _ bool) int { return replace(prev) })
}

// Set associates a given count with the keys. Returns previous count.
func (t *Counter[K]) Set(keys []K, count int) int {
	return t.Replace(keys, func(int) int { return count })
}

// IncBy increments a count associated with the keys by a given delta and returns it.
func (t *Counter[K]) IncBy(keys []K, delta int) int {
	count := t.Replace(keys, func(prev int) int { return prev + delta }) + delta
	if count <= 0 {
		t.dict.Delete(keys)
	}
	return count
}

// Inc increments a count associated with the keys by 1 and returns it.
func (t *Counter[K]) Inc(keys []K) int {
	return t.IncBy(keys, 1)
}

// Dec decrements a count associated with the keys by 1 and returns it.
func (t *Counter[K]) Dec(keys []K) int {
	return t.IncBy(keys, -1)
}

// Delete removes the keys and returns their count
func (t *Counter[K]) Delete(keys []K) (count int) {
	count, _ = t.dict.Pop(keys)
	return
}

// Merge merges another Counter into this one. Counts of common keys are added up.
// Returns itself.
func (t *Counter[K]) Merge(other *Counter[K]) *Counter[K] {
	if other != nil && other != t {
		for keys, count := range other.All() {
			t.IncBy(keys, count)
		}
	}
	return t
}

// All returns an iterator over the key sequences and their counts in
// traversal order.
func (t *Counter[K]) All() iter.Seq2[[]K, int] {
	return t.dict.All()
}

// Iter calls a handler for every counted key sequence in traversal order.
// It returns whether all of them were iterated.
// The handler can continue the process by returning true or abort with false.
func (t *Counter[K]) Iter(handler func(Counted[K]) bool) bool {
	for keys, count := range t.All() {
		if !handler(Counted[K]{keys, count}) {
			return false
		}
	}
	return true
}

// Keys returns all key sequences in traversal order.
func (t *Counter[K]) Keys() [][]K {
	keys := make([][]K, 0, t.Len())
	for k := range t.dict.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// Counted returns a CountedSlice sorted by count (descending).
// Equal counts keep the traversal order.
func (t *Counter[K]) Counted() CountedSlice[K] {
	pairs := make(CountedSlice[K], 0, t.Len())

	t.Iter(func(c Counted[K]) bool {
		pairs = append(pairs, c)
		return true
	})

	sort.Stable(pairs)

	return pairs
}

// Top returns at most n most frequent key sequences. A negative n returns all.
func (t *Counter[K]) Top(n int) CountedSlice[K] {
	pairs := t.Counted()
	if n >= 0 && n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}

// Total returns the sum of all counts.
func (t *Counter[K]) Total() (total int) {
	for count := range t.dict.Values() {
		total += count
	}
	return
}

// Nodes returns the number of trie nodes backing the counter.
func (t *Counter[K]) Nodes() int {
	return t.dict.Nodes()
}

func (t *Counter[K]) DebugDump(w io.Writer) {
	t.dict.DebugDump(w)
}

// -- CountedSlice sort interface --

func (v CountedSlice[K]) Len() int           { return len(v) }
func (v CountedSlice[K]) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
func (v CountedSlice[K]) Less(i, j int) bool { return v[i].Count > v[j].Count } // inverted logic
