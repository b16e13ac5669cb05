// Package set implements a set of key sequences.
package set

import (
	"iter"

	"github.com/aglyzov/go-mktrie/dict"
)

type Set[K comparable] struct {
	dict dict.Dict[K, bool]
}

func InitSet[K comparable](set *Set[K], keys ...[]K) *Set[K] {
	*set = Set[K]{}
	for _, k := range keys {
		set.Add(k)
	}
	return set
}

func New[K comparable](keys ...[]K) *Set[K] {
	return InitSet(&Set[K]{}, keys...)
}

// Len returns the number of key sequences in the set.
func (s *Set[K]) Len() int {
	return s.dict.Len()
}

// Add adds the keys to the set. Returns the set itself.
// Like dict.Dict.Set it panics on an element that cannot be compared.
func (s *Set[K]) Add(keys []K) *Set[K] {
	s.dict.Set(keys, true)
	return s
}

func (s *Set[K]) Has(keys []K) bool {
	return s.dict.Has(keys)
}

// Delete removes the keys and returns whether Has would have reported them.
func (s *Set[K]) Delete(keys []K) bool {
	return s.dict.Delete(keys)
}

func (s *Set[K]) Clear() {
	s.dict.Clear()
}

// All returns an iterator over the key sequences of the set.
func (s *Set[K]) All() iter.Seq[[]K] {
	return s.dict.Keys()
}

// Keys is the same as All.
func (s *Set[K]) Keys() iter.Seq[[]K] {
	return s.All()
}

// Values is the same as All: the value of a set member is its own key.
func (s *Set[K]) Values() iter.Seq[[]K] {
	return s.All()
}

// Entries returns an iterator over (keys, keys) pairs.
func (s *Set[K]) Entries() iter.Seq2[[]K, []K] {
	return func(yield func([]K, []K) bool) {
		for keys := range s.All() {
			if !yield(keys, keys) {
				return
			}
		}
	}
}

// ForEach calls fn for every member, passing its keys twice.
func (s *Set[K]) ForEach(fn func(val, keys []K, set *Set[K])) {
	for keys := range s.All() {
		fn(keys, keys, s)
	}
}

// Slice returns all members in iteration order.
func (s *Set[K]) Slice() [][]K {
	res := make([][]K, 0, s.Len())
	for keys := range s.All() {
		res = append(res, keys)
	}
	return res
}
