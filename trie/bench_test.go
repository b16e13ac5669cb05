package trie

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

// mapEdges is an unordered child table used as a baseline.
type mapEdges[K comparable, V any] map[K]*Node[K, V]

func (m mapEdges[K, V]) Put(key K, n *Node[K, V]) { m[key] = n }
func (m mapEdges[K, V]) Len() int                 { return len(m) }

func (m mapEdges[K, V]) Get(key K) (*Node[K, V], bool) {
	n, ok := m[key]
	return n, ok
}

func (m mapEdges[K, V]) Remove(key K) bool {
	_, ok := m[key]
	delete(m, key)
	return ok
}

func (m mapEdges[K, V]) Range(fn func(K, *Node[K, V]) bool) bool {
	for k, n := range m {
		if !fn(k, n) {
			return false
		}
	}
	return true
}

func newMapTrie() *Trie[string, int] {
	return New(func() Edges[string, int] { return mapEdges[string, int]{} })
}

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]int)
	)

	b.ResetTimer()

	for i, key := range keys {
		m[strings.Join(key, " ")] = i
	}
}

func BenchmarkTrie_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = NewOrdered[string, int]()
	)

	b.ResetTimer()

	for i, key := range keys {
		_, _, _ = tr.Set(key, i)
	}
}

func BenchmarkMapTrie_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = newMapTrie()
	)

	b.ResetTimer()

	for i, key := range keys {
		_, _, _ = tr.Set(key, i)
	}
}

func BenchmarkTrie_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = NewOrdered[string, int]()
	)

	for i, key := range keys {
		_, _, _ = tr.Set(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.Get(key)
	}
}

func BenchmarkTrie_Delete(b *testing.B) {
	var (
		keys = getKeys(b.N)
		tr   = NewOrdered[string, int]()
	)

	for i, key := range keys {
		_, _, _ = tr.Set(key, i)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = tr.Delete(key)
	}
}

func BenchmarkTrie_All(b *testing.B) {
	var (
		keys = getKeys(10_000)
		tr   = NewOrdered[string, int]()
	)

	for i, key := range keys {
		_, _, _ = tr.Set(key, i)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for range tr.All() {
		}
	}
}

func getKeys(total int) [][]string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([][]string, total)
	)

	for i := range keys {
		keys[i] = strings.Fields(faker.Sentence(4))
	}

	return keys
}
