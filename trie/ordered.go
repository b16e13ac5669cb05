package trie

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// orderedEdges keeps children in the order they were first linked.
type orderedEdges[K comparable, V any] struct {
	m *orderedmap.OrderedMap[K, *Node[K, V]]
}

// NewOrderedEdges returns an empty insertion-ordered child table. Elements
// are compared with ==.
func NewOrderedEdges[K comparable, V any]() Edges[K, V] {
	return &orderedEdges[K, V]{
		m: orderedmap.New[K, *Node[K, V]](),
	}
}

func (e *orderedEdges[K, V]) Get(key K) (*Node[K, V], bool) {
	return e.m.Get(key)
}

func (e *orderedEdges[K, V]) Put(key K, child *Node[K, V]) {
	e.m.Set(key, child)
}

func (e *orderedEdges[K, V]) Remove(key K) bool {
	_, ok := e.m.Delete(key)
	return ok
}

func (e *orderedEdges[K, V]) Len() int {
	return e.m.Len()
}

func (e *orderedEdges[K, V]) Range(fn func(key K, child *Node[K, V]) bool) bool {
	for pair := e.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return false
		}
	}
	return true
}
