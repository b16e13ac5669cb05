package weakdict

import (
	"runtime"
	"weak"

	"github.com/aglyzov/go-mktrie/trie"
)

// link is the reverse side of an edge: the key it was made for and the
// cleanup watching that key.
type link[T any] struct {
	key     weak.Pointer[T]
	cleanup runtime.Cleanup
	watched bool
}

func (l link[T]) stop() {
	if l.watched {
		l.cleanup.Stop()
	}
}

// edges is a child table that does not keep its key objects alive. An edge
// whose key has been collected stays in the table until the owning Dict
// reclaims it; nobody can look it up in the meantime.
type edges[T, V any] struct {
	byKey  map[weak.Pointer[T]]*trie.Node[*T, V]
	byNode map[*trie.Node[*T, V]]link[T]
}

func newEdges[T, V any]() trie.Edges[*T, V] {
	return &edges[T, V]{
		byKey:  make(map[weak.Pointer[T]]*trie.Node[*T, V]),
		byNode: make(map[*trie.Node[*T, V]]link[T]),
	}
}

func (e *edges[T, V]) Get(key *T) (*trie.Node[*T, V], bool) {
	if key == nil {
		return nil, false
	}
	child, ok := e.byKey[weak.Make(key)]
	return child, ok
}

func (e *edges[T, V]) Put(key *T, child *trie.Node[*T, V]) {
	wp := weak.Make(key)
	if old, ok := e.byKey[wp]; ok {
		e.unlink(old)
	}
	e.byKey[wp] = child
	e.byNode[child] = link[T]{key: wp}
}

func (e *edges[T, V]) Remove(key *T) bool {
	if key == nil {
		return false
	}
	child, ok := e.byKey[weak.Make(key)]
	if !ok {
		return false
	}
	e.unlink(child)
	return true
}

// Len counts collected but not yet reclaimed edges too.
func (e *edges[T, V]) Len() int {
	return len(e.byKey)
}

// Range skips edges whose key has been collected. The order is random.
func (e *edges[T, V]) Range(fn func(key *T, child *trie.Node[*T, V]) bool) bool {
	for wp, child := range e.byKey {
		key := wp.Value()
		if key == nil {
			continue
		}
		if !fn(key, child) {
			return false
		}
	}
	return true
}

// watch attaches the cleanup registered on the key of child's edge.
func (e *edges[T, V]) watch(child *trie.Node[*T, V], cleanup runtime.Cleanup) {
	if l, ok := e.byNode[child]; ok {
		l.cleanup, l.watched = cleanup, true
		e.byNode[child] = l
	}
}

// detach unlinks child whatever the state of its key.
func (e *edges[T, V]) detach(child *trie.Node[*T, V]) bool {
	if _, ok := e.byNode[child]; !ok {
		return false
	}
	e.unlink(child)
	return true
}

// unlink removes the edge of child and stops the cleanups of every edge
// cut off with it.
func (e *edges[T, V]) unlink(child *trie.Node[*T, V]) {
	l := e.byNode[child]
	delete(e.byNode, child)
	delete(e.byKey, l.key)
	l.stop()
	release[T](child)
}

func release[T, V any](node *trie.Node[*T, V]) {
	e, ok := node.Edges().(*edges[T, V])
	if !ok {
		return
	}
	for child, l := range e.byNode {
		l.stop()
		release[T](child)
	}
}
