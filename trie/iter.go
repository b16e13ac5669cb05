package trie

import (
	"iter"
	"slices"
)

// Walk calls fn for every stored value in depth-first pre-order: the root
// first, then each child subtree in table order. The keys slice passed to fn
// is shared by the walk and only valid during the call. Walk stops as soon as
// fn returns false and reports whether every value was visited.
func (t *Trie[K, V]) Walk(fn func(keys []K, val V) bool) bool {
	path := make([]K, 0, 8)

	var walk func(n *Node[K, V]) bool
	walk = func(n *Node[K, V]) bool {
		if n.present && !fn(path, n.value) {
			return false
		}
		if n.next == nil {
			return true
		}
		return n.next.Range(func(key K, child *Node[K, V]) bool {
			path = append(path, key)
			ok := walk(child)
			path = path[:len(path)-1]
			return ok
		})
	}
	return walk(t.root)
}

// All returns an iterator over (keys, value) pairs in the order of Walk.
// Each keys slice is a fresh copy owned by the caller. Every call starts an
// independent traversal.
func (t *Trie[K, V]) All() iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		t.Walk(func(keys []K, val V) bool {
			return yield(slices.Clone(keys), val)
		})
	}
}

// frame is the state of a Cursor at one level: the children of a node and
// the position of the next one to visit.
type frame[K, V any] struct {
	keys  []K
	nodes []*Node[K, V]
	pos   int
}

// Cursor is an explicit pre-order iterator over the stored values of a trie.
//
//	for c := t.Cursor(); c.Next(); {
//		fmt.Println(c.Keys(), c.Value())
//	}
//
// The children of a node are listed when the cursor enters it. Changing the
// trie while a cursor is in use is unsupported.
type Cursor[K, V any] struct {
	root    *Node[K, V]
	cur     *Node[K, V]
	stack   []frame[K, V]
	path    []K
	started bool
}

// Cursor returns a cursor positioned before the first stored value.
func (t *Trie[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{
		root: t.root,
		path: make([]K, 0, 8),
	}
}

func (c *Cursor[K, V]) enter(n *Node[K, V]) {
	var f frame[K, V]
	if n.next != nil {
		f.keys = make([]K, 0, n.next.Len())
		f.nodes = make([]*Node[K, V], 0, n.next.Len())
		n.next.Range(func(key K, child *Node[K, V]) bool {
			f.keys = append(f.keys, key)
			f.nodes = append(f.nodes, child)
			return true
		})
	}
	c.stack = append(c.stack, f)
}

// Next advances to the next stored value and reports whether there is one.
func (c *Cursor[K, V]) Next() bool {
	if !c.started {
		c.started = true
		c.enter(c.root)
		if c.root.present {
			c.cur = c.root
			return true
		}
	}
	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]
		if top.pos == len(top.nodes) {
			// the path is one element shorter than the stack
			c.stack = c.stack[:len(c.stack)-1]
			if len(c.path) > 0 {
				c.path = c.path[:len(c.path)-1]
			}
			continue
		}
		key, child := top.keys[top.pos], top.nodes[top.pos]
		top.pos++

		c.path = append(c.path, key)
		c.enter(child)
		if child.present {
			c.cur = child
			return true
		}
	}
	c.cur = nil
	return false
}

// Keys returns a copy of the key sequence of the current value.
func (c *Cursor[K, V]) Keys() []K {
	return slices.Clone(c.path)
}

// Value returns the current value.
func (c *Cursor[K, V]) Value() (val V) {
	if c.cur != nil {
		val = c.cur.value
	}
	return
}
