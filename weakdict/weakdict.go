// Package weakdict implements a map keyed by sequences of object pointers
// that does not keep those objects alive.
//
// Once any object of a key sequence has been collected, the entry can no
// longer be looked up and its part of the trie is released the next time
// the Dict is used. Collection timing belongs to the garbage collector, so
// entries cannot be enumerated or counted.
//
// A value that references an object of its own key sequence keeps that
// object reachable, and the entry is then never released. Key objects must
// be heap allocated and not zero-sized, as for package weak. Small objects
// without pointers may share an allocation with others and be released late
// or never; give key types a pointer field or a size of 16 bytes or more.
package weakdict

import (
	"runtime"
	"weak"

	"github.com/aglyzov/go-mktrie/trie"
)

type Item[T, V any] struct {
	Keys []*T
	Val  V
}

type Dict[T, V any] struct {
	root  *trie.Trie[*T, V]
	queue *queue[T, V]
}

// New returns a Dict loaded with items. It fails on the first item holding
// a nil key element, keeping the items stored before it.
func New[T, V any](items ...Item[T, V]) (*Dict[T, V], error) {
	d := &Dict[T, V]{}
	d.init()
	for _, item := range items {
		if err := d.Set(item.Keys, item.Val); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (d *Dict[T, V]) init() {
	if d.root != nil {
		return
	}
	q := &queue[T, V]{}

	d.queue = q
	d.root = trie.New(newEdges[T, V],
		trie.WithValidator[*T, V](validKey[T]),
		trie.WithOnLink(func(parent *trie.Node[*T, V], key *T, child *trie.Node[*T, V]) {
			if e, ok := parent.Edges().(*edges[T, V]); ok {
				e.watch(child, runtime.AddCleanup(key, q.push, weak.Make(child)))
			}
		}),
	)
}

func validKey[T any](index int, key *T) error {
	if key == nil {
		return &trie.KeyError{Index: index, Err: trie.ErrInvalidWeakKey}
	}
	return nil
}

// Set associates the value with the keys. Every element must be a non-nil
// pointer, otherwise Set returns a *trie.KeyError wrapping
// trie.ErrInvalidWeakKey and changes nothing.
func (d *Dict[T, V]) Set(keys []*T, val V) error {
	d.init()
	d.reclaim()

	_, _, err := d.root.Set(keys, val)
	return err
}

// Get returns the value associated with the keys. Any sequence is accepted;
// one with a nil element is simply not found.
func (d *Dict[T, V]) Get(keys []*T) (val V, ok bool) {
	d.init()
	d.reclaim()

	return d.root.Get(keys)
}

func (d *Dict[T, V]) Has(keys []*T) bool {
	d.init()
	d.reclaim()

	return d.root.Has(keys)
}

// Delete removes the value associated with the keys and reports whether
// there was one.
func (d *Dict[T, V]) Delete(keys []*T) bool {
	d.init()
	d.reclaim()

	_, ok := d.root.Delete(keys)
	return ok
}
