// Package dict implements a map keyed by sequences of comparable elements.
//
//	d := dict.New[any, string]()
//	d.Set([]any{"user", 42}, "alice")
//	d.Get([]any{"user", 42}) // "alice", true
//
// Two key sequences are equal when they have the same length and their
// elements are pairwise equal under ==. Entries are enumerated depth-first,
// shorter prefixes before their extensions, siblings in insertion order.
package dict

import (
	"io"
	"iter"
	"reflect"

	"github.com/aglyzov/go-mktrie/trie"
)

type Item[K comparable, V any] struct {
	Keys []K
	Val  V
}

type Dict[K comparable, V any] struct {
	size int
	root *trie.Trie[K, V]
}

func InitDict[K comparable, V any](dict *Dict[K, V], items ...Item[K, V]) *Dict[K, V] {
	*dict = Dict[K, V]{root: newTrie[K, V]()}
	for _, item := range items {
		dict.Set(item.Keys, item.Val)
	}
	return dict
}

func New[K comparable, V any](items ...Item[K, V]) *Dict[K, V] {
	return InitDict(&Dict[K, V]{}, items...)
}

func newTrie[K comparable, V any]() *trie.Trie[K, V] {
	if !mayPanicOnHash(reflect.TypeFor[K]()) {
		return trie.NewOrdered[K, V]()
	}
	return trie.NewOrdered(trie.WithValidator[K, V](hashable[K]))
}

// mayPanicOnHash reports whether == on values of t can panic at run time,
// which is the case when t holds an interface somewhere.
func mayPanicOnHash(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayPanicOnHash(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if mayPanicOnHash(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// hashable rejects elements whose dynamic value cannot be a map key.
func hashable[K comparable](index int, key K) error {
	if !reflect.ValueOf(&key).Elem().Comparable() {
		return &trie.KeyError{Index: index, Err: trie.ErrInvalidKey}
	}
	return nil
}

func (d *Dict[K, V]) tree() *trie.Trie[K, V] {
	if d.root == nil {
		d.root = newTrie[K, V]()
	}
	return d.root
}

// Len returns the number of key sequences in the dict.
func (d *Dict[K, V]) Len() int {
	return d.size
}

// Get returns the value associated with the keys.
func (d *Dict[K, V]) Get(keys []K) (val V, ok bool) {
	if d.root == nil {
		return
	}
	return d.root.Get(keys)
}

// Has reports whether a value is associated with the keys.
func (d *Dict[K, V]) Has(keys []K) bool {
	return d.root != nil && d.root.Has(keys)
}

// Replace applies a func to the previous value of the keys and stores the
// result. The func also learns whether there was a previous value.
// Returns the previous value.
//
// Replace panics with a *trie.KeyError if an element holds a value that
// cannot be compared, such as a slice stored in an interface.
// Nothing is modified in that case.
func (d *Dict[K, V]) Replace(keys []K, replace func(prev V, ok bool) V) V {
	prev, loaded, err := d.tree().Upsert(keys, replace)
	if err != nil {
		panic(err)
	}
	if !loaded {
		d.size++
	}
	return prev
}

// Swap associates the value with the keys and returns the previous value,
// if any.
func (d *Dict[K, V]) Swap(keys []K, val V) (prev V, loaded bool) {
	d.Replace(keys, func(old V, ok bool) V {
		prev, loaded = old, ok
		return val
	})
	return
}

// Set associates the value with the keys. Returns the dict itself.
func (d *Dict[K, V]) Set(keys []K, val V) *Dict[K, V] {
	d.Swap(keys, val)
	return d
}

// Pop removes the keys from the dict and returns their value (if any).
func (d *Dict[K, V]) Pop(keys []K) (val V, ok bool) {
	if d.root == nil {
		return
	}
	if val, ok = d.root.Delete(keys); ok {
		d.size--
	}
	return
}

// Delete removes the keys from the dict and reports whether they were there.
func (d *Dict[K, V]) Delete(keys []K) bool {
	_, ok := d.Pop(keys)
	return ok
}

// Clear removes everything.
func (d *Dict[K, V]) Clear() {
	d.tree().Reset()
	d.size = 0
}

// Merge copies all items of another Dict into this one, replacing the
// values of common keys. Returns itself.
func (d *Dict[K, V]) Merge(other *Dict[K, V]) *Dict[K, V] {
	if other != nil && other != d {
		for keys, val := range other.All() {
			d.Set(keys, val)
		}
	}
	return d
}

// All returns an iterator over the key sequences and their values.
// Every key slice is a new copy.
func (d *Dict[K, V]) All() iter.Seq2[[]K, V] {
	return d.tree().All()
}

// Keys returns an iterator over the key sequences.
func (d *Dict[K, V]) Keys() iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		for keys := range d.All() {
			if !yield(keys) {
				return
			}
		}
	}
}

// Values returns an iterator over the values.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		d.tree().Walk(func(_ []K, val V) bool {
			return yield(val)
		})
	}
}

// ForEach calls fn for every value.
func (d *Dict[K, V]) ForEach(fn func(val V, keys []K, dict *Dict[K, V])) {
	for keys, val := range d.All() {
		fn(val, keys, d)
	}
}

// Iter calls a handler for every item.
// It returns whether all items were iterated.
// The handler can continue the process by returning true or abort with false.
func (d *Dict[K, V]) Iter(handler func(Item[K, V]) bool) bool {
	return d.tree().Walk(func(keys []K, val V) bool {
		return handler(Item[K, V]{append([]K(nil), keys...), val})
	})
}

// Cursor returns an explicit iterator positioned before the first item.
func (d *Dict[K, V]) Cursor() *trie.Cursor[K, V] {
	return d.tree().Cursor()
}

// Items returns all items.
func (d *Dict[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, d.size)
	for keys, val := range d.All() {
		items = append(items, Item[K, V]{keys, val})
	}
	return items
}

// Nodes returns the number of trie nodes, the root included.
func (d *Dict[K, V]) Nodes() int {
	_, nodes := d.tree().Count()
	return nodes
}

func (d *Dict[K, V]) DebugDump(w io.Writer) {
	d.tree().Dump(w)
}
