package trie

import (
	"log/slog"
)

// Option configures a Trie.
type Option[K, V any] func(*Trie[K, V])

// WithValidator installs a check that runs for every element of a key
// sequence before Set or Upsert touch the structure. The first error aborts
// the operation and leaves the trie unmodified.
func WithValidator[K, V any](validate func(index int, key K) error) Option[K, V] {
	return func(t *Trie[K, V]) {
		t.validate = validate
	}
}

// WithOnLink installs a hook called for every edge created by
// LookupOrCreate, after the child has been linked under parent.
func WithOnLink[K, V any](onLink func(parent *Node[K, V], key K, child *Node[K, V])) Option[K, V] {
	return func(t *Trie[K, V]) {
		t.onLink = onLink
	}
}

// WithLogger sets the logger of the trie. By default the package logger is
// used (see SetLogHandler).
func WithLogger[K, V any](logger *slog.Logger) Option[K, V] {
	return func(t *Trie[K, V]) {
		t.logger = logger
	}
}

// Trie maps key sequences to values.
type Trie[K, V any] struct {
	root     *Node[K, V]
	newEdges func() Edges[K, V]
	validate func(int, K) error
	onLink   func(*Node[K, V], K, *Node[K, V])
	logger   *slog.Logger
}

// New returns an empty trie whose nodes get child tables from newEdges.
func New[K, V any](newEdges func() Edges[K, V], opts ...Option[K, V]) *Trie[K, V] {
	t := &Trie[K, V]{
		root:     &Node[K, V]{},
		newEdges: newEdges,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewOrdered returns an empty trie with insertion-ordered child tables.
func NewOrdered[K comparable, V any](opts ...Option[K, V]) *Trie[K, V] {
	return New(NewOrderedEdges[K, V], opts...)
}

// Logger returns the logger of the trie.
func (t *Trie[K, V]) Logger() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return defaultLogger
}

// Root returns the node of the empty key sequence.
func (t *Trie[K, V]) Root() *Node[K, V] {
	return t.root
}

// Reset drops every node at once.
func (t *Trie[K, V]) Reset() {
	t.root = &Node[K, V]{}
}

// Validate runs the validator over keys.
func (t *Trie[K, V]) Validate(keys []K) error {
	if t.validate == nil {
		return nil
	}
	for i, key := range keys {
		if err := t.validate(i, key); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the node at the end of keys without changing the trie.
// Keys rejected by the validator are never found.
func (t *Trie[K, V]) Lookup(keys []K) (*Node[K, V], bool) {
	if t.Validate(keys) != nil {
		return nil, false
	}
	cur := t.root
	for _, key := range keys {
		next, ok := cur.Child(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// LookupOrCreate returns the node at the end of keys, linking a fresh node
// for every missing edge. The keys are not validated.
func (t *Trie[K, V]) LookupOrCreate(keys []K) *Node[K, V] {
	cur := t.root
	for _, key := range keys {
		if next, ok := cur.Child(key); ok {
			cur = next
			continue
		}
		if cur.next == nil {
			if cur.next = t.newEdges(); cur.next == nil {
				t.broken("child table factory returned nil", len(keys))
			}
		}
		child := &Node[K, V]{parent: cur}
		cur.next.Put(key, child)
		if t.onLink != nil {
			t.onLink(cur, key, child)
		}
		cur = child
	}
	if cur == nil {
		t.broken("walk ended on a nil node", len(keys))
	}
	return cur
}

func (t *Trie[K, V]) broken(msg string, depth int) {
	t.Logger().Error(msg, "error", ErrBrokenPath, "depth", depth)
	panic(ErrBrokenPath)
}

// Upsert stores the result of fn at keys. fn receives the current value and
// whether one is present. Upsert returns the previous value and whether it
// was present.
func (t *Trie[K, V]) Upsert(keys []K, fn func(prev V, ok bool) V) (prev V, loaded bool, err error) {
	if err = t.Validate(keys); err != nil {
		return
	}
	node := t.LookupOrCreate(keys)
	prev, loaded = node.value, node.present
	node.store(fn(prev, loaded))
	return
}

// Set stores val at keys and returns the previous value and whether it was
// present. Size bookkeeping is left to the caller.
func (t *Trie[K, V]) Set(keys []K, val V) (prev V, loaded bool, err error) {
	return t.Upsert(keys, func(V, bool) V { return val })
}

// Get returns the value stored at keys. The second result tells a stored
// zero value from a missing one.
func (t *Trie[K, V]) Get(keys []K) (val V, ok bool) {
	node, found := t.Lookup(keys)
	if !found || !node.present {
		return
	}
	return node.value, true
}

// Has reports whether a value is stored at keys.
func (t *Trie[K, V]) Has(keys []K) bool {
	node, found := t.Lookup(keys)
	return found && node.present
}

// Delete removes the value stored at keys and returns it.
//
// While walking down, Delete remembers the anchor: the deepest node on the
// path that holds a value, has another child, or is the root, together with
// the element of the edge leaving it towards the target. Every node below the
// anchor's edge has a single child and no value, so once the target is left
// without a value and without children, unlinking that one edge drops the
// whole dead suffix.
func (t *Trie[K, V]) Delete(keys []K) (val V, ok bool) {
	if t.Validate(keys) != nil {
		return
	}
	var (
		cur    = t.root
		anchor = t.root
		cut    K
	)
	for i, key := range keys {
		next, found := cur.Child(key)
		if !found {
			return
		}
		if i == 0 || cur.present || cur.Len() > 1 {
			anchor, cut = cur, key
		}
		cur = next
	}
	if !cur.present {
		return
	}
	val, ok = cur.clear(), true

	if len(keys) > 0 && cur.Len() == 0 {
		anchor.next.Remove(cut)
	}
	return
}

// Count walks the whole trie and returns the number of stored values and
// the number of nodes, root included.
func (t *Trie[K, V]) Count() (values, nodes int) {
	var count func(n *Node[K, V]) bool
	count = func(n *Node[K, V]) bool {
		nodes++
		if n.present {
			values++
		}
		if n.next != nil {
			n.next.Range(func(_ K, child *Node[K, V]) bool {
				return count(child)
			})
		}
		return true
	}
	count(t.root)
	return
}
