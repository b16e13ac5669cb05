package trie

// Edges is a child table of a trie node: it maps one key element to the
// next node down the path.
type Edges[K, V any] interface {
	// Get returns the child linked by key.
	Get(key K) (*Node[K, V], bool)
	// Put links child under key, replacing any previous link.
	Put(key K, child *Node[K, V])
	// Remove unlinks key and reports whether it was linked.
	Remove(key K) bool
	// Len returns the number of linked children.
	Len() int
	// Range calls fn for every link in table order until fn returns false.
	// It reports whether all links were visited.
	Range(fn func(key K, child *Node[K, V]) bool) bool
}

// Node holds an optional value for one key prefix and the edges to the
// longer prefixes seen so far.
type Node[K, V any] struct {
	present bool
	value   V
	next    Edges[K, V] // nil until the first child is linked
	parent  *Node[K, V]
}

// Present reports whether a value is stored at the node.
func (n *Node[K, V]) Present() bool {
	return n.present
}

// Value returns the stored value. It is meaningful only if Present is true.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Parent returns the node this one was linked under, nil for a root.
func (n *Node[K, V]) Parent() *Node[K, V] {
	return n.parent
}

// Edges returns the child table, nil if the node never had a child.
func (n *Node[K, V]) Edges() Edges[K, V] {
	return n.next
}

// Len returns the number of children.
func (n *Node[K, V]) Len() int {
	if n.next == nil {
		return 0
	}
	return n.next.Len()
}

// Child returns the child linked by key.
func (n *Node[K, V]) Child(key K) (*Node[K, V], bool) {
	if n.next == nil {
		return nil, false
	}
	return n.next.Get(key)
}

// Empty reports whether the node holds neither a value nor children.
func (n *Node[K, V]) Empty() bool {
	return !n.present && n.Len() == 0
}

func (n *Node[K, V]) store(val V) {
	n.present = true
	n.value = val
}

func (n *Node[K, V]) clear() (val V) {
	val = n.value
	var zero V
	n.present = false
	n.value = zero
	return
}
