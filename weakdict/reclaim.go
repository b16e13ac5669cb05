package weakdict

import (
	"sync"
	"weak"

	"github.com/aglyzov/go-mktrie/trie"
)

// queue collects nodes orphaned by collected keys. It is filled by runtime
// cleanups, which run on their own goroutine, and drained by Dict methods.
type queue[T, V any] struct {
	mu      sync.Mutex
	pending []weak.Pointer[trie.Node[*T, V]]
}

func (q *queue[T, V]) push(node weak.Pointer[trie.Node[*T, V]]) {
	q.mu.Lock()
	q.pending = append(q.pending, node)
	q.mu.Unlock()
}

func (q *queue[T, V]) drain() []weak.Pointer[trie.Node[*T, V]] {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending := q.pending
	q.pending = nil
	return pending
}

// reclaim unlinks the nodes whose key has been collected and prunes the
// ancestors left without a value and without children.
func (d *Dict[T, V]) reclaim() {
	pending := d.queue.drain()
	if len(pending) == 0 {
		return
	}

	var pruned int

	for _, wp := range pending {
		// nil: the node went away with a branch cut by Delete
		node := wp.Value()

		for node != nil {
			parent := node.Parent()
			if parent == nil {
				break
			}
			e, ok := parent.Edges().(*edges[T, V])
			if !ok || !e.detach(node) {
				break
			}
			pruned++
			if !parent.Empty() {
				break
			}
			node = parent
		}
	}

	d.root.Logger().Debug("reclaimed weak edges", "queued", len(pending), "pruned", pruned)
}
