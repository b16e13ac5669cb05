package weakdict

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-mktrie/trie"
)

// obj holds a pointer so that it never shares a tiny allocation block.
type obj struct {
	id   int
	next *obj
}

func newObjs(n int) []*obj {
	objs := make([]*obj, n)
	for i := range objs {
		objs[i] = &obj{id: i}
	}
	return objs
}

func TestAllKeyKinds(t *testing.T) {
	t.Parallel()

	o := newObjs(5)

	items := []Item[obj, any]{
		{[]*obj{{}}, "fresh"},
		{[]*obj{o[0], {}, o[2], {}, o[0]}, 5},
		{[]*obj{}, "empty key"},
		{[]*obj{o[0], o[1], o[2]}, "123"},
		{[]*obj{o[0], o[1], o[2], o[3]}, "1234"},
		{[]*obj{o[0], o[1], o[2], o[3], o[4]}, "12345"},
		{[]*obj{o[4]}, nil},
	}

	d, err := New[obj, any]()
	require.NoError(t, err)

	for _, item := range items {
		assert.False(t, d.Has(item.Keys))

		require.NoError(t, d.Set(item.Keys, item.Val))

		assert.True(t, d.Has(item.Keys))
		val, ok := d.Get(item.Keys)
		assert.True(t, ok)
		assert.Equal(t, item.Val, val)
	}

	// equal contents, different objects
	assert.False(t, d.Has([]*obj{{id: 4}}))

	runtime.KeepAlive(o)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	o := newObjs(3)
	items := []Item[obj, int]{
		{[]*obj{o[0]}, 0},
		{[]*obj{o[0], o[1]}, 1},
		{[]*obj{o[1], o[2], o[0]}, 2},
		{nil, 3},
	}

	d, err := New(items...)
	require.NoError(t, err)

	for _, item := range items {
		require.True(t, d.Has(item.Keys))

		assert.True(t, d.Delete(item.Keys))

		assert.False(t, d.Has(item.Keys))
		val, ok := d.Get(item.Keys)
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	}

	assert.Equal(t, 0, d.root.Root().Len())

	runtime.KeepAlive(o)
}

func TestDelete_Result(t *testing.T) {
	t.Parallel()

	var (
		o    = newObjs(3)
		d, _ = New[obj, int]()
	)

	require.NoError(t, d.Set([]*obj{o[0], o[1]}, 0))

	val, ok := d.Get([]*obj{o[0], o[1]})
	assert.True(t, ok)
	assert.Equal(t, 0, val)

	assert.False(t, d.Delete([]*obj{o[0]}))
	assert.False(t, d.Delete([]*obj{o[0], o[1], o[2]}))
	assert.True(t, d.Delete([]*obj{o[0], o[1]}))
	assert.False(t, d.Has([]*obj{o[0], o[1]}))

	runtime.KeepAlive(o)
}

func TestNilElements(t *testing.T) {
	t.Parallel()

	o := newObjs(2)
	d, _ := New(Item[obj, string]{[]*obj{o[0], o[1]}, "x"})

	_, ok := d.Get([]*obj{nil, o[1]})
	assert.False(t, ok)
	assert.False(t, d.Has([]*obj{o[0], nil}))
	assert.False(t, d.Delete([]*obj{nil}))

	err := d.Set([]*obj{o[1], o[0], nil}, "bad")

	var kerr *trie.KeyError
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, 2, kerr.Index)
	assert.ErrorIs(t, err, trie.ErrInvalidWeakKey)
	assert.EqualError(t, err, "key element #2: invalid value used as weak key")

	// validated before any edge was created
	assert.False(t, d.Has([]*obj{o[1]}))
	assert.False(t, d.Has([]*obj{o[1], o[0]}))
	assert.Equal(t, 1, d.root.Root().Len())

	runtime.KeepAlive(o)
}

func TestNew_Error(t *testing.T) {
	t.Parallel()

	o := newObjs(1)

	d, err := New(
		Item[obj, int]{[]*obj{o[0]}, 1},
		Item[obj, int]{[]*obj{nil}, 2},
	)
	assert.ErrorIs(t, err, trie.ErrInvalidWeakKey)
	require.NotNil(t, d)
	assert.True(t, d.Has([]*obj{o[0]}))

	runtime.KeepAlive(o)
}

func TestZeroDict(t *testing.T) {
	t.Parallel()

	var (
		d Dict[obj, int]
		o = &obj{}
	)

	assert.False(t, d.Has([]*obj{o}))
	require.NoError(t, d.Set([]*obj{o}, 1))
	assert.True(t, d.Has([]*obj{o}))
}

func TestEmptyKey(t *testing.T) {
	t.Parallel()

	o := newObjs(2)
	d, _ := New[obj, string]()

	require.NoError(t, d.Set(nil, "root"))
	require.NoError(t, d.Set([]*obj{o[0], o[1]}, "01"))

	assert.True(t, d.Delete([]*obj{}))
	assert.False(t, d.Has(nil))

	val, ok := d.Get([]*obj{o[0], o[1]})
	assert.True(t, ok)
	assert.Equal(t, "01", val)

	runtime.KeepAlive(o)
}

func nodeCount[T, V any](d *Dict[T, V]) int {
	_, nodes := d.root.Count()
	return nodes
}

func TestReclaim(t *testing.T) {
	t.Parallel()

	var (
		d, _ = New[obj, int]()
		keep = &obj{id: 1}
	)

	func() {
		gone := &obj{id: 2}
		require.NoError(t, d.Set([]*obj{keep, gone}, 1))
		require.NoError(t, d.Set([]*obj{gone}, 2))
	}()
	require.NoError(t, d.Set([]*obj{keep}, 3))

	assert.Equal(t, 4, nodeCount(d))

	require.Eventually(t, func() bool {
		runtime.GC()
		d.reclaim()
		return nodeCount(d) == 2 // root and keep
	}, 10*time.Second, 10*time.Millisecond)

	val, ok := d.Get([]*obj{keep})
	assert.True(t, ok)
	assert.Equal(t, 3, val)

	runtime.KeepAlive(keep)
}

func TestReclaim_Cascade(t *testing.T) {
	t.Parallel()

	var (
		d, _ = New[obj, int]()
		o    = newObjs(2)
	)

	func() {
		gone := &obj{id: 2}
		require.NoError(t, d.Set([]*obj{o[0], o[1], gone}, 1))
	}()

	assert.Equal(t, 4, nodeCount(d))

	require.Eventually(t, func() bool {
		runtime.GC()
		d.reclaim()
		return nodeCount(d) == 1
	}, 10*time.Second, 10*time.Millisecond)

	assert.False(t, d.Has([]*obj{o[0], o[1]}))
	assert.Equal(t, 0, d.root.Root().Len())

	runtime.KeepAlive(o)
}

func TestReclaim_AfterDelete(t *testing.T) {
	t.Parallel()

	var (
		d, _ = New[obj, int]()
		o    = newObjs(1)
	)

	func() {
		gone := &obj{id: 2}
		require.NoError(t, d.Set([]*obj{o[0], gone}, 1))
		require.True(t, d.Delete([]*obj{o[0], gone}))
	}()
	require.NoError(t, d.Set([]*obj{o[0]}, 2))

	// the cleanup of the cut branch must not touch the live one
	for i := 0; i < 3; i++ {
		runtime.GC()
		d.reclaim()
	}

	val, ok := d.Get([]*obj{o[0]})
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	assert.Equal(t, 2, nodeCount(d))

	runtime.KeepAlive(o)
}

func pending[T, V any](d *Dict[T, V]) int {
	d.queue.mu.Lock()
	defer d.queue.mu.Unlock()

	return len(d.queue.pending)
}

func TestChurn_StopsCleanups(t *testing.T) {
	t.Parallel()

	const cycles = 200

	d, _ := New[obj, int]()

	func() {
		k, next := &obj{id: 1}, &obj{id: 2}
		for i := 0; i < cycles; i++ {
			require.NoError(t, d.Set([]*obj{k, next}, i))
			require.True(t, d.Delete([]*obj{k, next}))
		}
		require.NoError(t, d.Set([]*obj{k}, -1))
	}()

	// no Dict method may run here: each one drains the queue
	require.Eventually(t, func() bool {
		runtime.GC()
		return pending(d) > 0
	}, 10*time.Second, 10*time.Millisecond)

	for i := 0; i < 5; i++ {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}

	// only the edge that was still linked had a cleanup left
	assert.Equal(t, 1, pending(d))

	d.reclaim()
	assert.Equal(t, 0, d.root.Root().Len())
}

func TestDelete_ReleasesBranch(t *testing.T) {
	t.Parallel()

	var (
		o    = newObjs(3)
		d, _ = New[obj, int]()
	)

	require.NoError(t, d.Set([]*obj{o[0], o[1], o[2]}, 1))

	top, ok := d.root.Root().Edges().(*edges[obj, int])
	require.True(t, ok)
	require.Len(t, top.byNode, 1)
	for _, l := range top.byNode {
		assert.True(t, l.watched)
	}

	assert.True(t, d.Delete([]*obj{o[0], o[1], o[2]}))
	assert.Empty(t, top.byNode)
	assert.Empty(t, top.byKey)

	runtime.KeepAlive(o)
}
