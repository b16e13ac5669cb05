// Package weakset implements a set of object-pointer sequences that does not
// keep those objects alive. See package weakdict for the reclamation rules.
package weakset

import (
	"github.com/aglyzov/go-mktrie/weakdict"
)

type Set[T any] struct {
	dict weakdict.Dict[T, bool]
}

// New returns a Set holding keys. It fails on the first sequence with a nil
// element, keeping the sequences added before it.
func New[T any](keys ...[]*T) (*Set[T], error) {
	s := &Set[T]{}
	for _, k := range keys {
		if err := s.Add(k); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Add adds the keys to the set. A nil element makes it fail with a
// *trie.KeyError wrapping trie.ErrInvalidWeakKey.
func (s *Set[T]) Add(keys []*T) error {
	return s.dict.Set(keys, true)
}

// Delete removes the keys and reports whether they were in the set.
func (s *Set[T]) Delete(keys []*T) bool {
	return s.dict.Delete(keys)
}

func (s *Set[T]) Has(keys []*T) bool {
	return s.dict.Has(keys)
}
