package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is reported for a key element that cannot label an edge,
	// e.g. an interface holding a slice, map or func.
	ErrInvalidKey = errors.New("invalid value used as key")

	// ErrInvalidWeakKey is reported for a key element of a weak container that
	// does not reference a live object.
	ErrInvalidWeakKey = errors.New("invalid value used as weak key")

	// ErrBrokenPath means a walk that must always yield a node did not.
	// It is never returned, only raised with panic.
	ErrBrokenPath = errors.New("trie: broken path")
)

// KeyError describes a rejected element of a key sequence.
type KeyError struct {
	Index int   // position of the element in the sequence
	Err   error // ErrInvalidKey or ErrInvalidWeakKey
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key element #%d: %v", e.Index, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}
