// Package trie implements the storage engine shared by the sequence-keyed
// containers of this module.
//
// A Trie maps a key sequence ([]K of any length) to a value. Every edge of the
// trie is labelled by one key element and every node may hold a value for the
// exact prefix that leads to it:
//
//	root (value for [])
//	 |-- 1 --> node (value for [1])
//	 |          `-- 2 --> node -- 3 --> node (value for [1 2 3])
//	 `-- "a" --> node (value for ["a"])
//
// The root stands for the empty sequence and is never removed. Nodes are
// created lazily by Set, one per novel prefix element, and Delete detaches the
// whole dead suffix of a path with a single edge removal.
//
// Child tables are pluggable (see Edges). NewOrderedEdges keeps children in
// insertion order and compares elements with Go's == operator, so two equal
// strings share an edge while two distinct pointers never do. Weak tables that
// do not keep their key elements alive are built on top of the same interface
// (see package weakdict).
//
// A Trie is not safe for concurrent use. Traversals follow the live structure:
// mutating a trie while ranging over it is unsupported.
package trie
