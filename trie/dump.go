package trie

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented listing of every node to w.
func (t *Trie[K, V]) Dump(w io.Writer) {
	t.dump(w, t.root, "ROOT", "")
}

func (t *Trie[K, V]) dump(w io.Writer, n *Node[K, V], tag string, indent string) {
	if n.present {
		fmt.Fprintf(w, "%s%s val=%v\n", indent, tag, n.value)
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, tag)
	}
	if n.next == nil {
		return
	}
	indent += strings.Repeat(" ", 2)
	n.next.Range(func(key K, child *Node[K, V]) bool {
		t.dump(w, child, fmt.Sprintf("[%v]", key), indent)
		return true
	})
}
