package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/go-mktrie/dict"
)

func main() {
	d := dict.New[string, int]()
	d.Set([]string{"c"}, 1)
	d.Set([]string{"a", "1"}, 3)
	d.Set([]string{"a", "2"}, 4)
	d.Set([]string{"a", "3"}, 5)
	d.Set([]string{"a", "2", "2"}, 6)
	d.Set([]string{"b", "b"}, 7)
	d.Set(nil, 0)

	d.DebugDump(os.Stdout)

	println("------")

	for keys, val := range d.All() {
		fmt.Printf("%q -> %v\n", keys, val)
	}

	println("------")

	d.Delete([]string{"a", "2", "2"})
	d.Delete([]string{"b", "b"})

	visitor := func(item dict.Item[string, int]) bool {
		fmt.Printf("%q\n", item.Keys)
		return true
	}
	d.Iter(visitor)

	fmt.Printf("len=%d\n", d.Len())
}
