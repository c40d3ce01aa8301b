// Command segheap is a small demonstration of the segalloc allocator: it wires
// up a byte-backed host, runs a short scripted sequence of allocations, frees,
// and a reallocation, and prints a stats summary after each step.
package main

import (
	"fmt"
	"os"

	"github.com/arenabyte/segalloc/internal/bytehost"
	"github.com/arenabyte/segalloc/pkg/segalloc"
)

func main() {
	h := bytehost.New(1 << 20)

	a, err := segalloc.New(h, segalloc.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "segheap: failed to initialize allocator: %v\n", err)
		os.Exit(1)
	}

	report := func(step string) {
		s := a.Stats()
		fmt.Printf("%-28s blocks=%-4d free=%-4d in-use=%-8d free-bytes=%-8d heap=%d\n",
			step, s.BlockCount, s.FreeBlockCount, s.BytesInUse, s.BytesFree, s.HeapBytes)
	}

	report("init")

	first, ok := a.Allocate(64)
	if !ok {
		fmt.Fprintln(os.Stderr, "segheap: allocate(64) failed")
		os.Exit(1)
	}
	report("allocate(64)")

	second, ok := a.Allocate(256)
	if !ok {
		fmt.Fprintln(os.Stderr, "segheap: allocate(256) failed")
		os.Exit(1)
	}
	report("allocate(256)")

	a.Free(first)
	report("free(first)")

	grown, ok := a.Reallocate(second, 1024)
	if !ok {
		fmt.Fprintln(os.Stderr, "segheap: reallocate(second, 1024) failed")
		os.Exit(1)
	}
	report("reallocate(second, 1024)")

	a.Free(grown)
	report("free(grown)")
}
