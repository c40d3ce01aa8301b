package heap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenabyte/segalloc/internal/bytehost"
	"github.com/arenabyte/segalloc/internal/heap"
)

func newHeap(t *testing.T, limit uint32) (*heap.Heap, *bytehost.Host) {
	t.Helper()
	h := bytehost.New(limit)
	hp, err := heap.Init(h, nil)
	require.NoError(t, err)
	return hp, h
}

func tagWord(h *bytehost.Host, addr uint32) uint32 {
	return h.ReadUint32(addr)
}

func tagSizeOf(h *bytehost.Host, addr uint32) uint32 {
	return h.ReadUint32(addr) &^ 7
}

// checkInvariants verifies I1-I4 and I6 against the heap's current state (I5,
// payload alignment, is checked by TestAllocationsAreEightByteAligned). It is called
// after every mutating operation in this file's tests, since these invariants
// must hold between any two public calls.
func checkInvariants(t *testing.T, hp *heap.Heap, h *bytehost.Host) {
	t.Helper()

	start, end := hp.Bounds()
	blocks := hp.Walk()

	var sum uint32
	prevFree := false

	for _, b := range blocks {
		// I6: size multiple of 8 and >= MinBlock.
		assert.Zero(t, b.Size%8, "block 0x%x size %d not a multiple of 8", b.Block, b.Size)
		assert.GreaterOrEqual(t, b.Size, uint32(heap.MinBlock), "block 0x%x smaller than MinBlock", b.Block)

		// I1: header == footer.
		header := tagWord(h, b.Block)
		footer := tagWord(h, b.Block+b.Size-heap.WordSize)
		assert.Equal(t, header, footer, "I1 violated at block 0x%x", b.Block)

		// I2: no two adjacent free blocks.
		if !b.Allocated {
			assert.False(t, prevFree, "I2 violated: block 0x%x is free and follows a free block", b.Block)
		}
		prevFree = !b.Allocated

		sum += b.Size
	}

	// I4: padding word (4B) + prologue (8B) + all walked blocks + epilogue
	// header word (4B) spans the heap.
	assert.Equal(t, end-start, sum+16, "I4 violated: block sizes don't sum to heap span")

	// I3: every free block is present in exactly the bin its size maps to, and
	// each bin list is ascending by size.
	for idx := 0; idx < heap.NumBins; idx++ {
		list := hp.FreeListBlocks(idx)
		for i, b := range list {
			assert.Equal(t, idx, binIndexOf(hp, b), "block 0x%x listed in bin %d but maps elsewhere", b, idx)
			if i > 0 {
				assert.LessOrEqual(t, tagSizeOf(h, list[i-1]), tagSizeOf(h, b), "bin %d not ascending by size", idx)
			}
		}
	}
	for _, b := range blocks {
		if b.Allocated {
			continue
		}
		assert.Contains(t, hp.FreeListBlocks(b.BinIndex), b.Block, "free block 0x%x missing from its bin", b.Block)
	}
}

func binIndexOf(hp *heap.Heap, block uint32) int {
	for _, b := range hp.Walk() {
		if b.Block == block {
			return b.BinIndex
		}
	}
	return -1
}
