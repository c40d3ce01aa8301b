package heap

import (
	"log"

	"github.com/arenabyte/segalloc/internal/host"
)

// Init lays down the heap prologue/epilogue sentinels on hst and performs the first
// chunk-sized extension, returning a ready-to-use Heap. cfg may be nil, in which
// case DefaultConfig is used.
//
// The initial layout, in order, is: one padding word (keeps the first real payload
// 8-byte aligned), an 8-byte allocated "prologue" block (header+footer, no
// payload), and a zero-size allocated "epilogue" header. These sentinels let the
// coalescer inspect neighbors unconditionally at either end of the heap without a
// special case: the prologue's allocated footer blocks left-coalescing, and the
// epilogue's allocated header blocks right-coalescing.
func Init(hst host.Host, cfg *Config) (*Heap, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	heapStart, err := hst.Extend(4 * WordSize)
	if err != nil {
		log.Printf("heap: initial reservation of %d bytes refused by host: %v", 4*WordSize, err)
		return nil, oomError(4*WordSize, "failed to reserve padding/prologue/epilogue")
	}

	hp := &Heap{h: hst, heapStart: heapStart}

	hst.WriteUint32(heapStart, 0) // padding word

	prologue := heapStart + WordSize
	writeTags(hst, prologue, DSize, true)

	hp.firstBlk = prologue + DSize
	hp.epilogue = hp.firstBlk
	hst.WriteUint32(hp.epilogue, packTag(0, true))

	if _, err := hp.extendHeap(cfg.InitialExtension / WordSize); err != nil {
		return nil, err
	}

	return hp, nil
}

// Allocate reserves at least size bytes and returns the payload pointer, or
// (0, false) on a zero-size request or when the host cannot extend the heap far
// enough to satisfy the request.
func (hp *Heap) Allocate(size uint32) (uint32, bool) {
	if size == 0 {
		return 0, false
	}

	asize := blockSizeFor(size)

	if block := hp.findFit(asize); block != 0 {
		hp.place(block, asize)
		return payloadOf(block), true
	}

	words := maxu32(asize, ChunkSize) / WordSize
	block, err := hp.extendHeap(words)
	if err != nil {
		return 0, false
	}

	hp.place(block, asize)
	return payloadOf(block), true
}

// Free releases the block at ptr, which must have come from Allocate or
// Reallocate on this same Heap. ptr == 0 is a silent no-op.
func (hp *Heap) Free(ptr uint32) {
	if ptr == 0 {
		return
	}

	block := blockOf(ptr)
	size := blockSize(hp.h, block)
	writeTags(hp.h, block, size, false)
	hp.coalesce(block)
}

// Reallocate resizes the allocation at ptr to hold at least size bytes, preserving
// its existing content (truncated if shrinking). ptr == 0 behaves like Allocate;
// size == 0 behaves like Free and returns (0, true).
func (hp *Heap) Reallocate(ptr uint32, size uint32) (uint32, bool) {
	if ptr == 0 {
		return hp.Allocate(size)
	}
	if size == 0 {
		hp.Free(ptr)
		return 0, true
	}

	block := blockOf(ptr)
	oldsize := blockSize(hp.h, block)
	newsize := blockSizeFor(size)

	if newsize <= oldsize {
		// No split optimization on shrink, intentionally: the block stays
		// oversized but every invariant still holds.
		return ptr, true
	}

	if next := nextBlock(hp.h, block); !blockAlloc(hp.h, next) {
		nextSize := blockSize(hp.h, next)
		combined := oldsize + nextSize
		if combined >= newsize {
			hp.deleteFree(next)
			// writeTags re-derives the footer address from the size just
			// written to the header, never from a cached offset — required
			// because the footer moved when the block grew.
			writeTags(hp.h, block, combined, true)
			return ptr, true
		}
	}

	newPtr, ok := hp.Allocate(size)
	if !ok {
		return 0, false
	}

	copySize := oldsize - DSize
	if size < copySize {
		copySize = size
	}
	data := hp.h.ReadBytes(ptr, copySize)
	hp.h.WriteBytes(newPtr, data)

	hp.Free(ptr)
	return newPtr, true
}

// blockSizeFor rounds a requested payload size up to the total block size that
// will hold it: the minimum block if the payload would fit in the free-list
// pointer overlay, otherwise payload+overhead aligned to 8 bytes.
func blockSizeFor(size uint32) uint32 {
	if size <= 2*DSize {
		return MinBlock
	}
	return alignUp(size+DSize, Alignment)
}

func maxu32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
