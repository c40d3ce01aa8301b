package heap

// coalesce merges block — whose tags are already set to (size, free) — with any
// free adjacent neighbor, choosing one of four cases by (prevAllocated,
// nextAllocated), and returns the address of the resulting free block (which is on
// exactly one bin list and has no free adjacent neighbor of its own).
func (hp *Heap) coalesce(block uint32) uint32 {
	prev := prevBlock(hp.h, block)
	next := nextBlock(hp.h, block)
	prevAlloc := blockAlloc(hp.h, prev)
	nextAlloc := blockAlloc(hp.h, next)
	size := blockSize(hp.h, block)

	switch {
	case prevAlloc && nextAlloc:
		// Case 1: no free neighbor, just list it.
		hp.insertFree(block, size)
		return block

	case prevAlloc && !nextAlloc:
		// Case 2: absorb next. The merged block's header is block's own header;
		// its footer is next's old footer, now reached via the new combined size.
		nextSize := blockSize(hp.h, next)
		hp.deleteFree(next)
		size += nextSize
		writeTags(hp.h, block, size, false)
		hp.insertFree(block, size)
		return block

	case !prevAlloc && nextAlloc:
		// Case 3: absorb prev. The merged block's header is prev's header; its
		// footer is block's old footer, now reached via the new combined size
		// starting from prev.
		prevSize := blockSize(hp.h, prev)
		hp.deleteFree(prev)
		size += prevSize
		writeTags(hp.h, prev, size, false)
		hp.insertFree(prev, size)
		return prev

	default:
		// Case 4: absorb both. Header is prev's, footer is next's old footer.
		prevSize := blockSize(hp.h, prev)
		nextSize := blockSize(hp.h, next)
		hp.deleteFree(prev)
		hp.deleteFree(next)
		size += prevSize + nextSize
		writeTags(hp.h, prev, size, false)
		hp.insertFree(prev, size)
		return prev
	}
}
