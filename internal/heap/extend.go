package heap

import "log"

// extendHeap grows the heap by words words (rounded up to an even count, so the
// resulting byte size stays 8-byte aligned), seeds a fresh free block over the new
// region — overwriting the stale epilogue header with the new block's header — and
// writes a new epilogue at the new heap end. The new block is then coalesced with
// its predecessor, which handles the case where the block right before the old
// epilogue was already free.
func (hp *Heap) extendHeap(words uint32) (uint32, error) {
	if words%2 != 0 {
		words++
	}
	size := words * WordSize

	payload, err := hp.h.Extend(size)
	if err != nil {
		log.Printf("heap: extend by %d bytes refused by host: %v", size, err)
		return 0, oomError(size, "host refused to extend heap")
	}

	// Extend returns a payload pointer one word past the stale epilogue header,
	// so the new block's header goes where that epilogue word used to be.
	block := payload - WordSize
	writeTags(hp.h, block, size, false)

	newEpilogue := block + size
	hp.h.WriteUint32(newEpilogue, packTag(0, true))
	hp.epilogue = newEpilogue

	return hp.coalesce(block), nil
}
