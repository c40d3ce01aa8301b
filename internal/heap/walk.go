package heap

// BlockReport describes one block encountered while walking the heap. It exists
// for diagnostics and invariant-checking tests; nothing in Allocate, Free, or
// Reallocate consults it.
type BlockReport struct {
	Block     uint32
	Size      uint32
	Allocated bool
	BinIndex  int // meaningful only when !Allocated
}

// Walk traverses every block from the first block after the prologue up to (but
// not including) the epilogue, in ascending address order.
func (hp *Heap) Walk() []BlockReport {
	var out []BlockReport
	for b := hp.firstBlk; b != hp.epilogue; b = nextBlock(hp.h, b) {
		size := blockSize(hp.h, b)
		alloc := blockAlloc(hp.h, b)
		rep := BlockReport{Block: b, Size: size, Allocated: alloc}
		if !alloc {
			rep.BinIndex = listIndex(size)
		}
		out = append(out, rep)
	}
	return out
}

// FreeListBlocks returns every block currently linked into bin[idx], in list
// order, letting tests check I3's list-membership invariant directly against the
// bin pointers rather than indirectly via Walk.
func (hp *Heap) FreeListBlocks(idx int) []uint32 {
	var out []uint32
	for b := hp.bins[idx]; b != 0; b = succOf(hp.h, b) {
		out = append(out, b)
	}
	return out
}

// Bounds exposes the host's current [start, end) byte range.
func (hp *Heap) Bounds() (uint32, uint32) {
	return hp.h.Bounds()
}

// PayloadPointer converts a block address (as reported by Walk) to the payload
// pointer a caller of Allocate would have received for it.
func PayloadPointer(block uint32) uint32 {
	return payloadOf(block)
}
