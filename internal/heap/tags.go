package heap

import "github.com/arenabyte/segalloc/internal/host"

// A boundary tag packs (size, alloc-bit) into one word: the low bit is the
// allocation flag, the remaining bits hold the block's total size (which is always
// a multiple of 8, so those low three bits are otherwise unused).

func packTag(size uint32, allocated bool) uint32 {
	if allocated {
		return size | 1
	}
	return size
}

func tagSize(word uint32) uint32 {
	return word &^ uint32(7)
}

func tagAlloc(word uint32) bool {
	return word&1 == 1
}

// headerAddr and footerAddr give the address of a block's two tags. footerAddr
// always re-reads the header rather than caching a previously-computed offset,
// which matters during in-place reallocation: the footer must be located using the
// *new* size after the header has already been rewritten.
func headerAddr(block uint32) uint32 {
	return block
}

func footerAddr(h host.Host, block uint32) uint32 {
	size := tagSize(h.ReadUint32(headerAddr(block)))
	return block + size - WordSize
}

func blockSize(h host.Host, block uint32) uint32 {
	return tagSize(h.ReadUint32(headerAddr(block)))
}

func blockAlloc(h host.Host, block uint32) bool {
	return tagAlloc(h.ReadUint32(headerAddr(block)))
}

// writeTags sets both the header and the footer of block to (size, allocated),
// deriving the footer address from the size being written rather than the block's
// previous size.
func writeTags(h host.Host, block uint32, size uint32, allocated bool) {
	tag := packTag(size, allocated)
	h.WriteUint32(headerAddr(block), tag)
	h.WriteUint32(block+size-WordSize, tag)
}

// payloadOf and blockOf convert between a block's header address and the payload
// pointer handed to callers (one word past the header).
func payloadOf(block uint32) uint32 {
	return block + WordSize
}

func blockOf(payload uint32) uint32 {
	return payload - WordSize
}

// nextBlock returns the address of the block immediately following block, derived
// purely from block's own size — O(1), no list traversal.
func nextBlock(h host.Host, block uint32) uint32 {
	return block + blockSize(h, block)
}

// prevBlock returns the address of the block immediately preceding block, found by
// reading the word just before block (that previous block's footer) for its size.
func prevBlock(h host.Host, block uint32) uint32 {
	prevSize := tagSize(h.ReadUint32(block - WordSize))
	return block - prevSize
}
