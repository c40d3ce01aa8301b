package heap

import "github.com/arenabyte/segalloc/internal/host"

// Free blocks overlay their list pointers on the first two double-words of their
// own payload: pred at payload+0, succ at payload+DSize. Each pointer is a 4-byte
// (uint32) heap offset, but each gets its own double-word slot, which together with
// the header and footer gives the minimum block size of 3*DSize=24 bytes.

func predOf(h host.Host, block uint32) uint32 { return h.ReadUint32(payloadOf(block)) }
func succOf(h host.Host, block uint32) uint32 { return h.ReadUint32(payloadOf(block) + DSize) }

func setPred(h host.Host, block, v uint32) { h.WriteUint32(payloadOf(block), v) }
func setSucc(h host.Host, block, v uint32) { h.WriteUint32(payloadOf(block)+DSize, v) }

// insertFree splices block into bin[listIndex(size)] in ascending-size order: walk
// from the head while the next candidate is strictly smaller than size, then insert
// after the last such candidate (or at the head, if there was none).
func (hp *Heap) insertFree(block, size uint32) {
	idx := listIndex(size)

	var prev uint32 // 0 == no predecessor yet
	cur := hp.bins[idx]
	for cur != 0 && blockSize(hp.h, cur) < size {
		prev = cur
		cur = succOf(hp.h, cur)
	}

	setSucc(hp.h, block, cur)
	setPred(hp.h, block, prev)
	if cur != 0 {
		setPred(hp.h, cur, block)
	}
	if prev != 0 {
		setSucc(hp.h, prev, block)
	} else {
		hp.bins[idx] = block
	}
}

// deleteFree removes block from whichever bin it currently occupies, bridging its
// neighbors. block's own pred/succ fields are left stale; callers never read them
// again after a delete without first re-inserting.
func (hp *Heap) deleteFree(block uint32) {
	idx := listIndex(blockSize(hp.h, block))
	prev := predOf(hp.h, block)
	next := succOf(hp.h, block)

	if prev == 0 {
		hp.bins[idx] = next
	} else {
		setSucc(hp.h, prev, next)
	}
	if next != 0 {
		setPred(hp.h, next, prev)
	}
}
