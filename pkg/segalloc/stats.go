package segalloc

// Stats summarizes a single snapshot of the allocator's block layout, for
// diagnostics and the demo CLI — nothing in Allocate, Free, or Reallocate
// consults it.
type Stats struct {
	BlockCount     int
	FreeBlockCount int
	BytesInUse     uint32
	BytesFree      uint32
	HeapBytes      uint32
}

// Stats walks the current heap and summarizes it. It is O(number of blocks).
func (a *Allocator) Stats() Stats {
	var s Stats
	for _, b := range a.hp.Walk() {
		s.BlockCount++
		if b.Allocated {
			s.BytesInUse += b.Size
		} else {
			s.FreeBlockCount++
			s.BytesFree += b.Size
		}
	}
	start, end := a.Bounds()
	s.HeapBytes = end - start
	return s
}
