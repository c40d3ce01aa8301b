package heap

// listIndex maps a block size to one of the NumBins segregated size classes: start
// at 0, and while size-1 is still greater than 1 and the index hasn't hit the top
// bin, halve it and advance. This puts size 1-2 in bin 0, 3-4 in bin 1, 5-8 in
// bin 2, and so on, with everything >= 2^NumBins landing in the last bin. size
// must be strictly positive; it is never called with 0 in this package.
func listIndex(size uint32) int {
	idx := 0
	v := size - 1
	for idx < NumBins-1 && v > 1 {
		v >>= 1
		idx++
	}
	return idx
}
