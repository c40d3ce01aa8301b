package heap

import "testing"

func TestListIndex(t *testing.T) {
	cases := []struct {
		size uint32
		want int
	}{
		{1, 0}, {2, 0},
		{3, 1}, {4, 1},
		{5, 2}, {8, 2},
		{9, 3}, {16, 3},
		{17, 4}, {32, 4},
		{1 << 19, 18},
		{1 << 20, 19},
		{1 << 25, 19}, // well past the top bin, still capped
	}

	for _, c := range cases {
		if got := listIndex(c.size); got != c.want {
			t.Errorf("listIndex(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestListIndexNeverExceedsTopBin(t *testing.T) {
	for size := uint32(1); size < 1<<22; size *= 3 {
		if idx := listIndex(size); idx < 0 || idx >= NumBins {
			t.Fatalf("listIndex(%d) = %d out of range", size, idx)
		}
	}
}
