package imglab

import "math"

// SequenceDefaultSize is the number of elements used when a range carries no explicit count.
const SequenceDefaultSize = 16

// Sequence returns size integers between first and last following a geometric
// progression. The first and last elements are exactly first and last; inner
// elements are rounded half to even and never leave the closed interval
// between them. first and last must be positive when size > 2.
func Sequence(first, last, size int) []int {
	switch {
	case size <= 0:
		return []int{}
	case size == 1:
		return []int{first}
	case size == 2:
		return []int{first, last}
	}

	ratio := math.Pow(float64(last)/float64(first), 1/float64(size-1))
	lo, hi := min(first, last), max(first, last)

	seq := make([]int, size)
	seq[0], seq[size-1] = first, last
	v := float64(first)
	for i := 1; i < size-1; i++ {
		v *= ratio
		seq[i] = clampRound(v, lo, hi)
	}
	return seq
}

// clampRound rounds v half to even without leaving [lo, hi]. Near the top of
// the int range float64 cannot hold hi exactly, so v may round past it.
func clampRound(v float64, lo, hi int) int {
	switch {
	case v >= float64(hi):
		return hi
	case v <= float64(lo):
		return lo
	}
	return int(math.RoundToEven(v))
}
