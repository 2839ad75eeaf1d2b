package imglab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence_DefaultSize(t *testing.T) {
	require.Equal(t,
		[]int{100, 134, 180, 241, 324, 434, 583, 781, 1048, 1406, 1886, 2530, 3394, 4553, 6107, 8192},
		Sequence(100, 8192, SequenceDefaultSize))
	require.Equal(t,
		[]int{8192, 6107, 4553, 3394, 2530, 1886, 1406, 1048, 781, 583, 434, 324, 241, 180, 134, 100},
		Sequence(8192, 100, SequenceDefaultSize))
}

func TestSequence_EmptyForNonPositiveSize(t *testing.T) {
	require.Empty(t, Sequence(100, 8192, 0))
	require.Empty(t, Sequence(8192, 100, 0))
	require.Empty(t, Sequence(100, 8192, -1))
	require.Empty(t, Sequence(8192, 100, -1))
}

func TestSequence_Ascending(t *testing.T) {
	require.Equal(t, []int{100}, Sequence(100, 8192, 1))
	require.Equal(t, []int{100, 8192}, Sequence(100, 8192, 2))
	require.Equal(t, []int{100, 905, 8192}, Sequence(100, 8192, 3))
	require.Equal(t, []int{100, 434, 1886, 8192}, Sequence(100, 8192, 4))
	require.Equal(t, []int{
		100, 115, 133, 153, 177, 204, 235, 270, 312, 359, 414, 477, 550, 634, 731, 843,
		972, 1120, 1291, 1488, 1716, 1978, 2280, 2628, 3029, 3492, 4025, 4640, 5348, 6165, 7107, 8192,
	}, Sequence(100, 8192, 32))
}

func TestSequence_Descending(t *testing.T) {
	require.Equal(t, []int{8192}, Sequence(8192, 100, 1))
	require.Equal(t, []int{8192, 100}, Sequence(8192, 100, 2))
	require.Equal(t, []int{8192, 905, 100}, Sequence(8192, 100, 3))
	require.Equal(t, []int{8192, 1886, 434, 100}, Sequence(8192, 100, 4))
	require.Equal(t, []int{70, 68, 66, 64, 62, 60}, Sequence(70, 60, 6))
}

func TestSequence_Endpoints(t *testing.T) {
	require.Equal(t, []int{37}, Sequence(37, 4100, 1))
	for n := 2; n <= 40; n++ {
		seq := Sequence(37, 4100, n)
		require.Len(t, seq, n)
		require.Equal(t, 37, seq[0])
		require.Equal(t, 4100, seq[n-1])
		for i := 1; i < n; i++ {
			require.GreaterOrEqual(t, seq[i], seq[i-1])
		}
	}
}

func TestSequence_ConstantWhenEndpointsMatch(t *testing.T) {
	require.Equal(t, []int{500, 500, 500, 500}, Sequence(500, 500, 4))
}

func TestSequence_LargeEndpointsStayExact(t *testing.T) {
	big := 1<<53 + 1
	seq := Sequence(1, big, 3)
	require.Equal(t, 1, seq[0])
	require.Equal(t, big, seq[2])
	require.Greater(t, seq[1], 1)
	require.Less(t, seq[1], big)

	seq = Sequence(1, math.MaxInt64, 3)
	require.Equal(t, []int{1, 3037000500, math.MaxInt64}, seq)

	seq = Sequence(1, math.MaxInt64, SequenceDefaultSize)
	require.Equal(t, math.MaxInt64, seq[len(seq)-1])
	for i := 1; i < len(seq); i++ {
		require.GreaterOrEqual(t, seq[i], seq[i-1])
	}

	seq = Sequence(math.MaxInt64, 1, SequenceDefaultSize)
	require.Equal(t, math.MaxInt64, seq[0])
	require.Equal(t, 1, seq[len(seq)-1])
	for i := 1; i < len(seq); i++ {
		require.LessOrEqual(t, seq[i], seq[i-1])
	}
}
