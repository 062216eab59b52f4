package heap_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	hp "github.com/hankgalt/binheap/pkg/heap"
)

func TestSmallestK(t *testing.T) {
	nums := []int{5, 8, 1, 2, 7, 4, 6}
	require.Equal(t, []int{1, 2, 4}, hp.SmallestK(nums, 3))
	require.Equal(t, []int{5, 8, 1, 2, 7, 4, 6}, nums)

	require.Equal(t, []int{1, 2, 4, 5, 6, 7, 8}, hp.SmallestK(nums, 20))
	require.Empty(t, hp.SmallestK(nums, 0))
	require.NotNil(t, hp.SmallestK([]int{}, 2))
}

func TestLargestK(t *testing.T) {
	offsets := []int64{30, 10, 50, 20, 40, 50}
	require.Equal(t, []int64{50, 50, 40}, hp.LargestK(offsets, 3))
	require.Equal(t, []int64{50}, hp.LargestK(offsets, 1))
	require.Empty(t, hp.LargestK(offsets, -1))
	require.Empty(t, hp.LargestK([]int64(nil), 4))
}

func TestSort(t *testing.T) {
	words := []string{"pear", "apple", "fig", "kiwi", "apple"}

	asc := hp.Sort(words, false)
	expected := slices.Clone(words)
	slices.Sort(expected)
	require.Equal(t, expected, asc)

	desc := hp.Sort(words, true)
	slices.Reverse(expected)
	require.Equal(t, expected, desc)

	require.Equal(t, []string{"pear", "apple", "fig", "kiwi", "apple"}, words)
	require.Empty(t, hp.Sort([]string{}, true))
}
