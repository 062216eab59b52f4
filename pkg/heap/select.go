package heap

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// SmallestK returns the k smallest values of in, ascending.
// A max-heap bounded at k elements holds the current candidates.
func SmallestK[T constraints.Ordered](in []T, k int) []T {
	if len(in) == 0 || k <= 0 {
		return []T{}
	}

	maxHeap := NewMaxHeap[T](WithCapacity(min(k, len(in)) + 1))
	for _, v := range in {
		maxHeap.Insert(v)
		// if heap size exceeds k, pop the largest
		if maxHeap.Count() > k {
			_, _ = maxHeap.ExtractMax()
		}
	}

	out := maxHeap.Drain()
	slices.Reverse(out)
	return out
}

// LargestK returns the k largest values of in, descending.
func LargestK[T constraints.Ordered](in []T, k int) []T {
	if len(in) == 0 || k <= 0 {
		return []T{}
	}

	minHeap := NewMinHeap[T](WithCapacity(min(k, len(in)) + 1))
	for _, v := range in {
		minHeap.Insert(v)
		if minHeap.Count() > k {
			_, _ = minHeap.ExtractMin()
		}
	}

	out := minHeap.Drain()
	slices.Reverse(out)
	return out
}

// Sort returns a heap sorted copy of in, ascending unless desc is set.
func Sort[T constraints.Ordered](in []T, desc bool) []T {
	if desc {
		h := NewMaxHeap[T](WithCapacity(len(in)))
		h.Insert(in...)
		return h.Drain()
	}
	h := NewMinHeap[T](WithCapacity(len(in)))
	h.Insert(in...)
	return h.Drain()
}
