package heap

import "golang.org/x/exp/constraints"

// MaxHeap keeps the largest element at the root.
type MaxHeap[T constraints.Ordered] struct {
	engine *Heap[T]
}

func NewMaxHeap[T constraints.Ordered](opts ...Option) *MaxHeap[T] {
	return &MaxHeap[T]{engine: New(func(a, b T) bool { return a > b }, opts...)}
}

func (h *MaxHeap[T]) Insert(elements ...T) { h.engine.Insert(elements...) }

// ExtractMax removes and returns the largest element.
func (h *MaxHeap[T]) ExtractMax() (T, error) { return h.engine.Extract() }

// PeekMax returns the largest element.
func (h *MaxHeap[T]) PeekMax() (T, error) { return h.engine.Peek() }

func (h *MaxHeap[T]) Count() int     { return h.engine.Count() }
func (h *MaxHeap[T]) IsEmpty() bool  { return h.engine.IsEmpty() }
func (h *MaxHeap[T]) IsProper() bool { return h.engine.IsProper() }
func (h *MaxHeap[T]) Drain() []T     { return h.engine.Drain() }

// MinHeap keeps the smallest element at the root.
type MinHeap[T constraints.Ordered] struct {
	engine *Heap[T]
}

func NewMinHeap[T constraints.Ordered](opts ...Option) *MinHeap[T] {
	return &MinHeap[T]{engine: New(func(a, b T) bool { return a < b }, opts...)}
}

func (h *MinHeap[T]) Insert(elements ...T) { h.engine.Insert(elements...) }

// ExtractMin removes and returns the smallest element.
func (h *MinHeap[T]) ExtractMin() (T, error) { return h.engine.Extract() }

// PeekMin returns the smallest element.
func (h *MinHeap[T]) PeekMin() (T, error) { return h.engine.Peek() }

func (h *MinHeap[T]) Count() int     { return h.engine.Count() }
func (h *MinHeap[T]) IsEmpty() bool  { return h.engine.IsEmpty() }
func (h *MinHeap[T]) IsProper() bool { return h.engine.IsProper() }
func (h *MinHeap[T]) Drain() []T     { return h.engine.Drain() }
