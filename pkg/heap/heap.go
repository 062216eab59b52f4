package heap

import "errors"

const ERR_EMPTY_HEAP = "heap: empty heap"

var ErrEmptyHeap = errors.New(ERR_EMPTY_HEAP)

const (
	OpExtract = "extract"
	OpPeek    = "peek"
)

// Heap is an array backed binary heap ordered by a caller supplied
// predicate. before(a, b) reports whether a must sit above b.
//
// A Heap is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Heap[T any] struct {
	items  []T
	before func(a, b T) bool
	obs    Observer
}

// New returns an empty heap ordered by before. It panics if before is nil.
func New[T any](before func(a, b T) bool, opts ...Option) *Heap[T] {
	if before == nil {
		panic("heap: nil order predicate")
	}

	o := buildOptions(opts)
	return &Heap[T]{
		items:  make([]T, 0, o.capacity),
		before: before,
		obs:    o.observer,
	}
}

// Insert adds elements one at a time, in argument order.
func (h *Heap[T]) Insert(elements ...T) {
	for _, e := range elements {
		h.items = append(h.items, e)
		h.upHeapify(len(h.items) - 1)
		if h.obs != nil {
			h.obs.Inserted(len(h.items))
		}
	}
}

// Extract removes and returns the root element.
func (h *Heap[T]) Extract() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		if h.obs != nil {
			h.obs.Empty(OpExtract)
		}
		return zero, ErrEmptyHeap
	}

	h.swap(0, n-1)
	root := h.items[n-1]
	h.items[n-1] = zero // avoid memory leak
	h.items = h.items[:n-1]
	h.downHeapify(0)

	if h.obs != nil {
		h.obs.Extracted(len(h.items))
	}
	return root, nil
}

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		if h.obs != nil {
			h.obs.Empty(OpPeek)
		}
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.items[0], nil
}

func (h *Heap[T]) Count() int { return len(h.items) }

func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Drain extracts every element and returns them in extraction order.
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, len(h.items))
	for len(h.items) > 0 {
		v, _ := h.Extract()
		out = append(out, v)
	}
	return out
}

// IsProper reports whether no child outranks its parent anywhere in the heap.
func (h *Heap[T]) IsProper() bool {
	n := len(h.items)
	for p := 0; p < n; p++ {
		l, r := left(p), right(p)
		if l < n && h.before(h.items[l], h.items[p]) {
			return false
		}
		if r < n && h.before(h.items[r], h.items[p]) {
			return false
		}
	}
	return true
}

// upHeapify repairs every ancestor of pos, root included. The walk never
// stops early: each level is re-checked whether or not the level below
// swapped.
func (h *Heap[T]) upHeapify(pos int) {
	for {
		h.repair(pos)
		if pos == 0 {
			return
		}
		pos = parent(pos)
	}
}

// downHeapify sinks the element at pos until it outranks its children.
func (h *Heap[T]) downHeapify(pos int) {
	for pos < len(h.items) {
		next := h.repair(pos)
		if next < 0 {
			return
		}
		pos = next
	}
}

// repair restores the heap condition between pos and its children and
// returns the child position that was swapped, or -1.
func (h *Heap[T]) repair(pos int) int {
	n := len(h.items)
	l, r := left(pos), right(pos)
	if l >= n {
		return -1
	}

	if r < n && h.before(h.items[r], h.items[l]) && h.before(h.items[r], h.items[pos]) {
		h.swap(pos, r)
		return r
	}
	if h.before(h.items[l], h.items[pos]) {
		h.swap(pos, l)
		return l
	}
	return -1
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func left(p int) int   { return 2*p + 1 }
func right(p int) int  { return 2*p + 2 }
func parent(p int) int { return (p - 1) / 2 }
