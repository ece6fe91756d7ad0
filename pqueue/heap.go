// Package pqueue implements a priority queue as an explicit binary min-heap.
package pqueue

import (
	"cmp"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"

	"linear_structures/errs"
)

// Heap always yields its smallest element first.
//
// The elements are stored in level order: for every index i, neither
// elems[2i+1] nor elems[2i+2] is less than elems[i]. Equal elements may come
// out in any order.
type Heap[T any] struct {
	elems []T
	less  func(a, b T) bool
}

// New returns an empty heap ordered by the natural order of T.
func New[T cmp.Ordered]() *Heap[T] {
	return NewFunc(cmp.Less[T])
}

// NewFunc returns an empty heap ordered by less, which must be a strict weak
// ordering.
func NewFunc[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{
		elems: []T{},
		less:  less,
	}
}

func (h *Heap[T]) IsEmpty() bool {
	return len(h.elems) == 0
}

func (h *Heap[T]) Len() uint64 {
	return uint64(len(h.elems))
}

func (h *Heap[T]) swap(i uint64, j uint64) {
	old_j := h.elems[j]
	h.elems[j] = h.elems[i]
	h.elems[i] = old_j
}

func parent(i uint64) uint64 {
	return (i - 1) / 2
}

func (h *Heap[T]) siftUp(i0 uint64) {
	var i = i0
	for i > 0 {
		p := parent(i)
		if !h.less(h.elems[i], h.elems[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[T]) siftDown(i0 uint64) {
	l := uint64(len(h.elems))
	var i = i0
	for {
		left := std.SumAssumeNoOverflow(2*i, 1)
		if left >= l {
			break
		}
		// pick the smaller child
		var child = left
		if right := left + 1; right < l && h.less(h.elems[right], h.elems[left]) {
			child = right
		}
		if !h.less(h.elems[child], h.elems[i]) {
			break
		}
		h.swap(i, child)
		i = child
	}
}

// Insert adds elem to the heap in O(log n) time.
func (h *Heap[T]) Insert(elem T) {
	h.elems = append(h.elems, elem)
	h.siftUp(uint64(len(h.elems)) - 1)
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.elems) == 0 {
		var zero T
		return zero, errs.Empty("peek")
	}
	return h.elems[0], nil
}

// ExtractMin removes and returns the minimum element in O(log n) time.
func (h *Heap[T]) ExtractMin() (T, error) {
	if len(h.elems) == 0 {
		var zero T
		return zero, errs.Empty("extract min")
	}
	top := h.elems[0]
	last := uint64(len(h.elems)) - 1
	h.elems[0] = h.elems[last]
	// clear the vacated slot so it doesn't hold on to a removed element
	var zero T
	h.elems[last] = zero
	h.elems = h.elems[:last]
	if last > 0 {
		h.siftDown(0)
	}
	primitive.Assert(uint64(len(h.elems)) == last)
	return top, nil
}

// Drain extracts every element, returning them in non-decreasing order. The
// heap is empty afterward.
func (h *Heap[T]) Drain() []T {
	var out = make([]T, 0, len(h.elems))
	for !h.IsEmpty() {
		x, err := h.ExtractMin()
		primitive.Assert(err == nil)
		out = append(out, x)
	}
	return out
}
