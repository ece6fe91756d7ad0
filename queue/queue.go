// Package queue implements a first-in, first-out queue on top of two stacks.
package queue

import (
	"fmt"
	"iter"

	"github.com/goose-lang/primitive"

	"linear_structures/errs"
	"linear_structures/stack"
)

// Queue receives new elements on back and serves them from front. The logical
// order is front from top to bottom, followed by back from bottom to top.
//
// Queue is a small handle; copies share the same elements.
type Queue[T any] struct {
	back  *stack.Stack[T]
	front *stack.Stack[T]
}

func New[T any]() Queue[T] {
	return Queue[T]{
		back:  stack.New[T](),
		front: stack.New[T](),
	}
}

// Offer adds x at the back of the queue.
func (q Queue[T]) Offer(x T) {
	q.back.Push(x)
}

// emptyBack moves every element of back onto front, reversing it so the
// oldest element ends up on top.
func (q Queue[T]) emptyBack() {
	for {
		x, err := q.back.Pop()
		if err != nil {
			break
		}
		q.front.Push(x)
	}
}

// refill makes sure front is non-empty if the queue is. It reports whether
// there is an element to serve.
func (q Queue[T]) refill() bool {
	if q.front.IsEmpty() {
		q.emptyBack()
	}
	return !q.front.IsEmpty()
}

// Poll removes and returns the oldest element. Each element is moved between
// the stacks at most once, so Poll takes amortized constant time.
func (q Queue[T]) Poll() (T, error) {
	if !q.refill() {
		var zero T
		return zero, errs.Empty("poll")
	}
	x, err := q.front.Pop()
	primitive.Assert(err == nil)
	return x, nil
}

// Peek returns the oldest element without removing it.
func (q Queue[T]) Peek() (T, error) {
	if !q.refill() {
		var zero T
		return zero, errs.Empty("peek")
	}
	x, err := q.front.Peek()
	primitive.Assert(err == nil)
	return x, nil
}

func (q Queue[T]) IsEmpty() bool {
	return q.front.IsEmpty() && q.back.IsEmpty()
}

func (q Queue[T]) Len() uint64 {
	return q.front.Len() + q.back.Len()
}

// All iterates from the front of the queue to the back without modifying it.
func (q Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range q.front.Backward() {
			if !yield(x) {
				return
			}
		}
		for x := range q.back.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Contains reports whether x is waiting anywhere in q.
func Contains[T comparable](q Queue[T], x T) bool {
	for y := range q.All() {
		if y == x {
			return true
		}
	}
	return false
}

// Values returns the elements from front to back in a new slice.
func (q Queue[T]) Values() []T {
	var out = make([]T, 0, q.Len())
	for x := range q.All() {
		out = append(out, x)
	}
	return out
}

// String renders the queue front first, e.g. "[a b c]".
func (q Queue[T]) String() string {
	return fmt.Sprint(q.Values())
}
