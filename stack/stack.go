// Package stack implements a last-in, first-out stack backed by a slice.
package stack

import (
	"fmt"
	"iter"

	"linear_structures/errs"
)

// Stack keeps its top element at the end of the slice.
type Stack[T any] struct {
	elements []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{
		elements: []T{},
	}
}

func (s *Stack[T]) Push(x T) {
	s.elements = append(s.elements, x)
}

// Pop removes and returns the most recently pushed element.
func (s *Stack[T]) Pop() (T, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, errs.Empty("pop")
	}
	last := len(s.elements) - 1
	x := s.elements[last]
	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return x, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.elements) == 0 {
		var zero T
		return zero, errs.Empty("peek")
	}
	return s.elements[len(s.elements)-1], nil
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

func (s *Stack[T]) Len() uint64 {
	return uint64(len(s.elements))
}

// All iterates from the bottom of the stack to the top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range s.elements {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward iterates from the top of the stack to the bottom, the order in
// which Pop would return the elements.
func (s *Stack[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.elements) - 1; i >= 0; i-- {
			if !yield(s.elements[i]) {
				return
			}
		}
	}
}

// Search returns the 1-based position of target counted from the top of s (the
// top element is at position 1), or -1 if target is not in s.
func Search[T comparable](s *Stack[T], target T) int {
	var pos = 1
	for x := range s.Backward() {
		if x == target {
			return pos
		}
		pos++
	}
	return -1
}

// String renders the stack bottom first, e.g. "[a b c]".
func (s *Stack[T]) String() string {
	return fmt.Sprint(s.elements)
}
