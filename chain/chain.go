// Package chain implements a singly linked list that can be used as either a
// stack (Push/Pop) or a queue (Offer/Poll).
package chain

import (
	"fmt"
	"iter"
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"

	"linear_structures/errs"
)

type node[T any] struct {
	elem T
	next *node[T]
}

// Chain is a singly linked list with references to both ends.
//
// head is nil exactly when tail is nil, which is exactly when size is 0.
// Following next from head reaches tail, whose next is nil.
//
// The zero value is an empty chain. A Chain is not safe for concurrent use.
type Chain[T any] struct {
	head *node[T]
	tail *node[T]
	size uint64
}

func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

func (c *Chain[T]) IsEmpty() bool {
	return c.head == nil
}

func (c *Chain[T]) Len() uint64 {
	return c.size
}

// Push inserts elem at the head.
func (c *Chain[T]) Push(elem T) {
	n := &node[T]{elem: elem, next: c.head}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
	c.size = std.SumAssumeNoOverflow(c.size, 1)
}

func (c *Chain[T]) removeHead(op string) (T, error) {
	if c.head == nil {
		var zero T
		return zero, errs.Empty(op)
	}
	primitive.Assert(c.size > 0)
	n := c.head
	c.head = n.next
	// drop the link so the removed node doesn't keep the rest of the chain alive
	n.next = nil
	c.size--
	if c.head == nil {
		primitive.Assert(c.size == 0)
		c.tail = nil
	}
	return n.elem, nil
}

// Pop removes and returns the element at the head, which is the most recently
// pushed element if the chain is only used with Push.
func (c *Chain[T]) Pop() (T, error) {
	return c.removeHead("pop")
}

// Offer inserts elem at the tail.
func (c *Chain[T]) Offer(elem T) {
	n := &node[T]{elem: elem}
	if c.tail == nil {
		c.head = n
		c.tail = n
	} else {
		c.tail.next = n
		c.tail = n
	}
	c.size = std.SumAssumeNoOverflow(c.size, 1)
}

// Poll is the queue name for Pop: it removes the element at the head, which is
// the oldest offered element if the chain is only used with Offer.
func (c *Chain[T]) Poll() (T, error) {
	return c.removeHead("poll")
}

// Peek returns the element at the head without removing it.
func (c *Chain[T]) Peek() (T, error) {
	if c.head == nil {
		var zero T
		return zero, errs.Empty("peek")
	}
	return c.head.elem, nil
}

// All iterates over the elements from head to tail. Each call starts over from
// the current head. The chain must not be modified during iteration.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Contains reports whether elem appears anywhere in c.
func Contains[T comparable](c *Chain[T], elem T) bool {
	var found = false
	for x := range c.All() {
		if x == elem {
			found = true
			break
		}
	}
	return found
}

// String renders the elements from head to tail, e.g. "A -> B -> C". It is
// meant for display and is not parsed back.
func (c *Chain[T]) String() string {
	var b strings.Builder
	var first = true
	for x := range c.All() {
		if !first {
			b.WriteString(" -> ")
		}
		first = false
		fmt.Fprint(&b, x)
	}
	return b.String()
}
