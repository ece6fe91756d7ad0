package main

import (
	"fmt"
	"io"

	"github.com/anchore/go-logger"

	"linear_structures/chain"
	"linear_structures/pqueue"
	"linear_structures/queue"
	"linear_structures/stack"
)

type demo struct {
	name string
	run  func(w io.Writer, log logger.Logger) error
}

var demos = []demo{
	{"chain-queue", chainQueue},
	{"chain-stack", chainStack},
	{"priority", priority},
	{"stack", games},
	{"queue", names},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

// chainQueue uses a chain first-in, first-out.
func chainQueue(w io.Writer, log logger.Logger) error {
	q := chain.New[string]()
	for _, s := range []string{"A", "B", "C", "D", "F"} {
		log.Debugf("offer %s", s)
		q.Offer(s)
	}
	fmt.Fprintln(w, "Queue:", q)
	return nil
}

// chainStack uses a chain last-in, first-out.
func chainStack(w io.Writer, log logger.Logger) error {
	s := chain.New[string]()
	for _, x := range []string{"A", "B", "C", "D", "F"} {
		log.Debugf("push %s", x)
		s.Push(x)
	}
	fmt.Fprintln(w, "Stack before pop:", s)
	x, err := s.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Popped:", x)
	fmt.Fprintln(w, "Stack after pop:", s)
	return nil
}

func priority(w io.Writer, log logger.Logger) error {
	pq := pqueue.New[string]()
	for _, s := range []string{"B", "C", "A", "F", "D"} {
		pq.Insert(s)
	}
	log.Debugf("inserted %d elements", pq.Len())
	for !pq.IsEmpty() {
		x, err := pq.ExtractMin()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, x)
	}
	return nil
}

func games(w io.Writer, log logger.Logger) error {
	s := stack.New[string]()
	fmt.Fprintln(w, "Is stack empty?", s.IsEmpty())
	for _, g := range []string{"Minecraft", "Skyrim", "DOOM", "Borderlands", "FFVII"} {
		s.Push(g)
	}
	fmt.Fprintln(w, "Current stack:", s)

	fav, err := s.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Popped game:", fav)

	if top, err := s.Peek(); err == nil {
		fmt.Fprintln(w, "Top of stack:", top)
	} else {
		log.Debugf("peek: %v", err)
		fmt.Fprintln(w, "Stack is empty.")
	}

	fmt.Fprintln(w, "Search result for 'Fallout76':", stack.Search(s, "Fallout76"))
	return nil
}

func names(w io.Writer, log logger.Logger) error {
	q := queue.New[string]()
	fmt.Fprintln(w, "Is queue empty?", q.IsEmpty())
	for _, name := range []string{"Karen", "Chad", "Steve", "Harold"} {
		q.Offer(name)
	}
	fmt.Fprintln(w, "Current queue:", q)

	if front, err := q.Peek(); err == nil {
		fmt.Fprintln(w, "Front of queue (peek):", front)
	} else {
		log.Debugf("peek: %v", err)
		fmt.Fprintln(w, "Queue is empty.")
	}

	x, err := q.Poll()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Dequeued item:", x)
	fmt.Fprintln(w, "Is 'Harold' in queue?", queue.Contains(q, "Harold"))
	fmt.Fprintln(w, "Updated queue:", q)
	return nil
}
