package traverse

import "fmt"

// frontier is the pending-exploration container. Duplicates are allowed.
type frontier interface {
	push(c Coord)
	pop() Coord
	size() int
}

// newFrontier returns a stack for DFS and a queue for BFS.
func newFrontier(m Mode, capHint int) (frontier, error) {
	switch m {
	case DFS:
		s := make(stack, 0, capHint)
		return &s, nil
	case BFS:
		return &queue{items: make([]Coord, 0, capHint)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %v", ErrOptionViolation, m)
	}
}

// stack is a LIFO frontier.
type stack []Coord

func (s *stack) push(c Coord) { *s = append(*s, c) }

func (s *stack) pop() Coord {
	old := *s
	c := old[len(old)-1]
	*s = old[:len(old)-1]

	return c
}

func (s *stack) size() int { return len(*s) }

// compactAfter is how many consumed slots a queue tolerates before shifting.
const compactAfter = 1024

// queue is a FIFO frontier over a slice with a moving head.
type queue struct {
	items []Coord
	head  int
}

func (q *queue) push(c Coord) { q.items = append(q.items, c) }

func (q *queue) pop() Coord {
	c := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head >= compactAfter && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return c
}

func (q *queue) size() int { return len(q.items) - q.head }
