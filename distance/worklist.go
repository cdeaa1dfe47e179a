package distance

import "math/rand"

// worklist holds row-major cell indices awaiting relaxation.
type worklist interface {
	push(i int)
	pop() int
	len() int
}

// newWorklist returns the discipline chosen by order, pre-sized to capHint.
func newWorklist(order Order, seed int64, capHint int) worklist {
	switch order {
	case FIFO:
		return &queue{items: make([]int, 0, capHint)}
	case Random:
		return &shuffleBag{items: make([]int, 0, capHint), rng: rand.New(rand.NewSource(seed))}
	default:
		return &stack{items: make([]int, 0, capHint)}
	}
}

// stack is last-in-first-out.
type stack struct{ items []int }

func (s *stack) push(i int) { s.items = append(s.items, i) }
func (s *stack) len() int   { return len(s.items) }
func (s *stack) pop() int {
	n := len(s.items) - 1
	i := s.items[n]
	s.items = s.items[:n]
	return i
}

// queue is first-in-first-out. The head index advances instead of
// reslicing so the backing array is reused once drained.
type queue struct {
	items []int
	head  int
}

func (q *queue) push(i int) { q.items = append(q.items, i) }
func (q *queue) len() int   { return len(q.items) - q.head }
func (q *queue) pop() int {
	i := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return i
}

// shuffleBag removes a uniformly random element (swap with last, truncate).
type shuffleBag struct {
	items []int
	rng   *rand.Rand
}

func (b *shuffleBag) push(i int) { b.items = append(b.items, i) }
func (b *shuffleBag) len() int   { return len(b.items) }
func (b *shuffleBag) pop() int {
	n := len(b.items) - 1
	k := b.rng.Intn(n + 1)
	b.items[k], b.items[n] = b.items[n], b.items[k]
	i := b.items[n]
	b.items = b.items[:n]
	return i
}
