package feed

import "sync"

// Queue is an unbounded FIFO. Publish never blocks and Out never drops:
// items wait in a growing buffer until the consumer takes them.
type Queue[T any] struct {
	in   chan T
	out  chan T
	once sync.Once
	mu   sync.RWMutex
	done bool
}

// NewQueue starts the forwarding goroutine and returns the queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{
		in:  make(chan T),
		out: make(chan T),
	}
	go q.forward()
	return q
}

// Publish appends an item. It reports false after Close.
func (q *Queue[T]) Publish(item T) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.done {
		return false
	}
	q.in <- item
	return true
}

// Out returns the receive side. It is closed after Close once every
// pending item has been delivered.
func (q *Queue[T]) Out() <-chan T {
	return q.out
}

// Close stops accepting items. Items already published are still delivered.
func (q *Queue[T]) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		q.done = true
		close(q.in)
		q.mu.Unlock()
	})
}

func (q *Queue[T]) forward() {
	defer close(q.out)

	var pending []T
	in := q.in
	for in != nil || len(pending) > 0 {
		var (
			out  chan T
			next T
		)
		if len(pending) > 0 {
			out = q.out
			next = pending[0]
		}

		select {
		case item, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			pending = append(pending, item)
		case out <- next:
			var zero T
			pending[0] = zero
			pending = pending[1:]
		}
	}
}
