package mines

// queue is a FIFO worklist; popped slots are released by reslicing.
type queue[T any] struct {
	items []T
}

func (q *queue[T]) push(v T) {
	q.items = append(q.items, v)
}

func (q *queue[T]) pop() (v T, ok bool) {
	if len(q.items) == 0 {
		return v, false
	}
	v, q.items = q.items[0], q.items[1:]
	return v, true
}

func (q *queue[T]) len() int {
	return len(q.items)
}
