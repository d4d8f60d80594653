package ringbuffer

// RingBuffer is a fixed capacity FIFO queue that can also be trimmed from the newest end.
// It is not safe for concurrent use.
type RingBuffer[T any] struct {
	buf  []T
	head int
	tail int
	size int
}

// New creates a RingBuffer with the given capacity.
// A capacity of 1 is used if the given value is zero.
func New[T any](capacity uint) *RingBuffer[T] {
	return &RingBuffer[T]{
		buf: make([]T, max(1, capacity)),
	}
}

func (r *RingBuffer[T]) Size() int {
	return r.size
}

func (r *RingBuffer[T]) IsFull() bool {
	return r.size == len(r.buf)
}

// Push appends item as the newest element. It returns false when the buffer is full.
func (r *RingBuffer[T]) Push(item T) bool {
	if r.IsFull() {
		return false
	}

	r.buf[r.tail] = item
	r.tail = (r.tail + 1) % len(r.buf)
	r.size++
	return true
}

// Pop removes and returns the oldest item.
func (r *RingBuffer[T]) Pop() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}

	item := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return item, true
}

// Back returns the newest item without removing it.
func (r *RingBuffer[T]) Back() (T, bool) {
	var zero T
	if r.size == 0 {
		return zero, false
	}
	return r.buf[r.index(r.size-1)], true
}

// DropBack discards the newest item, if any.
func (r *RingBuffer[T]) DropBack() {
	if r.size == 0 {
		return
	}
	r.tail = r.index(r.size - 1)

	var zero T
	r.buf[r.tail] = zero
	r.size--
}

// Newest returns a copy of the items, newest first.
func (r *RingBuffer[T]) Newest() []T {
	out := make([]T, 0, r.size)
	for i := r.size - 1; i >= 0; i-- {
		out = append(out, r.buf[r.index(i)])
	}
	return out
}

// index maps the i-th oldest item to its slot.
func (r *RingBuffer[T]) index(i int) int {
	return (r.head + i) % len(r.buf)
}
