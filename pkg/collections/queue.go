package collections

// Queue is a first-in first-out container backed by a List.
//
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	list List[T]
}

// NewQueue returns a queue holding values, the first of which is at
// the front.
func NewQueue[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	q.list.InsertManyBack(values...)
	return q
}

// Clone returns a copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{}
	c.list.Assign(&q.list)
	return c
}

// Assign makes q a copy of other.
func (q *Queue[T]) Assign(other *Queue[T]) {
	q.list.Assign(&other.list)
}

// MoveFrom replaces q's contents with other's, leaving other empty.
func (q *Queue[T]) MoveFrom(other *Queue[T]) {
	q.list.MoveFrom(&other.list)
}

// Front returns the oldest element. The queue must not be empty.
func (q *Queue[T]) Front() T {
	return q.list.Front()
}

// Back returns the newest element. The queue must not be empty.
func (q *Queue[T]) Back() T {
	return q.list.Back()
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.list.Empty()
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// Push adds value at the back.
func (q *Queue[T]) Push(value T) {
	q.list.PushBack(value)
}

// Pop removes the front element.
func (q *Queue[T]) Pop() {
	q.list.PopFront()
}

// Swap exchanges the contents of two queues.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.list.Swap(&other.list)
}

// InsertManyBack pushes values in order.
func (q *Queue[T]) InsertManyBack(values ...T) {
	q.list.InsertManyBack(values...)
}

// Dequeue removes and returns the front element.
//
// Returns ErrEmpty if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	v, err := q.PeekFront()
	if err != nil {
		return v, err
	}
	q.list.PopFront()
	return v, nil
}

// PeekFront returns the front element, or ErrEmpty.
func (q *Queue[T]) PeekFront() (T, error) {
	if q.list.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.list.Front(), nil
}

// PeekBack returns the back element, or ErrEmpty.
func (q *Queue[T]) PeekBack() (T, error) {
	if q.list.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return q.list.Back(), nil
}
