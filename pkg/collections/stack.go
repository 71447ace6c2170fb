package collections

// Stack is a last-in first-out container backed by a List.
//
// The top of the stack is the back of the list. The zero value is an
// empty stack ready to use.
type Stack[T any] struct {
	list List[T]
}

// NewStack returns a stack holding values, the last of which is on top.
func NewStack[T any](values ...T) *Stack[T] {
	s := &Stack[T]{}
	s.list.InsertManyBack(values...)
	return s
}

// Clone returns a copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	c := &Stack[T]{}
	c.list.Assign(&s.list)
	return c
}

// Assign makes s a copy of other.
func (s *Stack[T]) Assign(other *Stack[T]) {
	s.list.Assign(&other.list)
}

// MoveFrom replaces s's contents with other's, leaving other empty.
func (s *Stack[T]) MoveFrom(other *Stack[T]) {
	s.list.MoveFrom(&other.list)
}

// Top returns the most recently pushed element. The stack must not be
// empty.
func (s *Stack[T]) Top() T {
	return s.list.Back()
}

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return s.list.Empty()
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// Push puts value on top.
func (s *Stack[T]) Push(value T) {
	s.list.PushBack(value)
}

// Pop removes the top element.
func (s *Stack[T]) Pop() {
	s.list.PopBack()
}

// Swap exchanges the contents of two stacks.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.list.Swap(&other.list)
}

// InsertManyFront slides values in beneath the existing elements, in
// order, so values[0] becomes the bottom of the stack.
func (s *Stack[T]) InsertManyFront(values ...T) {
	s.list.InsertManyFront(values...)
}

// PopTop removes and returns the top element.
//
// Returns ErrEmpty if the stack is empty.
func (s *Stack[T]) PopTop() (T, error) {
	v, err := s.Peek()
	if err != nil {
		return v, err
	}
	s.list.PopBack()
	return v, nil
}

// Peek returns the top element, or ErrEmpty.
func (s *Stack[T]) Peek() (T, error) {
	if s.list.Empty() {
		var zero T
		return zero, ErrEmpty
	}
	return s.list.Back(), nil
}
