package collections

import (
	"iter"
	"math"
	"unsafe"
)

// List is a doubly linked list arranged as a ring around a sentinel node.
//
// The sentinel never carries user data: its next node is the first element
// and its previous node is the last one. In an empty list the sentinel
// points at itself in both directions. End() refers to the sentinel.
//
// The zero value is an empty list ready to use.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	// head is the sentinel node. It is created lazily so that the zero
	// value is usable.
	head *node[T]

	// size is the number of nodes in the ring, not counting head.
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{head: newNode[T]()}
}

// NewSized returns a list holding n zero values.
func NewSized[T any](n int) *List[T] {
	l := New[T]()
	var zero T
	for ; n > 0; n-- {
		l.PushFront(zero)
	}
	return l
}

// NewOf returns a list holding the given values in order.
func NewOf[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// sentinel returns the list's sentinel, creating it on first use.
func (l *List[T]) sentinel() *node[T] {
	if l.head == nil {
		l.head = newNode[T]()
	}
	return l.head
}

// Clone returns a copy of the list.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.Assign(l)
	return c
}

// Assign makes l an element-wise copy of other.
//
// Nodes that l already has are reused: values are overwritten in place
// for the first min(l.Len(), other.Len()) positions, then surplus nodes are
// removed from the back or the remaining values of other are appended.
// Iterators into the reused prefix of l keep referring to the same nodes.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}

	it := l.Begin()
	src := other.CBegin()
	for count := min(l.size, other.size); count > 0; count-- {
		it.Set(src.Value())
		it = it.Next()
		src = src.Next()
	}

	for other.size < l.size {
		l.PopBack()
	}
	for other.size > l.size {
		l.PushBack(src.Value())
		src = src.Next()
	}
}

// MoveFrom transfers all of other's nodes into l, discarding l's previous
// contents. Other is left empty.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.Swap(other)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.size == 0
}

// MaxLen returns an upper bound on the number of elements a list of T
// could hold.
func (l *List[T]) MaxLen() int {
	return math.MaxInt / 2 / int(unsafe.Sizeof(node[T]{}))
}

// Front returns the first element.
//
// The list must not be empty.
func (l *List[T]) Front() T {
	return l.Begin().Value()
}

// Back returns the last element.
//
// The list must not be empty.
func (l *List[T]) Back() T {
	return l.End().Prev().Value()
}

// Begin returns an iterator to the first element, or End() if the list
// is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.sentinel().next}
}

// End returns the iterator one past the last element.
//
// It must not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{node: l.sentinel()}
}

// CBegin is like Begin but returns a read-only iterator.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd is like End but returns a read-only iterator.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// All iterates over the list from front to back.
//
// The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		end := l.End()
		i := 0
		for it := l.Begin(); it != end; it = it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i++
		}
	}
}

// Backward iterates over the list from back to front.
//
// Indices count down from Len()-1.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		end := l.End()
		i := l.size - 1
		for it := end.Prev(); it != end; it = it.Prev() {
			if !yield(i, it.Value()) {
				return
			}
			i--
		}
	}
}

// Values returns the elements of the list as a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for _, v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Insert adds value immediately before pos and returns an iterator to it.
func (l *List[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	n := &node[T]{value: value}
	n.linkBefore(pos.node)
	l.size++
	return Iterator[T]{node: n}
}

// Erase removes the element at pos.
//
// Erasing End() does nothing. Iterators to the removed element become
// invalid; all other iterators are unaffected.
func (l *List[T]) Erase(pos Iterator[T]) {
	if pos.node == l.sentinel() {
		return
	}
	pos.node.unlink()
	pos.node.release()
	l.size--
}

// PushBack appends value to the end of the list.
func (l *List[T]) PushBack(value T) {
	l.Insert(l.End(), value)
}

// PushFront prepends value to the start of the list.
func (l *List[T]) PushFront(value T) {
	l.Insert(l.Begin(), value)
}

// PopBack removes the last element. It does nothing on an empty list.
func (l *List[T]) PopBack() {
	l.Erase(l.End().Prev())
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *List[T]) PopFront() {
	l.Erase(l.Begin())
}

// Clear removes every element.
func (l *List[T]) Clear() {
	for l.size > 0 {
		l.PopBack()
	}
}

// Swap exchanges the contents of l and other in constant time.
//
// Iterators remain valid and refer to the same elements, which now belong
// to the other list. This includes End(): the sentinel moves too.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	a, b := l.sentinel(), other.sentinel()
	l.head, other.head = b, a
	l.size, other.size = other.size, l.size
}
