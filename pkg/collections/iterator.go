package collections

// Iterator is a cursor referring to one node of a List.
//
// Iterators are small values and are compared with ==: two iterators are
// equal if and only if they refer to the same node. Stepping never fails;
// Next from the last element yields End(), and stepping further wraps
// around the ring to the first element. Prev from End() yields the last
// element, or End() itself if the list is empty.
//
// The zero Iterator refers to nothing and must not be used.
type Iterator[T any] struct {
	node *node[T]
}

// Value returns the element the iterator refers to.
//
// The iterator must not be End().
func (it Iterator[T]) Value() T {
	return it.node.value
}

// Ptr returns a pointer to the element the iterator refers to.
//
// The pointer is valid until the element is erased.
func (it Iterator[T]) Ptr() *T {
	return &it.node.value
}

// Set replaces the element the iterator refers to.
func (it Iterator[T]) Set(value T) {
	it.node.value = value
}

// Next returns an iterator to the following node in ring order.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{node: it.node.next}
}

// Prev returns an iterator to the preceding node in ring order.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{node: it.node.prev}
}

// Equal reports whether it and other refer to the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// Const returns a read-only iterator to the same node.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{node: it.node}
}

// ConstIterator is an Iterator that cannot modify the element it refers to.
type ConstIterator[T any] struct {
	node *node[T]
}

// Value returns the element the iterator refers to.
func (it ConstIterator[T]) Value() T {
	return it.node.value
}

// Next returns an iterator to the following node in ring order.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{node: it.node.next}
}

// Prev returns an iterator to the preceding node in ring order.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{node: it.node.prev}
}

// Equal reports whether it and other refer to the same node.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.node == other.node
}
