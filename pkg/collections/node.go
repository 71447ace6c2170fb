package collections

// node is a link in a List's ring.
//
// A node owns nothing: next and prev are plain references to siblings,
// and the List is responsible for every node in its ring.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// newNode returns a node that points at itself in both directions.
func newNode[T any]() *node[T] {
	n := &node[T]{}
	n.next = n
	n.prev = n
	return n
}

// linkBefore inserts n into the ring immediately before pos.
func (n *node[T]) linkBefore(pos *node[T]) {
	n.next = pos
	n.prev = pos.prev
	pos.prev.next = n
	pos.prev = n
}

// unlink removes n from its ring, joining its neighbours.
//
// n's own links are left untouched.
func (n *node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// release drops n's references so that a stale iterator cannot reach back
// into the ring it was removed from.
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
	n.prev = nil
}
