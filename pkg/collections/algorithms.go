package collections

import "cmp"

// Reverse reverses the order of the elements in place.
//
// Every node of the ring, the sentinel included, has its links swapped
// exactly once. No nodes are allocated or moved between lists.
func (l *List[T]) Reverse() {
	head := l.sentinel()
	n := head
	for {
		n.next, n.prev = n.prev, n.next
		n = n.prev
		if n == head {
			return
		}
	}
}

// UniqueFunc removes consecutive elements that are equal according to eq,
// keeping the first element of each run.
//
// Elements that are equal but not adjacent are all kept, so a sorted list
// is needed for full deduplication.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) {
	end := l.End()
	prev := l.Begin()
	if prev == end {
		return
	}

	for it := prev.Next(); it != end; it = prev.Next() {
		if eq(prev.Value(), it.Value()) {
			l.Erase(it)
		} else {
			prev = it
		}
	}
}

// MergeFunc merges other into l. Both lists must be sorted in ascending
// order according to cmp; the result is too.
//
// Nodes are moved, not copied, and other is empty afterwards. An element
// of other is placed before an element of l only when it is strictly
// smaller, so among equal elements those from l come first.
//
// Merging a list with itself does nothing.
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) {
	if l == other {
		return
	}

	it, end := l.Begin(), l.End()
	source := other.sentinel()
	for it != end && source.next != source {
		moved := source.next
		if cmp(it.Value(), moved.value) <= 0 {
			it = it.Next()
			continue
		}

		// moved is other's front, so unlinking it also re-points other's
		// sentinel at the next remaining node.
		moved.unlink()
		moved.linkBefore(it.node)
		other.size--
		l.size++
	}

	l.Splice(it, other)
}

// Splice moves all elements of other into l immediately before pos, in
// their original order. It takes constant time: nodes are relinked, never
// copied. Other is empty afterwards.
//
// pos must belong to l, not to other.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if l == other || other.size == 0 {
		return
	}

	head := other.head
	first, last := head.next, head.prev

	first.prev = pos.node.prev
	pos.node.prev.next = first
	last.next = pos.node
	pos.node.prev = last

	l.size += other.size
	other.size = 0
	head.next = head
	head.prev = head
}

// InsertMany inserts values before pos, one at a time and in order, and
// returns pos.
func (l *List[T]) InsertMany(pos Iterator[T], values ...T) Iterator[T] {
	for _, v := range values {
		l.Insert(pos, v)
	}
	return pos
}

// InsertManyBack appends values in order.
func (l *List[T]) InsertManyBack(values ...T) {
	l.InsertMany(l.End(), values...)
}

// InsertManyFront prepends values, keeping their order ahead of the
// current first element.
func (l *List[T]) InsertManyFront(values ...T) {
	l.InsertMany(l.Begin(), values...)
}

// Sort sorts a list of ordered values in ascending order.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Compare[T])
}

// Merge merges the sorted list other into the sorted list l.
//
// See List.MergeFunc.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Compare[T])
}

// Unique removes consecutive duplicates from l.
//
// See List.UniqueFunc.
func Unique[T comparable](l *List[T]) {
	l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	x, y, end := a.CBegin(), b.CBegin(), a.CEnd()
	for ; x != end; x, y = x.Next(), y.Next() {
		if x.Value() != y.Value() {
			return false
		}
	}
	return true
}
