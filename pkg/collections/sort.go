package collections

// SortFunc sorts the list in ascending order according to cmp.
//
// Values are swapped between nodes; the nodes themselves stay where they
// are, so an iterator still refers to the same position afterwards but
// probably to a different value. The sort is not stable.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.size > 1 {
		quicksort(l.Begin(), l.size, cmp)
	}
}

// quicksort sorts the size elements starting at first.
//
// It is Hoare partitioning around the middle element's value, with a
// position counter carried alongside each cursor in place of an index.
func quicksort[T any](first Iterator[T], size int, cmp func(a, b T) int) {
	if size < 2 {
		return
	}

	i, j := 0, size-1
	left, right := first, advance(first, j)
	pivot := advance(first, size/2).Value()

	for i <= j {
		for cmp(left.Value(), pivot) < 0 {
			i++
			left = left.Next()
		}
		for cmp(right.Value(), pivot) > 0 {
			j--
			right = right.Prev()
		}

		if i <= j {
			swapValues(left, right)
			i++
			left = left.Next()
			j--
			right = right.Prev()
		}
	}

	if j > 0 {
		quicksort(first, j+1, cmp)
	}
	if i < size {
		quicksort(left, size-i, cmp)
	}
}

// advance steps it forward n times.
func advance[T any](it Iterator[T], n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	return it
}

func swapValues[T any](a, b Iterator[T]) {
	a.node.value, b.node.value = b.node.value, a.node.value
}
