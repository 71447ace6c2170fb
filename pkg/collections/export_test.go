package collections

import "fmt"

// CheckRing walks l's ring forward and backward and returns an error
// describing the first broken link, or nil if the ring is consistent
// with l.Len().
func CheckRing[T any](l *List[T]) error {
	head := l.sentinel()

	n := head
	for i := 0; i < l.size; i++ {
		if n.next == nil {
			return fmt.Errorf("nil next link at position %d", i)
		}
		if n.next.prev != n {
			return fmt.Errorf("next.prev mismatch at position %d", i)
		}
		n = n.next
		if n == head {
			return fmt.Errorf("ring closed after %d of %d nodes", i, l.size)
		}
	}
	if n.next != head || head.prev != n {
		return fmt.Errorf("ring not closed after %d nodes", l.size)
	}

	n = head
	for i := 0; i < l.size; i++ {
		if n.prev == nil {
			return fmt.Errorf("nil prev link at position %d from the back", i)
		}
		n = n.prev
		if n == head {
			return fmt.Errorf("reverse ring closed after %d of %d nodes", i, l.size)
		}
	}
	if n.prev != head {
		return fmt.Errorf("reverse ring not closed after %d nodes", l.size)
	}

	return nil
}
