package linkedlist

// ChainLen walks the chain from head and returns the number of nodes seen.
// The walk stops after Size()+1 steps, so a cycle or a stale length shows
// up as a mismatch instead of hanging the test.
func (l *LinkedList[T]) ChainLen() int {
	n := 0
	for cur := l.head; cur != nil && n <= l.length; cur = cur.next {
		n++
	}

	return n
}

// HeadIsNil reports whether the head reference is absent.
func (l *LinkedList[T]) HeadIsNil() bool {
	return l.head == nil
}
