package linkedlist

import "fmt"

// RemoveFromFront removes and returns the head element.
// Returns ErrEmptyList if the list has no elements.
// Complexity: O(1)
func (l *LinkedList[T]) RemoveFromFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.length--

	return n.data, nil
}

// RemoveFromEnd removes and returns the terminal element.
// Returns ErrEmptyList if the list has no elements.
// Complexity: O(n)
func (l *LinkedList[T]) RemoveFromEnd() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	// single element: there is no predecessor to detach from
	if l.head.next == nil {
		return l.RemoveFromFront()
	}
	prev, cur := l.head, l.head.next
	for cur.next != nil {
		prev, cur = cur, cur.next
	}
	prev.next = nil
	l.length--

	return cur.data, nil
}

// RemoveAt removes and returns the element at index position.
//
// Valid positions are 0 <= position < Size(); any other position returns
// an error wrapping ErrInvalidPosition and leaves the list unchanged.
// Complexity: O(position)
func (l *LinkedList[T]) RemoveAt(position int) (T, error) {
	var zero T
	if position < 0 || position >= l.length {
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidPosition, position, l.length)
	}
	if position == 0 {
		return l.RemoveFromFront()
	}

	return l.unlinkAfter(l.nodeAt(position - 1)), nil
}

// Remove removes the first (head-most) element equal to data and returns it.
//
// Returns ErrEmptyList on an empty list, or an error wrapping ErrNotFound
// when no element matches. The list is unchanged in both cases.
// Complexity: O(n)
func (l *LinkedList[T]) Remove(data T) (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	var prev *node[T]
	cur := l.head
	for cur != nil && cur.data != data {
		prev, cur = cur, cur.next
	}
	if cur == nil {
		return zero, fmt.Errorf("%w: %v", ErrNotFound, data)
	}
	if prev == nil {
		return l.RemoveFromFront()
	}

	return l.unlinkAfter(prev), nil
}

// unlinkAfter detaches prev.next from the chain and returns its data.
// prev.next must be non-nil.
func (l *LinkedList[T]) unlinkAfter(prev *node[T]) T {
	target := prev.next
	prev.next = target.next
	target.next = nil
	l.length--

	return target.data
}
