package linkedlist

import "fmt"

// Insert prepends data; the new node becomes head.
// Complexity: O(1)
func (l *LinkedList[T]) Insert(data T) {
	l.head = &node[T]{data: data, next: l.head}
	l.length++
}

// Append adds data as the new terminal element.
// On an empty list it is equivalent to Insert.
// Complexity: O(n)
func (l *LinkedList[T]) Append(data T) {
	if l.head == nil {
		l.Insert(data)

		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = &node[T]{data: data}
	l.length++
}

// InsertAt inserts data so that it occupies index position afterwards.
//
// Valid positions are 0 <= position <= Size(); position == Size() appends.
// Any other position returns an error wrapping ErrInvalidPosition and
// leaves the list unchanged.
// Complexity: O(position)
func (l *LinkedList[T]) InsertAt(position int, data T) error {
	if position < 0 || position > l.length {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidPosition, position, l.length)
	}
	if position == 0 {
		l.Insert(data)

		return nil
	}
	prev := l.nodeAt(position - 1)
	prev.next = &node[T]{data: data, next: prev.next}
	l.length++

	return nil
}

// nodeAt returns the node at index i. Callers guarantee 0 <= i < length.
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur
}
