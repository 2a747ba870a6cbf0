package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// IsEmpty reports whether the list holds no elements.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.length == 0
}

// Size returns the number of elements in the list.
func (l *LinkedList[T]) Size() int {
	return l.length
}

// Find reports whether any element equals data.
// Complexity: O(n)
func (l *LinkedList[T]) Find(data T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.data == data {
			return true
		}
	}

	return false
}

// Clear drops the whole chain and resets the length to zero.
// The detached nodes are left to the garbage collector.
// Complexity: O(1)
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.length = 0
}

// All returns a forward iterator over the elements, head to terminal.
//
// The sequence is lazy and read-only; call All again to restart it.
// Mutating the list while ranging over it is not supported.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.data) {
				return
			}
		}
	}
}

// Values returns a snapshot of the elements in list order.
// An empty list yields an empty, non-nil slice.
// Complexity: O(n)
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.length)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}

// String renders the list as "[a b c]", or "[]" when empty.
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for cur := l.head; cur != nil; cur = cur.next {
		if cur != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, cur.data)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Clone returns an independent copy of the list.
// Nodes are copied; element values are copied by assignment, so pointer
// elements still share their referents.
// Complexity: O(n)
func (l *LinkedList[T]) Clone() *LinkedList[T] {
	return NewFrom(l.Values()...)
}
