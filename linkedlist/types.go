package linkedlist

import "errors"

// Sentinel errors for linked list operations.
var (
	// ErrInvalidPosition indicates a position outside the valid range of the operation.
	ErrInvalidPosition = errors.New("linkedlist: invalid position")

	// ErrEmptyList indicates a removal was attempted on an empty list.
	ErrEmptyList = errors.New("linkedlist: list is empty")

	// ErrNotFound indicates no element equal to the target exists in the list.
	ErrNotFound = errors.New("linkedlist: data not found")
)

// node is a single element slot in the chain.
// A nil next marks the terminal node.
type node[T comparable] struct {
	data T
	next *node[T]
}

// LinkedList is a singly linked list of comparable elements.
//
// head owns the first node (nil when empty); length always equals the
// number of nodes reachable from head. The zero value is an empty list
// ready to use.
type LinkedList[T comparable] struct {
	head   *node[T]
	length int
}

// New creates an empty LinkedList.
// Complexity: O(1)
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// NewFrom creates a LinkedList holding values in the given order.
// Complexity: O(len(values))
func NewFrom[T comparable](values ...T) *LinkedList[T] {
	l := New[T]()
	// tail cursor: seeding is O(n), not O(n²) via Append
	var tail *node[T]
	for _, v := range values {
		n := &node[T]{data: v}
		if tail == nil {
			l.head = n
		} else {
			tail.next = n
		}
		tail = n
		l.length++
	}

	return l
}
