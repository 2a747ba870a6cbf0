// Package linkedlist provides a generic singly linked list with
// position-based and value-based mutation.
//
// A LinkedList[T] owns a chain of nodes starting at head. Each node owns
// its successor; the last node (the terminal node) has no successor.
// The list tracks its length, so Size and IsEmpty are O(1).
//
// Invariants:
//
//   - Following next from head exactly Size() times reaches nil.
//   - The chain never contains a cycle.
//   - head is nil if and only if Size() == 0.
//
// Element type:
//
//	T must be comparable: Find and Remove match elements with ==.
//
// Positions are 0-based throughout.
//
// Core Methods:
//
//	// Insertion
//	Insert(data T)                          // O(1)  prepend
//	Append(data T)                          // O(n)  add as terminal
//	InsertAt(position int, data T) error    // O(n)  0 <= position <= Size()
//
//	// Removal
//	RemoveFromFront() (T, error)            // O(1)
//	RemoveFromEnd() (T, error)              // O(n)
//	RemoveAt(position int) (T, error)       // O(n)  0 <= position < Size()
//	Remove(data T) (T, error)               // O(n)  first (head-most) match
//
//	// Query
//	IsEmpty() bool                          // O(1)
//	Size() int                              // O(1)
//	Find(data T) bool                       // O(n)
//	All() iter.Seq[T]                       // lazy, restartable traversal
//	Values() []T                            // O(n) snapshot
//	String() string                         // O(n) "[a b c]"
//
//	// Maintenance
//	Clear()                                 // O(1)
//	Clone() *LinkedList[T]                  // O(n) independent copy
//
// Errors:
//
//	ErrInvalidPosition - position outside the valid range (InsertAt, RemoveAt).
//	ErrEmptyList       - removal from an empty list.
//	ErrNotFound        - Remove found no element equal to the target.
//
// On any error the list is left unchanged and the returned element is the
// zero value of T. Use errors.Is to distinguish them.
//
// Concurrency:
//
//	LinkedList is not safe for concurrent use. Guard a shared list with
//	a single sync.Mutex held for the duration of each call.
//
// Usage:
//
//	l := linkedlist.New[int]()
//	l.Insert(10)
//	l.Append(20)
//	if err := l.InsertAt(1, 15); err != nil {
//		// errors.Is(err, linkedlist.ErrInvalidPosition)
//	}
//	for v := range l.All() {
//		fmt.Println(v) // 10, 15, 20
//	}
package linkedlist
