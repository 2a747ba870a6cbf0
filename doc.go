// Package lvlist is a small in-memory playground for sequential containers,
// starting with a classic singly linked list.
//
// 🚀 What is lvlist?
//
//	A pure-Go, dependency-free container library that brings together:
//		• A generic singly linked list over any comparable element type
//		• Position-based and value-based insertion and removal
//		• Explicit sentinel errors instead of printed diagnostics
//		• Lazy forward traversal via iter.Seq
//
// Under the hood, everything lives in subpackages:
//
//	linkedlist/  LinkedList[T] with Insert, Append, InsertAt, Remove*, Find, All
//	examples/    runnable walkthrough programs
//
// Quick ASCII example:
//
//	head ─► [5] ─► [15] ─► [10] ─► [20] ─► [50] ─► nil
//
//	represents a list of length 5.
//
//	go get github.com/katalvlaran/lvlist/linkedlist
package lvlist
