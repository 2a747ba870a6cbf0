package linkedlist_test

import (
	"testing"

	"github.com/katalvlaran/lvlist/linkedlist"
)

// BenchmarkInsert measures O(1) prepends.
func BenchmarkInsert(b *testing.B) {
	l := linkedlist.New[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Insert(i)
	}
}

// BenchmarkAppend_1k measures tail insertion on a list kept at ~1000 elements.
func BenchmarkAppend_1k(b *testing.B) {
	l := linkedlist.NewFrom(make([]int, 1000)...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
		_, _ = l.RemoveFromFront()
	}
}

// BenchmarkFind_Miss_1k measures a full scan that never matches.
func BenchmarkFind_Miss_1k(b *testing.B) {
	l := linkedlist.NewFrom(make([]int, 1000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Find(-1) {
			b.Fatal("unexpected match")
		}
	}
}

// BenchmarkAll_1k measures iterator traversal.
func BenchmarkAll_1k(b *testing.B) {
	l := linkedlist.NewFrom(make([]int, 1000)...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for v := range l.All() {
			sum += v
		}
		_ = sum
	}
}
