package linkedlist_test

import (
	"testing"

	"github.com/katalvlaran/lvlist/linkedlist"
	"github.com/stretchr/testify/require"
)

// requireChain asserts the list holds exactly want, in order, and that the
// head/length invariants hold.
func requireChain[T comparable](t *testing.T, l *linkedlist.LinkedList[T], want ...T) {
	t.Helper()
	require.Equal(t, len(want), l.Size(), "Size")
	require.Equal(t, l.Size(), l.ChainLen(), "chain walk must match Size")
	require.Equal(t, l.Size() == 0, l.HeadIsNil(), "head is nil iff empty")
	require.Equal(t, l.Size() == 0, l.IsEmpty(), "IsEmpty iff Size()==0")
	if want == nil {
		want = []T{}
	}
	require.Equal(t, want, l.Values(), "Values")
}
