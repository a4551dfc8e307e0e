package varray

import (
	"sort"

	"github.com/katalvlaran/zmorton/morton"
)

// Lookup performs a binary search on the implicit code array and
// returns the stored value iff (row, col) matches exactly.
// Complexity: O(log n).
func (a Array[T]) Lookup(key morton.Key) (T, bool) {
	n := len(a.keys)
	i := sort.Search(n, func(i int) bool { return a.keys[i].Code >= key.Code })
	if i < n && a.keys[i].Code == key.Code {
		return a.vals[i], true
	}
	var zero T
	return zero, false
}

// SplitAt slices a into two independent Arrays of size idx and
// n-idx, sharing the underlying storage. Complexity: O(1).
func (a Array[T]) SplitAt(idx int) (left, right Array[T]) {
	return Array[T]{keys: a.keys[:idx:idx], vals: a.vals[:idx:idx]},
		Array[T]{keys: a.keys[idx:], vals: a.vals[idx:]}
}

// SplitOnBit1 partitions a into a prefix whose row coordinate falls
// in the same half-plane as aRow and a suffix falling in bRow's half:
// it bisects for the first index l such that xor(rows[l], bRow) <
// xor(aRow, bRow), then splits there.
// Precondition: aRow != bRow, else the split is trivially all-left.
// Complexity: O(log n) search + O(1) split.
func (a Array[T]) SplitOnBit1(aRow, bRow uint32) (left, right Array[T]) {
	target := aRow ^ bRow
	n := len(a.keys)
	idx := sort.Search(n, func(i int) bool {
		return (a.keys[i].Row ^ bRow) < target
	})
	return a.SplitAt(idx)
}

// SplitOnBit2 is SplitOnBit1's column-coordinate analogue.
// Complexity: O(log n) search + O(1) split.
func (a Array[T]) SplitOnBit2(aCol, bCol uint32) (left, right Array[T]) {
	target := aCol ^ bCol
	n := len(a.keys)
	idx := sort.Search(n, func(i int) bool {
		return (a.keys[i].Col ^ bCol) < target
	})
	return a.SplitAt(idx)
}
