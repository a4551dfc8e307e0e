package zmat

import (
	"sort"

	"github.com/katalvlaran/zmorton/morton"
	"github.com/katalvlaran/zmorton/ring"
	"github.com/katalvlaran/zmorton/varray"
)

// Transpose applies morton.Swap to every stored key and re-sorts by
// the resulting code, swapping the row and column bit planes of every
// entry. Complexity: O(n log n).
func Transpose[T any](m Matrix[T]) Matrix[T] {
	n := m.Size()
	if n == 0 {
		return m
	}

	type swapped struct {
		key morton.Key
		val T
	}
	tmp := make([]swapped, n)
	srcKeys, srcVals := m.Keys(), m.Values()
	for i := 0; i < n; i++ {
		code := morton.Swap(srcKeys[i].Code)
		row, col := morton.Decode(code)
		tmp[i] = swapped{key: morton.Key{Row: row, Col: col, Code: code}, val: srcVals[i]}
	}
	sort.SliceStable(tmp, func(i, j int) bool { return tmp[i].key.Code < tmp[j].key.Code })

	keys := make([]morton.Key, n)
	vals := make([]T, n)
	for i, e := range tmp {
		keys[i], vals[i] = e.key, e.val
	}
	return Matrix[T]{arr: varray.NewUnchecked(keys, vals), r: m.r}
}

// MapValues applies f to every stored value, keeping keys unchanged,
// and rebinds the result to r2 — the ring of the new element type W.
// A second type parameter can't live on a method, so this is a
// package-level function, mirroring the teacher's preference for
// free functions wherever a transform changes a type parameter.
// Complexity: O(n).
func MapValues[T, W any](m Matrix[T], r2 ring.Ring[W], f func(T) W) Matrix[W] {
	vals := make([]W, m.Size())
	for i, v := range m.Values() {
		vals[i] = f(v)
	}
	return Matrix[W]{arr: varray.NewUnchecked(m.Keys(), vals), r: r2}
}

// Negate maps ring.Negate over every value, keys unchanged.
// Complexity: O(n).
func Negate[T any](m Matrix[T]) Matrix[T] {
	return MapValues(m, m.r, func(v T) T { return ring.Negate(m.r, v) })
}
