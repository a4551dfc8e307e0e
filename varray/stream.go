package varray

import "github.com/katalvlaran/zmorton/zstream"

// FromSortedStream drains s fully into an Array. The caller is
// responsible for s having been produced in strictly ascending Morton
// order with no duplicate keys — exactly what zstream.Merge and
// pqueue.Drain both guarantee. Complexity: O(n).
func FromSortedStream[T any](s zstream.Stream[T]) Array[T] {
	keys, vals := zstream.ToSlices(s)
	return NewUnchecked(keys, vals)
}

// ToStream exposes a as a lazy Stream in ascending Morton order,
// without copying. Complexity: O(1) to start, O(n) to exhaust.
func ToStream[T any](a Array[T]) zstream.Stream[T] {
	return zstream.FromSlice(a.keys, a.vals)
}
