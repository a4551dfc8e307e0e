package zmat

import (
	"github.com/katalvlaran/zmorton/ring"
	"github.com/katalvlaran/zmorton/varray"
	"github.com/katalvlaran/zmorton/zstream"
)

// AddWith0 stream-merges m1 and m2 under an explicit zero-thinning
// combiner — the most general addition primitive; Add and Sub are
// both specializations of it. Complexity: O(size(m1)+size(m2)).
func AddWith0[T any](m1, m2 Matrix[T], combine zstream.Combine0[T]) Matrix[T] {
	s := zstream.Merge(varray.ToStream(m1.arr), varray.ToStream(m2.arr), combine)
	return Matrix[T]{arr: varray.FromSortedStream(s), r: m1.r}
}

// AddWith stream-merges m1 and m2 under a total combiner f, keeping
// every combined value regardless of whether it tests as zero.
// Complexity: O(size(m1)+size(m2)).
func AddWith[T any](m1, m2 Matrix[T], f func(a, b T) T) Matrix[T] {
	return AddWith0(m1, m2, zstream.CombineAlways(f))
}

// Add is stream-merge with the nonZero(+) combiner: colliding entries
// that sum to zero are dropped. Complexity: O(size(m1)+size(m2)).
func Add[T any](m1, m2 Matrix[T]) Matrix[T] {
	return AddWith0(m1, m2, nonZeroAdd(m1.r))
}

// Sub is addWith0(nonZero(-), m1, m2): colliding entries that
// subtract to zero are dropped. As with Add, the merge passes an
// entry present on only one side through unchanged regardless of the
// combiner, so an entry unique to m2 is NOT negated.
// Complexity: O(size(m1)+size(m2)).
func Sub[T any](m1, m2 Matrix[T]) Matrix[T] {
	r := m1.r
	combine := func(a, b T) (T, bool) {
		d := r.Sub(a, b)
		return d, !r.IsZero(d)
	}
	return AddWith0(m1, m2, combine)
}

func nonZeroAdd[T any](r ring.Ring[T]) zstream.Combine0[T] {
	return func(a, b T) (T, bool) {
		s := r.Add(a, b)
		return s, !r.IsZero(s)
	}
}
