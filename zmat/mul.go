package zmat

import (
	"github.com/katalvlaran/zmorton/morton"
	"github.com/katalvlaran/zmorton/pqueue"
	"github.com/katalvlaran/zmorton/ring"
	"github.com/katalvlaran/zmorton/varray"
	"github.com/katalvlaran/zmorton/zstream"
)

// Mul multiplies m1 by m2 via the recursive quadtree-style kernel:
// mulRec produces a heap of partial products, which pqueue.Drain
// folds under nonZero(+) into the final sorted matrix.
// Complexity: O(result-size · log(result-size)) heap bookkeeping
// plus the recursion's own O(log(range)) depth.
func Mul[T any](m1, m2 Matrix[T]) Matrix[T] {
	r := m1.r
	if m1.IsEmpty() || m2.IsEmpty() {
		return Empty(r)
	}
	h := mulRec(r, m1, m2)
	return fromStream(r, pqueue.Drain(h, r))
}

// MulWith is Mul with the pointwise multiply overridden by times,
// while still coalescing colliding output keys by ordinary addition
// at drain time. Lets a caller multiply, e.g., under a different
// semiring's "times" without changing how collisions combine.
func MulWith[T any](m1, m2 Matrix[T], times func(a, b T) T) Matrix[T] {
	r := m1.r
	if m1.IsEmpty() || m2.IsEmpty() {
		return Empty(r)
	}
	h := mulRecWith(r, times, m1, m2)
	return fromStream(r, pqueue.Drain(h, r))
}

func fromStream[T any](r ring.Ring[T], s zstream.Stream[T]) Matrix[T] {
	return Matrix[T]{arr: varray.FromSortedStream(s), r: r}
}

// mulRec re-dispatches to the appropriately-sized go1×/go×1 case at
// every recursive step: each half may have shrunk to size 1 after a
// split and so must be re-dispatched rather than recursed into
// blindly.
func mulRec[T any](r ring.Ring[T], X, Y Matrix[T]) pqueue.Heap[T] {
	return mulRecWith(r, r.Mul, X, Y)
}

func mulRecWith[T any](r ring.Ring[T], times func(a, b T) T, X, Y Matrix[T]) pqueue.Heap[T] {
	if X.IsEmpty() || Y.IsEmpty() {
		return pqueue.Heap[T]{}
	}
	switch {
	case X.Size() == 1 && Y.Size() == 1:
		return go11(times, X.LowKey(), X.HeadVal(), Y.LowKey(), Y.HeadVal())
	case X.Size() == 1:
		return go12(r, times, X.LowKey(), X.HeadVal(), Y)
	case Y.Size() == 1:
		return go21(r, times, X, Y.LowKey(), Y.HeadVal())
	default:
		return go22(r, times, X, Y)
	}
}

// go11 is the base case: single entry times single entry. The
// product lands at (xa.Row, ya.Col) only when the inner dimension
// matches (xa.Col == ya.Row); otherwise the two keys can never meet
// and the product is empty.
// Complexity: O(1).
func go11[T any](times func(a, b T) T, xa morton.Key, a T, ya morton.Key, b T) pqueue.Heap[T] {
	if xa.Col != ya.Row {
		return pqueue.Heap[T]{}
	}
	return pqueue.Singleton(zstream.Pair[T]{Key: morton.NewKey(xa.Row, ya.Col), Val: times(a, b)})
}

// go12 is single-left × many-right. X is atomic (xi = xj = 0 in the
// spec's span notation), which collapses the general four-way split
// table to two reachable branches: split Y by row when Y's row span
// dominates its column span (inner-dimension split, combine by add,
// since both halves land on the same output row), otherwise split Y
// by column (disjoint output columns, combine by concatenation).
func go12[T any](r ring.Ring[T], times func(a, b T) T, xa morton.Key, a T, Y Matrix[T]) pqueue.Heap[T] {
	ya, yb := Y.LowKey(), Y.HighKey()
	yj := morton.Xor(uint64(ya.Row), uint64(yb.Row))
	yk := morton.Xor(uint64(ya.Col), uint64(yb.Col))

	if morton.Gts(morton.Xor(uint64(xa.Col), uint64(ya.Row)), yj|yk) {
		return pqueue.Heap[T]{} // overlap test
	}

	if morton.Ges(yj, yk) {
		left, right := Y.splitOnBit1(ya.Row, yb.Row)
		return pqueue.Mix(mulRecFrom11(r, times, xa, a, left), mulRecFrom11(r, times, xa, a, right))
	}
	left, right := Y.splitOnBit2(ya.Col, yb.Col)
	return pqueue.Fby(mulRecFrom11(r, times, xa, a, left), mulRecFrom11(r, times, xa, a, right))
}

// go21 is many-left × single-right, the row/column mirror of go12:
// split X by row (fby, disjoint output rows) when X's row span
// dominates its column span, else split X by column (inner-dimension
// split, combine by add).
func go21[T any](r ring.Ring[T], times func(a, b T) T, X Matrix[T], ya morton.Key, b T) pqueue.Heap[T] {
	xa, xb := X.LowKey(), X.HighKey()
	xi := morton.Xor(uint64(xa.Row), uint64(xb.Row))
	xj := morton.Xor(uint64(xa.Col), uint64(xb.Col))

	if morton.Gts(morton.Xor(uint64(xa.Col), uint64(ya.Row)), xi|xj) {
		return pqueue.Heap[T]{} // overlap test
	}

	if morton.Ges(xi, xj) {
		left, right := X.splitOnBit1(xa.Row, xb.Row)
		return pqueue.Fby(mulRecFrom1r(r, times, left, ya, b), mulRecFrom1r(r, times, right, ya, b))
	}
	left, right := X.splitOnBit2(xa.Col, xb.Col)
	return pqueue.Mix(mulRecFrom1r(r, times, left, ya, b), mulRecFrom1r(r, times, right, ya, b))
}

// go22 is many-left × many-right, the general split-bit selection
// case: every branch of the decision table is live here.
func go22[T any](r ring.Ring[T], times func(a, b T) T, X, Y Matrix[T]) pqueue.Heap[T] {
	xa, xb := X.LowKey(), X.HighKey()
	ya, yb := Y.LowKey(), Y.HighKey()

	xi := morton.Xor(uint64(xa.Row), uint64(xb.Row))
	xj := morton.Xor(uint64(xa.Col), uint64(xb.Col))
	yj := morton.Xor(uint64(ya.Row), uint64(yb.Row))
	yk := morton.Xor(uint64(ya.Col), uint64(yb.Col))
	xiyj := xi | yj
	ykxj := yk | xj

	if morton.Gts(morton.Xor(uint64(xa.Col), uint64(ya.Row)), xiyj|ykxj) {
		return pqueue.Heap[T]{} // overlap test
	}

	switch {
	case morton.Ges(xiyj, ykxj) && morton.Ges(xi, yj):
		// split left by row: disjoint output rows, concatenate.
		left, right := X.splitOnBit1(xa.Row, xb.Row)
		return pqueue.Fby(mulRecWith(r, times, left, Y), mulRecWith(r, times, right, Y))
	case morton.Ges(xiyj, ykxj):
		// split right by row: inner dimension, same output region.
		left, right := Y.splitOnBit1(ya.Row, yb.Row)
		return pqueue.Mix(mulRecWith(r, times, X, left), mulRecWith(r, times, X, right))
	case morton.Ges(yk, xj):
		// split right by col: disjoint output cols, concatenate.
		left, right := Y.splitOnBit2(ya.Col, yb.Col)
		return pqueue.Fby(mulRecWith(r, times, X, left), mulRecWith(r, times, X, right))
	default:
		// split left by col: inner dimension, same output region.
		left, right := X.splitOnBit2(xa.Col, xb.Col)
		return pqueue.Mix(mulRecWith(r, times, left, Y), mulRecWith(r, times, right, Y))
	}
}

// mulRecFrom11 re-wraps a fixed (xa, a) scalar against a Y submatrix
// that may itself have shrunk to size 1 after a split, redispatching
// to go11 in that case instead of re-entering go12.
func mulRecFrom11[T any](r ring.Ring[T], times func(a, b T) T, xa morton.Key, a T, Y Matrix[T]) pqueue.Heap[T] {
	if Y.IsEmpty() {
		return pqueue.Heap[T]{}
	}
	if Y.Size() == 1 {
		return go11(times, xa, a, Y.LowKey(), Y.HeadVal())
	}
	return go12(r, times, xa, a, Y)
}

// mulRecFrom1r is go21's analogue of mulRecFrom11: X may have shrunk
// to size 1 after a split, in which case redispatch to go11.
func mulRecFrom1r[T any](r ring.Ring[T], times func(a, b T) T, X Matrix[T], ya morton.Key, b T) pqueue.Heap[T] {
	if X.IsEmpty() {
		return pqueue.Heap[T]{}
	}
	if X.Size() == 1 {
		return go11(times, X.LowKey(), X.HeadVal(), ya, b)
	}
	return go21(r, times, X, ya, b)
}
