package pqueue

import (
	"github.com/katalvlaran/zmorton/ring"
	"github.com/katalvlaran/zmorton/zstream"
)

// Drain walks h to completion and returns a strictly sorted,
// duplicate-free zstream.Stream: runs of consecutive equal-key pairs
// are folded with r.Add (seeded at r.Zero(), so any number of
// duplicates folds correctly regardless of where an intermediate
// partial sum happens to be zero) and a run whose total IsZero is
// dropped, coalescing colliding keys under nonzero addition.
// Complexity: O(n) total Pulls plus O(log k) heap bookkeeping already
// paid by the Mix calls that built h; Drain itself does O(1) work per
// emitted pair.
func Drain[T any](h Heap[T], r ring.Ring[T]) zstream.Stream[T] {
	return drainFrom(h, r)
}

// drainFrom pulls the next run of equal-key pairs off h, folds it,
// and — if the fold survives zero-thinning — returns it as the next
// element of the output stream; otherwise it recurses to the
// following run.
func drainFrom[T any](h Heap[T], r ring.Ring[T]) zstream.Stream[T] {
	head, rest, ok := h.Pop()
	if !ok {
		return nil
	}

	key := head.Key
	acc := r.Add(r.Zero(), head.Val)
	for {
		next, nextRest, nextOK := rest.Pop()
		if !nextOK || next.Key.Code != key.Code {
			break
		}
		acc = r.Add(acc, next.Val)
		rest = nextRest
	}

	if r.IsZero(acc) {
		return drainFrom(rest, r)
	}
	return func() (zstream.Pair[T], zstream.Stream[T], bool) {
		return zstream.Pair[T]{Key: key, Val: acc}, drainFrom(rest, r), true
	}
}
