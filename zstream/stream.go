package zstream

import "github.com/katalvlaran/zmorton/morton"

// Pair is one (key, value) entry of a stream.
type Pair[T any] struct {
	Key morton.Key
	Val T
}

// Stream is a lazy sequence of Pairs in strictly ascending Morton
// order. Calling a non-nil Stream pulls its head and a tail Stream
// producing the rest; a nil Stream is exhausted. This mirrors the
// teacher's preference for closures over explicit state machines
// (functional options, BFS/DFS visitor callbacks) rather than
// introducing an iterator interface with separate Next/Value methods.
type Stream[T any] func() (Pair[T], Stream[T], bool)

// Empty returns the exhausted stream.
func Empty[T any]() Stream[T] { return nil }

// Pull advances s by one element. Calling Pull on a nil Stream
// returns ok == false.
func (s Stream[T]) Pull() (Pair[T], Stream[T], bool) {
	if s == nil {
		var zero Pair[T]
		return zero, nil, false
	}
	return s()
}

// FromSlice builds a Stream over a parallel (keys, vals) slice pair,
// assumed already in strictly ascending Morton order. Complexity:
// O(1) per Pull, O(n) total to exhaust.
func FromSlice[T any](keys []morton.Key, vals []T) Stream[T] {
	return fromSliceAt(keys, vals, 0)
}

func fromSliceAt[T any](keys []morton.Key, vals []T, i int) Stream[T] {
	if i >= len(keys) {
		return nil
	}
	return func() (Pair[T], Stream[T], bool) {
		return Pair[T]{Key: keys[i], Val: vals[i]}, fromSliceAt(keys, vals, i+1), true
	}
}

// ToSlices drains s fully into parallel (keys, vals) slices. Use only
// when the caller genuinely needs the whole sequence materialized
// (e.g. varray.FromSortedStream) — draining defeats the laziness the
// rest of this package is built to preserve.
func ToSlices[T any](s Stream[T]) ([]morton.Key, []T) {
	var keys []morton.Key
	var vals []T
	for {
		p, rest, ok := s.Pull()
		if !ok {
			return keys, vals
		}
		keys = append(keys, p.Key)
		vals = append(vals, p.Val)
		s = rest
	}
}
