package zmat

import (
	"math"
	"sort"

	"github.com/katalvlaran/zmorton/morton"
	"github.com/katalvlaran/zmorton/ring"
	"github.com/katalvlaran/zmorton/varray"
)

// Matrix is an immutable sparse matrix over element type T, stored as
// a varray.Array in strictly ascending Morton order plus the
// ring.Ring[T] instance that gives its values arithmetic. The zero
// Matrix is not usable directly — always obtain one from Empty,
// Singleton, Identity, FromList, or an arithmetic operation.
type Matrix[T any] struct {
	arr varray.Array[T]
	r   ring.Ring[T]
}

// Entry is one (key, value) pair, the unit of FromList's input list.
type Entry[T any] struct {
	Key morton.Key
	Val T
}

// Empty returns the matrix with no stored entries.
// Complexity: O(1).
func Empty[T any](r ring.Ring[T]) Matrix[T] {
	return Matrix[T]{r: r}
}

// Singleton returns a matrix storing exactly one entry.
// Complexity: O(1).
func Singleton[T any](r ring.Ring[T], key morton.Key, v T) Matrix[T] {
	return Matrix[T]{arr: varray.NewUnchecked([]morton.Key{key}, []T{v}), r: r}
}

// Identity returns the width×width identity matrix: width diagonal
// ones, rest absent. Diagonal keys (i,i) are already strictly
// ascending in Morton code (interleaving a value with itself is
// order-preserving), so no sort is needed.
// Complexity: O(width).
func Identity[T any](r ring.Ring[T], width int) (Matrix[T], error) {
	if width < 0 || width > math.MaxUint32 {
		return Matrix[T]{}, ErrInvalidDimension
	}
	if width == 0 {
		return Empty(r), nil
	}
	keys := make([]morton.Key, width)
	vals := make([]T, width)
	one := r.One()
	for i := 0; i < width; i++ {
		keys[i] = morton.NewKey(uint32(i), uint32(i))
		vals[i] = one
	}
	return Matrix[T]{arr: varray.NewUnchecked(keys, vals), r: r}, nil
}

// FromList sorts entries stably by Morton code and resolves
// duplicate keys per the configured FromListOption (default
// WithKeepLast). Complexity: O(n log n).
func FromList[T any](r ring.Ring[T], entries []Entry[T], opts ...FromListOption) (Matrix[T], error) {
	options := defaultFromListOptions()
	for _, o := range opts {
		o(&options)
	}

	sorted := make([]Entry[T], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.Code < sorted[j].Key.Code
	})

	keys := make([]morton.Key, 0, len(sorted))
	vals := make([]T, 0, len(sorted))
	for _, e := range sorted {
		if n := len(keys); n > 0 && keys[n-1].Code == e.Key.Code {
			switch options.dup {
			case dupErr:
				return Matrix[T]{}, ErrDuplicateKey
			case dupKeepFirst:
				// earlier-sorted occurrence already stored; skip e.
			default: // dupKeepLast
				vals[n-1] = e.Val
			}
			continue
		}
		keys = append(keys, e.Key)
		vals = append(vals, e.Val)
	}
	return Matrix[T]{arr: varray.NewUnchecked(keys, vals), r: r}, nil
}

// Size returns the number of stored entries. Complexity: O(1).
func (m Matrix[T]) Size() int { return m.arr.Size() }

// IsEmpty reports whether m has no stored entries. Complexity: O(1).
func (m Matrix[T]) IsEmpty() bool { return m.arr.IsEmpty() }

// LowKey returns the smallest stored key. Precondition: !m.IsEmpty().
func (m Matrix[T]) LowKey() morton.Key { return m.arr.LowKey() }

// HighKey returns the largest stored key. Precondition: !m.IsEmpty().
func (m Matrix[T]) HighKey() morton.Key { return m.arr.HighKey() }

// HeadVal returns the value at the smallest stored key.
// Precondition: !m.IsEmpty().
func (m Matrix[T]) HeadVal() T { return m.arr.HeadVal() }

// Lookup returns the value stored at key, if any. Complexity: O(log n).
func (m Matrix[T]) Lookup(key morton.Key) (T, bool) { return m.arr.Lookup(key) }

// Keys returns m's keys in ascending Morton order, without copying.
func (m Matrix[T]) Keys() []morton.Key { return m.arr.Keys() }

// Values returns m's values in the same order as Keys, without copying.
func (m Matrix[T]) Values() []T { return m.arr.Values() }

// EachValue visits every (key, value) pair in ascending Morton order.
func (m Matrix[T]) EachValue(f func(morton.Key, T)) { m.arr.EachValue(f) }

// Ring returns the element-type Ring instance m was built with.
func (m Matrix[T]) Ring() ring.Ring[T] { return m.r }

// splitOnBit1 and splitOnBit2 are the package-internal views used by
// the multiplication kernel (mul.go) to recurse into row/column
// half-planes without losing m's Ring.
func (m Matrix[T]) splitOnBit1(aRow, bRow uint32) (left, right Matrix[T]) {
	l, rr := m.arr.SplitOnBit1(aRow, bRow)
	return Matrix[T]{arr: l, r: m.r}, Matrix[T]{arr: rr, r: m.r}
}

func (m Matrix[T]) splitOnBit2(aCol, bCol uint32) (left, right Matrix[T]) {
	l, rr := m.arr.SplitOnBit2(aCol, bCol)
	return Matrix[T]{arr: l, r: m.r}, Matrix[T]{arr: rr, r: m.r}
}
