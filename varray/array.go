package varray

import "github.com/katalvlaran/zmorton/morton"

// Array is an immutable pair of equal-length slices — keys and vals —
// kept in strictly ascending Morton order. The zero Array is the
// empty container.
type Array[T any] struct {
	keys []morton.Key
	vals []T
}

// New validates that keys and vals are equal-length and that keys is
// strictly ascending with no duplicates, then wraps them without
// copying. Use NewUnchecked when the caller has already established
// the invariant (e.g. after a stable sort in zmat.FromList) and wants
// to skip the O(n) scan.
// Complexity: O(n).
func New[T any](keys []morton.Key, vals []T) (Array[T], error) {
	if len(keys) != len(vals) {
		return Array[T]{}, ErrLengthMismatch
	}
	for i := 1; i < len(keys); i++ {
		switch {
		case keys[i-1].Code == keys[i].Code:
			return Array[T]{}, ErrDuplicateKey
		case keys[i-1].Code > keys[i].Code:
			return Array[T]{}, ErrNotSorted
		}
	}
	return NewUnchecked(keys, vals), nil
}

// NewUnchecked wraps keys and vals as an Array without validating the
// ascending-order invariant. Complexity: O(1).
func NewUnchecked[T any](keys []morton.Key, vals []T) Array[T] {
	return Array[T]{keys: keys, vals: vals}
}

// Size returns the number of stored entries. Complexity: O(1).
func (a Array[T]) Size() int { return len(a.keys) }

// IsEmpty reports whether a has no stored entries. Complexity: O(1).
func (a Array[T]) IsEmpty() bool { return len(a.keys) == 0 }

// LowKey returns the key at position 0. Precondition: !a.IsEmpty().
// Complexity: O(1).
func (a Array[T]) LowKey() morton.Key { return a.keys[0] }

// HighKey returns the key at the last position. Precondition:
// !a.IsEmpty(). Complexity: O(1).
func (a Array[T]) HighKey() morton.Key { return a.keys[len(a.keys)-1] }

// HeadVal returns the value at position 0. Precondition:
// !a.IsEmpty(). Complexity: O(1).
func (a Array[T]) HeadVal() T { return a.vals[0] }

// Keys returns a's key slice. The caller must not mutate it: it is
// shared with every split view of a. Complexity: O(1).
func (a Array[T]) Keys() []morton.Key { return a.keys }

// Values returns a's value slice, shared the same way as Keys.
// Complexity: O(1).
func (a Array[T]) Values() []T { return a.vals }

// EachValue calls f for every (key, value) pair in ascending Morton
// order. Complexity: O(n).
func (a Array[T]) EachValue(f func(morton.Key, T)) {
	for i, k := range a.keys {
		f(k, a.vals[i])
	}
}
