package varray

import "errors"

var (
	// ErrNotSorted indicates that the (keys, vals) input to New was
	// not in strictly ascending Morton order.
	ErrNotSorted = errors.New("varray: keys not in strictly ascending Morton order")

	// ErrDuplicateKey indicates that New was given two entries sharing
	// the same Morton code.
	ErrDuplicateKey = errors.New("varray: duplicate key")

	// ErrLengthMismatch indicates that the keys and vals slices passed
	// to New had different lengths.
	ErrLengthMismatch = errors.New("varray: keys and vals have different lengths")
)
