package zmat

import "errors"

var (
	// ErrInvalidDimension is returned by Identity when width is
	// negative or exceeds the u32 coordinate range.
	ErrInvalidDimension = errors.New("zmat: invalid dimension")

	// ErrDuplicateKey is returned by FromList when WithErrorOnDuplicate
	// is in effect and two entries share a Morton code.
	ErrDuplicateKey = errors.New("zmat: duplicate key in fromList")
)
