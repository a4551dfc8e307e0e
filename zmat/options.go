package zmat

// dupPolicy selects how FromList resolves two entries sharing a
// Morton code after the stable sort: keep the first, keep the last,
// or reject outright.
type dupPolicy int

const (
	dupKeepLast dupPolicy = iota
	dupKeepFirst
	dupErr
)

type fromListOptions struct {
	dup dupPolicy
}

func defaultFromListOptions() fromListOptions {
	return fromListOptions{dup: dupKeepLast}
}

// FromListOption configures FromList's duplicate-key policy.
type FromListOption func(*fromListOptions)

// WithKeepLast keeps the later-sorted occurrence of a duplicate key.
// This is FromList's default even when no option is passed.
func WithKeepLast() FromListOption {
	return func(o *fromListOptions) { o.dup = dupKeepLast }
}

// WithKeepFirst keeps the earlier-sorted occurrence of a duplicate key.
func WithKeepFirst() FromListOption {
	return func(o *fromListOptions) { o.dup = dupKeepFirst }
}

// WithErrorOnDuplicate makes FromList return ErrDuplicateKey instead
// of silently resolving a collision.
func WithErrorOnDuplicate() FromListOption {
	return func(o *fromListOptions) { o.dup = dupErr }
}
