package zstream

// Combine0 combines two colliding values and reports whether the
// result should be kept (true) or thinned away as a zero (false) —
// the zero-thinning hook used when merging two streams.
type Combine0[T any] func(a, b T) (T, bool)

// Merge performs the lazy two-way merge of l and r in ascending
// Morton order: when both streams have the same key at their heads,
// the combiner decides the emitted value (or drops it); when only one
// side has the head key, it passes through unchanged. The result is
// strictly sorted with no duplicate keys.
// Complexity: O(1) amortized per Pull, O(|l|+|r|) total.
func Merge[T any](l, r Stream[T], combine Combine0[T]) Stream[T] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	return func() (Pair[T], Stream[T], bool) {
		lp, lRest, lok := l.Pull()
		rp, rRest, rok := r.Pull()
		switch {
		case !lok && !rok:
			var zero Pair[T]
			return zero, nil, false
		case !lok:
			return rp, rRest, true
		case !rok:
			return lp, lRest, true
		case lp.Key.Code < rp.Key.Code:
			return lp, Merge(lRest, r, combine), true
		case lp.Key.Code > rp.Key.Code:
			return rp, Merge(l, rRest, combine), true
		default:
			// Same key at both heads: combine or thin.
			v, keep := combine(lp.Val, rp.Val)
			if keep {
				return Pair[T]{Key: lp.Key, Val: v}, Merge(lRest, rRest, combine), true
			}
			return Merge(lRest, rRest, combine).Pull()
		}
	}
}

// CombineAlways adapts a total combiner f (no thinning) into a
// Combine0 that always keeps the result, regardless of whether it
// tests as zero.
func CombineAlways[T any](f func(a, b T) T) Combine0[T] {
	return func(a, b T) (T, bool) { return f(a, b), true }
}
